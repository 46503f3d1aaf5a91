package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/models"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/infrastructure/config"
)

// InterfaceZoneService defines the zone service interface
type InterfaceZoneService interface {
	GetAllZones() ([]models.Zone, error)
	GetZoneByID(id uint) (*models.Zone, error)
	CreateZone(zone *models.Zone) error
	UpdateZone(id uint, updates map[string]interface{}) (*models.Zone, error)
	DeleteZone(id uint) error
}

// ZoneService 提供区域相关的服务
type ZoneService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewZoneService 创建一个新的区域服务
func NewZoneService(db *gorm.DB, cfg *config.Config) InterfaceZoneService {
	return &ZoneService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllZones 获取所有区域列表
func (s *ZoneService) GetAllZones() ([]models.Zone, error) {
	var zones []models.Zone
	if err := s.DB.Order("id").Find(&zones).Error; err != nil {
		return nil, err
	}

	return zones, nil
}

// 2 GetZoneByID 根据ID获取区域
func (s *ZoneService) GetZoneByID(id uint) (*models.Zone, error) {
	var zone models.Zone
	if err := s.DB.First(&zone, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrZoneNotFound
		}
		return nil, err
	}

	return &zone, nil
}

// 3 CreateZone 创建新区域
func (s *ZoneService) CreateZone(zone *models.Zone) error {
	if strings.TrimSpace(zone.ZoneName) == "" {
		return ErrZoneNameRequired
	}

	return s.DB.Create(zone).Error
}

// 4 UpdateZone 更新区域信息，ID不可变
func (s *ZoneService) UpdateZone(id uint, updates map[string]interface{}) (*models.Zone, error) {
	zone, err := s.GetZoneByID(id)
	if err != nil {
		return nil, err
	}

	if name, ok := updates["zone_name"].(string); ok && strings.TrimSpace(name) == "" {
		return nil, ErrZoneNameRequired
	}

	if err := s.DB.Model(zone).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetZoneByID(id)
}

// 5 DeleteZone 删除区域。
// 只有当区域下所有传感器均为非活跃状态且不存在任何事件记录时才允许删除，
// 底层存储的级联规则表达不了这个约束，必须在这里显式检查。
func (s *ZoneService) DeleteZone(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var zone models.Zone
		if err := tx.First(&zone, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrZoneNotFound
			}
			return err
		}

		// 活跃传感器检查
		var activeSensors int64
		if err := tx.Model(&models.Sensor{}).
			Where("zone_id = ? AND status = ?", id, models.SensorStatusActive).
			Count(&activeSensors).Error; err != nil {
			return err
		}

		// 该区域传感器下的事件检查
		var eventCount int64
		if err := tx.Model(&models.Event{}).
			Joins("JOIN sensors ON sensors.id = events.sensor_id").
			Where("sensors.zone_id = ?", id).
			Count(&eventCount).Error; err != nil {
			return err
		}

		if activeSensors > 0 || eventCount > 0 {
			return ErrZoneHasDependents
		}

		// 剩余的非活跃传感器随区域一并删除，不留下悬挂的 zone_id
		if err := tx.Where("zone_id = ?", id).Delete(&models.Sensor{}).Error; err != nil {
			return err
		}

		return tx.Delete(&zone).Error
	})
}
