package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/models"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/infrastructure/config"
)

// InterfaceSensorService defines the sensor service interface
type InterfaceSensorService interface {
	GetAllSensors() ([]models.Sensor, error)
	GetSensorsByZone(zoneID uint) ([]models.Sensor, error)
	GetSensorByID(id uint) (*models.Sensor, error)
	CreateSensor(sensor *models.Sensor) error
	UpdateSensor(id uint, updates map[string]interface{}) (*models.Sensor, error)
	DeleteSensor(id uint) error
}

// SensorService 提供传感器相关的服务
type SensorService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewSensorService 创建一个新的传感器服务
func NewSensorService(db *gorm.DB, cfg *config.Config) InterfaceSensorService {
	return &SensorService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllSensors 获取所有传感器列表
func (s *SensorService) GetAllSensors() ([]models.Sensor, error) {
	var sensors []models.Sensor
	if err := s.DB.Order("id").Find(&sensors).Error; err != nil {
		return nil, err
	}

	return sensors, nil
}

// 1.2 GetSensorsByZone 根据区域获取传感器列表
func (s *SensorService) GetSensorsByZone(zoneID uint) ([]models.Sensor, error) {
	var sensors []models.Sensor
	if err := s.DB.Where("zone_id = ?", zoneID).Order("id").Find(&sensors).Error; err != nil {
		return nil, err
	}

	return sensors, nil
}

// 2 GetSensorByID 根据ID获取传感器
func (s *SensorService) GetSensorByID(id uint) (*models.Sensor, error) {
	var sensor models.Sensor
	if err := s.DB.First(&sensor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSensorNotFound
		}
		return nil, err
	}

	return &sensor, nil
}

// 3 CreateSensor 创建新传感器，ZoneID必须引用已存在的区域
func (s *SensorService) CreateSensor(sensor *models.Sensor) error {
	var count int64
	if err := s.DB.Model(&models.Zone{}).Where("id = ?", sensor.ZoneID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrSensorZoneNotFound
	}

	// 设置默认状态
	if sensor.Status == "" {
		sensor.Status = models.SensorStatusActive
	}

	return s.DB.Create(sensor).Error
}

// 4 UpdateSensor 更新传感器信息，ID不可变
func (s *SensorService) UpdateSensor(id uint, updates map[string]interface{}) (*models.Sensor, error) {
	sensor, err := s.GetSensorByID(id)
	if err != nil {
		return nil, err
	}

	// 如果迁移到其他区域，目标区域必须存在
	if zoneID, ok := updates["zone_id"]; ok {
		var count int64
		if err := s.DB.Model(&models.Zone{}).Where("id = ?", zoneID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrSensorZoneNotFound
		}
	}

	if err := s.DB.Model(sensor).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetSensorByID(id)
}

// 5 DeleteSensor 删除传感器，存在事件记录时拒绝删除
func (s *SensorService) DeleteSensor(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var sensor models.Sensor
		if err := tx.First(&sensor, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSensorNotFound
			}
			return err
		}

		var eventCount int64
		if err := tx.Model(&models.Event{}).Where("sensor_id = ?", id).Count(&eventCount).Error; err != nil {
			return err
		}
		if eventCount > 0 {
			return ErrSensorHasEvents
		}

		return tx.Delete(&sensor).Error
	})
}
