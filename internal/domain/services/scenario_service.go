package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/models"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/infrastructure/config"
)

// InterfaceScenarioService defines the scenario service interface
type InterfaceScenarioService interface {
	GetAllScenarios() ([]models.Scenario, error)
	GetScenarioByID(id uint) (*models.Scenario, error)
	CreateScenario(scenario *models.Scenario) error
	UpdateScenario(id uint, updates map[string]interface{}) (*models.Scenario, error)
	DeleteScenario(id uint) error
}

// ScenarioService 提供响应预案相关的服务
type ScenarioService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewScenarioService 创建一个新的预案服务
func NewScenarioService(db *gorm.DB, cfg *config.Config) InterfaceScenarioService {
	return &ScenarioService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllScenarios 获取所有预案列表
func (s *ScenarioService) GetAllScenarios() ([]models.Scenario, error) {
	var scenarios []models.Scenario
	if err := s.DB.Order("id").Find(&scenarios).Error; err != nil {
		return nil, err
	}

	return scenarios, nil
}

// 2 GetScenarioByID 根据ID获取预案
func (s *ScenarioService) GetScenarioByID(id uint) (*models.Scenario, error) {
	var scenario models.Scenario
	if err := s.DB.First(&scenario, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScenarioNotFound
		}
		return nil, err
	}

	return &scenario, nil
}

// 3 CreateScenario 创建新预案
func (s *ScenarioService) CreateScenario(scenario *models.Scenario) error {
	// 设置默认优先级
	if scenario.Priority == "" {
		scenario.Priority = "Medium"
	}

	return s.DB.Create(scenario).Error
}

// 4 UpdateScenario 更新预案信息，ID不可变
func (s *ScenarioService) UpdateScenario(id uint, updates map[string]interface{}) (*models.Scenario, error) {
	scenario, err := s.GetScenarioByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(scenario).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetScenarioByID(id)
}

// 5 DeleteScenario 删除预案，存在关联事件时拒绝删除
func (s *ScenarioService) DeleteScenario(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var scenario models.Scenario
		if err := tx.First(&scenario, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrScenarioNotFound
			}
			return err
		}

		var eventCount int64
		if err := tx.Model(&models.Event{}).Where("scenario_id = ?", id).Count(&eventCount).Error; err != nil {
			return err
		}
		if eventCount > 0 {
			return ErrScenarioHasEvents
		}

		return tx.Delete(&scenario).Error
	})
}
