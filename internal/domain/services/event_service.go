package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/models"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/infrastructure/config"
)

// InterfaceEventService defines the event service interface
type InterfaceEventService interface {
	GetAllEvents(page, pageSize int) ([]EventProjection, int64, error)
	GetEventByID(id uint) (*EventProjection, error)
	CreateEvent(input *CreateEventInput) (*EventProjection, error)
	ResolveEvent(id uint, caller CallerIdentity) (*ResolveResult, error)
	DeleteEvent(id uint) error
}

// CreateEventInput 事件创建的规范写入契约。
// 状态、解决时间、解决人不接受调用方传入：新事件一律从 New 开始，
// EventTime 和 CreatedAt 由服务端在调用时刻统一打点。
type CreateEventInput struct {
	SensorID    uint
	ScenarioID  *uint
	Description string
	Severity    string
}

// EventProjection 事件的规范读取投影，关联实体只投影显示字段，
// 被引用实体缺失时用确定性占位符而不是读取失败
type EventProjection struct {
	ID             uint       `json:"id"`
	SensorID       uint       `json:"sensor_id"`
	SensorName     string     `json:"sensor_name"`
	ScenarioID     *uint      `json:"scenario_id,omitempty"`
	ScenarioName   string     `json:"scenario_name"`
	Description    string     `json:"description"`
	Severity       string     `json:"severity"`
	Status         string     `json:"status"`
	EventTime      time.Time  `json:"event_time"`
	CreatedAt      time.Time  `json:"created_at"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy     *uint      `json:"resolved_by,omitempty"`
	ResolvedByName string     `json:"resolved_by_name,omitempty"`
}

// ResolveResult 解决操作的确认信息
type ResolveResult struct {
	EventID      uint      `json:"event_id"`
	ResolverName string    `json:"resolver_name"`
	ResolvedAt   time.Time `json:"resolved_at"`
}

// EventService 提供安全事件生命周期相关的服务
type EventService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewEventService 创建一个新的事件服务
func NewEventService(db *gorm.DB, cfg *config.Config) InterfaceEventService {
	return &EventService{
		DB:     db,
		Config: cfg,
	}
}

// projectEvent 把带关联的事件记录转换为读取投影
func projectEvent(ev *models.Event) EventProjection {
	p := EventProjection{
		ID:          ev.ID,
		SensorID:    ev.SensorID,
		ScenarioID:  ev.ScenarioID,
		Description: ev.Description,
		Severity:    ev.Severity,
		Status:      string(ev.Status),
		EventTime:   ev.EventTime,
		CreatedAt:   ev.CreatedAt,
		ResolvedAt:  ev.ResolvedAt,
		ResolvedBy:  ev.ResolvedBy,
	}

	if ev.Sensor != nil {
		p.SensorName = fmt.Sprintf("%s (%s)", ev.Sensor.SensorName, ev.Sensor.SensorType)
	} else {
		p.SensorName = fmt.Sprintf("Unknown sensor #%d", ev.SensorID)
	}

	if ev.Scenario != nil {
		p.ScenarioName = ev.Scenario.ScenarioType
	} else {
		p.ScenarioName = "—"
	}

	if ev.Status == models.EventStatusResolved {
		if ev.ResolvedUser != nil {
			p.ResolvedByName = ev.ResolvedUser.Username
		} else {
			p.ResolvedByName = DefaultResolverName
		}
	}

	return p
}

// 1 GetAllEvents 获取事件列表，支持分页，按创建时间倒序（统一以 created_at 为排序键）
func (s *EventService) GetAllEvents(page, pageSize int) ([]EventProjection, int64, error) {
	var total int64
	if err := s.DB.Model(&models.Event{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	var events []models.Event
	if err := s.DB.Preload("Sensor").Preload("Scenario").Preload("ResolvedUser").
		Order("created_at DESC").Limit(pageSize).Offset(offset).
		Find(&events).Error; err != nil {
		return nil, 0, err
	}

	projections := make([]EventProjection, 0, len(events))
	for i := range events {
		projections = append(projections, projectEvent(&events[i]))
	}

	return projections, total, nil
}

// 2 GetEventByID 根据ID获取事件
func (s *EventService) GetEventByID(id uint) (*EventProjection, error) {
	var ev models.Event
	if err := s.DB.Preload("Sensor").Preload("Scenario").Preload("ResolvedUser").
		First(&ev, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	p := projectEvent(&ev)
	return &p, nil
}

// 3 CreateEvent 创建新事件。
// 传感器必须存在；预案如有传入也必须存在；描述不能为空。
// 校验与写入放在同一事务里，引用校验失败时不会留下半写入的事件。
func (s *EventService) CreateEvent(input *CreateEventInput) (*EventProjection, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, ErrDescriptionRequired
	}

	now := time.Now()
	ev := models.Event{
		SensorID:    input.SensorID,
		ScenarioID:  input.ScenarioID,
		Description: strings.TrimSpace(input.Description),
		Severity:    input.Severity,
		Status:      models.EventStatusNew,
		EventTime:   now,
	}
	if ev.Severity == "" {
		ev.Severity = models.DefaultEventSeverity
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Sensor{}).Where("id = ?", input.SensorID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrEventSensorNotFound
		}

		if input.ScenarioID != nil {
			if err := tx.Model(&models.Scenario{}).Where("id = ?", *input.ScenarioID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrEventScenarioNotFound
			}
		}

		return tx.Create(&ev).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetEventByID(ev.ID)
}

// 4 ResolveEvent 解决事件。
// 状态迁移通过单条条件更新完成（仅当当前状态为 New 时生效），
// 两个并发的解决请求不会都成功。
func (s *EventService) ResolveEvent(id uint, caller CallerIdentity) (*ResolveResult, error) {
	now := time.Now()

	result := s.DB.Model(&models.Event{}).
		Where("id = ? AND status = ?", id, models.EventStatusNew).
		Updates(map[string]interface{}{
			"status":      models.EventStatusResolved,
			"resolved_at": now,
			"resolved_by": caller.UserID,
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// 区分"不存在"和"已被解决"
		var count int64
		if err := s.DB.Model(&models.Event{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrEventNotFound
		}
		return nil, ErrEventAlreadyResolved
	}

	// 解决人显示名：用户记录缺失时退回兜底名
	resolverName := DefaultResolverName
	var user models.User
	if err := s.DB.First(&user, caller.UserID).Error; err == nil {
		resolverName = user.Username
	} else if caller.Username != "" {
		resolverName = caller.Username
	}

	return &ResolveResult{
		EventID:      id,
		ResolverName: resolverName,
		ResolvedAt:   now,
	}, nil
}

// 5 DeleteEvent 删除事件，不论其状态如何
func (s *EventService) DeleteEvent(id uint) error {
	result := s.DB.Delete(&models.Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}
