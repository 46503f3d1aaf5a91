package models

import "time"

// EventStatus 表示事件的生命周期状态
type EventStatus string

const (
	EventStatusNew      EventStatus = "New"
	EventStatusResolved EventStatus = "Resolved"
)

// 事件默认严重级别
const DefaultEventSeverity = "Low"

// Event 表示由传感器触发的安全事件，可选关联响应预案，
// 通过解决操作记录处理人和处理时间
type Event struct {
	BaseModel
	SensorID    uint        `gorm:"not null" json:"sensor_id"`
	ScenarioID  *uint       `json:"scenario_id,omitempty"`
	Severity    string      `gorm:"type:varchar(20);default:'Low'" json:"severity"` // High, Medium, Low
	Status      EventStatus `gorm:"type:varchar(20);default:'New'" json:"status"`
	Description string      `gorm:"type:varchar(255);not null" json:"description"`
	EventTime   time.Time   `json:"event_time"`
	ResolvedAt  *time.Time  `json:"resolved_at,omitempty"`
	ResolvedBy  *uint       `json:"resolved_by,omitempty"`

	// Relations - 关联关系
	Sensor       *Sensor   `gorm:"foreignKey:SensorID" json:"sensor,omitempty"`
	Scenario     *Scenario `gorm:"foreignKey:ScenarioID" json:"scenario,omitempty"`
	ResolvedUser *User     `gorm:"foreignKey:ResolvedBy" json:"resolved_user,omitempty"`
}
