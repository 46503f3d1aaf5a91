package models

// Scenario 表示预定义的响应预案，事件可以关联到某个预案
type Scenario struct {
	BaseModel
	ScenarioType string `gorm:"type:varchar(20);not null" json:"scenario_type"` // 如：evacuation(疏散)、suppression(灭火)等
	Description  string `gorm:"type:varchar(255)" json:"description"`
	Priority     string `gorm:"type:varchar(20);default:'Medium'" json:"priority"` // High, Medium, Low
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	// Relations - 关联关系
	Events []Event `gorm:"foreignKey:ScenarioID" json:"events,omitempty"`
}
