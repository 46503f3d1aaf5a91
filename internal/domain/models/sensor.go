package models

// SensorStatus 表示传感器的运行状态
type SensorStatus string

const (
	SensorStatusActive   SensorStatus = "Active"
	SensorStatusInactive SensorStatus = "Inactive"
	SensorStatusFault    SensorStatus = "Fault"
)

// Sensor 表示部署在某个区域内的监测设备
type Sensor struct {
	BaseModel
	SensorName  string       `gorm:"type:varchar(100);not null" json:"sensor_name"`
	SensorValue string       `gorm:"type:varchar(50);not null" json:"sensor_value"` // 当前读数，字符串编码
	SensorType  string       `gorm:"type:varchar(20);not null" json:"sensor_type"`  // 如：smoke(烟雾)、heat(温度)、gas(气体)等
	Status      SensorStatus `gorm:"type:varchar(20);default:'Active'" json:"status"`
	ZoneID      uint         `gorm:"not null" json:"zone_id"`

	// Relations - 关联关系
	Zone   *Zone   `gorm:"foreignKey:ZoneID" json:"zone,omitempty"`
	Events []Event `gorm:"foreignKey:SensorID" json:"events,omitempty"`
}
