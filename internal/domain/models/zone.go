package models

// Zone 表示一个物理防护区域，内部分布若干传感器
type Zone struct {
	BaseModel
	ZoneName string  `gorm:"type:varchar(100);not null" json:"zone_name"`
	Floor    int     `gorm:"not null" json:"floor"`
	Area     float64 `json:"area"` // 面积，单位 m²

	// Relations - 关联关系（仅用于按需读取，写入一律通过外键字段）
	Sensors []Sensor `gorm:"foreignKey:ZoneID" json:"sensors,omitempty"`
}
