package models

// User 表示系统操作员（UserRole=false）或管理员（UserRole=true）
type User struct {
	BaseModel
	Username string `gorm:"type:varchar(100);not null" json:"username"`
	Email    string `gorm:"type:varchar(100)" json:"email"`
	Phone    string `gorm:"type:varchar(20)" json:"phone"`
	Password string `gorm:"type:varchar(255);not null" json:"-"` // bcrypt哈希，不对外输出
	UserRole bool   `gorm:"default:false" json:"user_role"`      // true表示管理员

	// Relations - 关联关系
	ResolvedEvents []Event `gorm:"foreignKey:ResolvedBy" json:"resolved_events,omitempty"`
}
