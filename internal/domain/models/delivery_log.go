package models

import "time"

// DeliveryLog 表示一次失败的报告投递记录，只追加不修改，
// 用于排查后台邮件发送失败的原因
type DeliveryLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Destination string    `gorm:"type:varchar(100);not null" json:"destination"` // 收件人邮箱
	FileName    string    `gorm:"type:varchar(255)" json:"file_name"`
	Cause       string    `gorm:"type:text" json:"cause"`
	CreatedAt   time.Time `json:"created_at"`
}
