package models

import (
	"time"

	"gorm.io/gorm"
)

// Badge 勋章模型
// KudosCost 为购买所需kudos，创建后不可修改
type Badge struct {
	Id          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	ImagePath   string `gorm:"type:varchar(255)" json:"image_path"`
	KudosCost   int    `gorm:"not null;default:0" json:"kudos_cost"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Badge) TableName() string {
	return "badges"
}
