package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户模型
// Name 作为用户名唯一，重复注册返回已有记录
type User struct {
	Id          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID        string `gorm:"size:36;uniqueIndex;not null" json:"uuid"`
	Name        string `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`
	Email       string `gorm:"type:varchar(255)" json:"email"`
	TotalPoints int    `gorm:"not null;default:0" json:"total_points"`
	Kudos       int    `gorm:"not null;default:0" json:"kudos"`

	StudyPlans []StudyPlan `gorm:"foreignKey:OwnerID" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}
