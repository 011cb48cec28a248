package models

import (
	"time"

	"gorm.io/gorm"
)

// StudyPlan 学习计划模型
// ContentMD 保存AI生成的原始markdown
type StudyPlan struct {
	Id        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string `gorm:"type:varchar(255);index" json:"title"`
	ContentMD string `gorm:"type:text" json:"content_md"`
	OwnerID   int    `gorm:"not null;index" json:"owner_id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (StudyPlan) TableName() string {
	return "study_plans"
}
