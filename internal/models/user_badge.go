package models

import "time"

// UserBadge 用户已购勋章关联表
// 复合唯一索引保证同一勋章只能购买一次
type UserBadge struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      int       `gorm:"not null;index:idx_user_badge,unique;index"`
	BadgeID     int       `gorm:"not null;index:idx_user_badge,unique"`
	PurchasedAt time.Time `gorm:"not null"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
