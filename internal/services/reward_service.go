package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Stans-Gate/NeuraBlend/internal/models"

	"gorm.io/gorm"
)

// 奖励相关的业务错误
var (
	ErrUserNotFound      = errors.New("用户不存在")
	ErrBadgeNotFound     = errors.New("勋章不存在")
	ErrBadgeAlreadyOwned = errors.New("勋章已拥有")
	ErrInsufficientKudos = errors.New("kudos余额不足")
)

// RewardService 积分与勋章购买服务
type RewardService struct {
	DB *gorm.DB
}

// NewRewardService 创建奖励服务
func NewRewardService(db *gorm.DB) *RewardService {
	return &RewardService{DB: db}
}

// PointsForAttempt 答题次数对应的积分
// 固定策略表：第1次3分，第2次2分，第3次1分，之后0分
func PointsForAttempt(attempt int) int {
	switch attempt {
	case 1:
		return 3
	case 2:
		return 2
	case 3:
		return 1
	default:
		return 0
	}
}

// KudosForAttempt 答题次数对应的kudos奖励
// 仅第1次且答对时奖励1个kudos
func KudosForAttempt(attempt int, correct bool) int {
	if attempt == 1 && correct {
		return 1
	}
	return 0
}

// ScoreResult 计分结果
type ScoreResult struct {
	PointsAwarded  int `json:"points_awarded"`
	KudosAwarded   int `json:"kudos_awarded"`
	NewTotalPoints int `json:"new_total_points"`
	NewKudos       int `json:"new_kudos"`
}

// ScoreQuiz 对一次答题尝试计分并更新用户余额
// 答错时不加分不加kudos，余额原样返回
func (s *RewardService) ScoreQuiz(userID, attemptNumber int, correct bool) (*ScoreResult, error) {
	var user models.User
	if err := s.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	result := &ScoreResult{
		NewTotalPoints: user.TotalPoints,
		NewKudos:       user.Kudos,
	}
	if !correct {
		return result, nil
	}

	result.PointsAwarded = PointsForAttempt(attemptNumber)
	result.KudosAwarded = KudosForAttempt(attemptNumber, correct)

	user.TotalPoints += result.PointsAwarded
	user.Kudos += result.KudosAwarded
	if err := s.DB.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("更新用户积分失败: %w", err)
	}

	result.NewTotalPoints = user.TotalPoints
	result.NewKudos = user.Kudos
	return result, nil
}

// PurchaseResult 购买结果
type PurchaseResult struct {
	BadgeID  int `json:"badge_id"`
	NewKudos int `json:"new_kudos"`
}

// PurchaseBadge 购买勋章
// 在同一事务内完成余额检查、扣减与拥有记录写入
func (s *RewardService) PurchaseBadge(userID, badgeID int) (*PurchaseResult, error) {
	var result *PurchaseResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("查询用户失败: %w", err)
		}

		var badge models.Badge
		if err := tx.Where("id = ?", badgeID).First(&badge).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBadgeNotFound
			}
			return fmt.Errorf("查询勋章失败: %w", err)
		}

		var owned int64
		if err := tx.Model(&models.UserBadge{}).
			Where("user_id = ? AND badge_id = ?", userID, badgeID).
			Count(&owned).Error; err != nil {
			return fmt.Errorf("查询拥有记录失败: %w", err)
		}
		if owned > 0 {
			return ErrBadgeAlreadyOwned
		}

		if user.Kudos < badge.KudosCost {
			return ErrInsufficientKudos
		}

		user.Kudos -= badge.KudosCost
		if err := tx.Save(&user).Error; err != nil {
			return fmt.Errorf("扣减kudos失败: %w", err)
		}

		ownership := models.UserBadge{
			UserID:      userID,
			BadgeID:     badgeID,
			PurchasedAt: time.Now(),
		}
		if err := tx.Create(&ownership).Error; err != nil {
			return fmt.Errorf("写入拥有记录失败: %w", err)
		}

		result = &PurchaseResult{BadgeID: badgeID, NewKudos: user.Kudos}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
