package models

import (
	"fmt"
	"log"
)

// SeedBadges 初始化内置勋章
// 表中已有勋章时跳过，保证重复启动幂等
func SeedBadges() error {
	if DB == nil {
		return fmt.Errorf("数据库未初始化")
	}

	var count int64
	if err := DB.Model(&Badge{}).Count(&count).Error; err != nil {
		return fmt.Errorf("查询勋章数量失败: %w", err)
	}
	if count > 0 {
		log.Printf("已存在 %d 个勋章，跳过初始化", count)
		return nil
	}

	badges := []Badge{
		{
			Name:        "Brainstormer",
			Description: "Awarded for your bright ideas and first sparks of insight!",
			ImagePath:   "/assets/brainstormer.png",
			KudosCost:   1,
		},
		{
			Name:        "Curious Cat",
			Description: "Paws-itively inquisitive! You're always chasing new questions.",
			ImagePath:   "/assets/curiouscat.png",
			KudosCost:   5,
		},
		{
			Name:        "Rocket Learner",
			Description: "Blasting off into learning—you're on a fast track to success!",
			ImagePath:   "/assets/rocketlearner.png",
			KudosCost:   15,
		},
		{
			Name:        "Knowledge Seeker",
			Description: "For those who never stop asking, exploring, and understanding.",
			ImagePath:   "/assets/knowledgeseeker.png",
			KudosCost:   18,
		},
		{
			Name:        "Quiz Master",
			Description: "You conquered quizzes like a champ—swift, sharp, and unstoppable!",
			ImagePath:   "/assets/quizmaster.png",
			KudosCost:   22,
		},
		{
			Name:        "Puzzle Pro",
			Description: "Every challenge is a piece of the puzzle—and you're fitting it all together.",
			ImagePath:   "/assets/puzzlepro.png",
			KudosCost:   25,
		},
		{
			Name:        "Growth Champ",
			Description: "Your knowledge is blooming—proof that effort makes things grow!",
			ImagePath:   "/assets/growthchamp.png",
			KudosCost:   30,
		},
		{
			Name:        "Academic Royalty",
			Description: "The highest achievement for dedicated learners",
			ImagePath:   "/assets/academicroyalty.png",
			KudosCost:   50,
		},
	}

	if err := DB.Create(&badges).Error; err != nil {
		return fmt.Errorf("初始化勋章失败: %w", err)
	}

	log.Printf("成功初始化 %d 个勋章", len(badges))
	return nil
}
