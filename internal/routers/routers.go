package routers

import (
	"github.com/Stans-Gate/NeuraBlend/internal/Controllers"
	"github.com/Stans-Gate/NeuraBlend/internal/Controllers/admin"
	"github.com/Stans-Gate/NeuraBlend/internal/graph"
	"github.com/Stans-Gate/NeuraBlend/internal/models"
	"github.com/Stans-Gate/NeuraBlend/internal/oss"
	"github.com/Stans-Gate/NeuraBlend/internal/services"

	"github.com/gin-gonic/gin"
)

// RoutersInit 初始化路由
// pathSvc和ossClient未配置时传nil
func RoutersInit(r *gin.Engine, aiService *services.AIService, pathSvc *graph.StudyPathService, ossClient *oss.OSS) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Welcome to NeuraBlend API"})
	})

	// 用户相关路由
	userRouter := r.Group("/users")
	{
		userCtrl := Controllers.NewUserController(models.DB)
		userRouter.POST("/", userCtrl.Create)
		userRouter.GET("/:id", userCtrl.Show)
	}

	// 学习计划相关路由
	planRouter := r.Group("/study_plans")
	{
		planCtrl := Controllers.NewPlanController(models.DB, aiService, pathSvc)
		planRouter.POST("/", planCtrl.Store)
		planRouter.GET("/user/:user_id", planCtrl.Index)
		planRouter.GET("/user/:user_id/:plan_id", planCtrl.Show)
		planRouter.GET("/:plan_id/path", planCtrl.Path)
		planRouter.DELETE("/:plan_id", planCtrl.Delete)
	}

	// 测验相关路由
	quizRouter := r.Group("/quiz")
	{
		quizCtrl := Controllers.NewQuizController(models.DB, aiService)
		quizRouter.POST("/generate", quizCtrl.Generate)
		quizRouter.POST("/score", quizCtrl.Score)
	}

	// 勋章相关路由
	badgeRouter := r.Group("/badges")
	{
		badgeCtrl := admin.NewBadgeController(models.DB, ossClient)
		badgeRouter.POST("/", badgeCtrl.Store)
		badgeRouter.GET("/", badgeCtrl.Index)
		badgeRouter.GET("/user/:user_id", badgeCtrl.UserBadges)
		badgeRouter.POST("/purchase", badgeCtrl.Purchase)
	}
}
