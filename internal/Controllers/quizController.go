package Controllers

import (
	"errors"
	"net/http"

	"github.com/Stans-Gate/NeuraBlend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GenerateQuizRequest 生成测验请求
type GenerateQuizRequest struct {
	StepContent string `json:"step_content" binding:"required"`
}

// ScoreQuizRequest 测验计分请求
type ScoreQuizRequest struct {
	UserID        int  `json:"user_id" binding:"required"`
	AttemptNumber int  `json:"attempt_number" binding:"required"`
	Correct       bool `json:"correct"`
}

// QuizController 测验控制器
type QuizController struct {
	aiService *services.AIService
	rewardSvc *services.RewardService
}

// NewQuizController 创建测验控制器
func NewQuizController(db *gorm.DB, aiService *services.AIService) *QuizController {
	return &QuizController{
		aiService: aiService,
		rewardSvc: services.NewRewardService(db),
	}
}

// Generate 根据步骤内容生成测验，不落库
// 生成层契约：失败也返回完整的测验对象
func (qc *QuizController) Generate(c *gin.Context) {
	var req GenerateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz := qc.aiService.GenerateStepQuiz(c.Request.Context(), req.StepContent)
	c.JSON(http.StatusOK, quiz)
}

// Score 对一次答题尝试计分
func (qc *QuizController) Score(c *gin.Context) {
	var req ScoreQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := qc.rewardSvc.ScoreQuiz(req.UserID, req.AttemptNumber, req.Correct)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "用户不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "计分失败"})
		return
	}

	c.JSON(http.StatusOK, result)
}
