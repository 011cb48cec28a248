package Controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/Stans-Gate/NeuraBlend/internal/graph"
	"github.com/Stans-Gate/NeuraBlend/internal/models"
	"github.com/Stans-Gate/NeuraBlend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreatePlanRequest 创建学习计划请求
type CreatePlanRequest struct {
	UserID  int    `json:"user_id" binding:"required"`
	Grade   int    `json:"grade" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Goal    string `json:"goal" binding:"required"`
}

// PlanController 学习计划控制器
type PlanController struct {
	db        *gorm.DB
	aiService *services.AIService
	pathSvc   *graph.StudyPathService
}

// NewPlanController 创建学习计划控制器
// pathSvc 可以为nil，此时跳过图数据库镜像
func NewPlanController(db *gorm.DB, aiService *services.AIService, pathSvc *graph.StudyPathService) *PlanController {
	return &PlanController{
		db:        db,
		aiService: aiService,
		pathSvc:   pathSvc,
	}
}

// planResponse 计划对外响应结构
func planResponse(p *models.StudyPlan) gin.H {
	return gin.H{
		"id":         p.Id,
		"title":      p.Title,
		"content_md": p.ContentMD,
	}
}

// Store 生成并保存学习计划
// 生成失败时AI服务返回嵌入错误文本的内容，计划照常落库
func (pc *PlanController) Store(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := pc.db.Where("id = ?", req.UserID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "用户不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询用户失败"})
		return
	}

	planMD := pc.aiService.GenerateStudyPlanText(c.Request.Context(), user.Name, req.Grade, req.Subject, req.Goal)

	plan := models.StudyPlan{
		Title:     fmt.Sprintf("Plan for %s", req.Subject),
		ContentMD: planMD,
		OwnerID:   req.UserID,
	}
	if err := pc.db.Create(&plan).Error; err != nil {
		log.Printf("保存学习计划失败 - 用户ID: %d, 错误: %v", req.UserID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存学习计划失败"})
		return
	}

	// 镜像步骤链到图数据库，失败只记日志不影响请求
	if pc.pathSvc != nil {
		steps := graph.ExtractPlanSteps(planMD)
		if err := pc.pathSvc.SyncPlanPath(c.Request.Context(), plan.Id, steps); err != nil {
			log.Printf("同步学习路径失败 - 计划ID: %d, 错误: %v", plan.Id, err)
		}
	}

	c.JSON(http.StatusOK, planResponse(&plan))
}

// Index 列出用户的全部学习计划
func (pc *PlanController) Index(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户id"})
		return
	}

	var user models.User
	if err := pc.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "用户不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询用户失败"})
		return
	}

	var plans []models.StudyPlan
	if err := pc.db.Where("owner_id = ?", userID).Find(&plans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询学习计划失败"})
		return
	}

	list := make([]gin.H, 0, len(plans))
	for i := range plans {
		list = append(list, planResponse(&plans[i]))
	}
	c.JSON(http.StatusOK, list)
}

// Show 获取用户的单个学习计划
func (pc *PlanController) Show(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户id"})
		return
	}
	planID, err := strconv.Atoi(c.Param("plan_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的计划id"})
		return
	}

	var plan models.StudyPlan
	if err := pc.db.Where("owner_id = ? AND id = ?", userID, planID).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "学习计划不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询学习计划失败"})
		return
	}

	c.JSON(http.StatusOK, planResponse(&plan))
}

// Delete 根据id删除学习计划
func (pc *PlanController) Delete(c *gin.Context) {
	planID, err := strconv.Atoi(c.Param("plan_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的计划id"})
		return
	}

	var plan models.StudyPlan
	if err := pc.db.Where("id = ?", planID).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "学习计划不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询学习计划失败"})
		return
	}

	if err := pc.db.Delete(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "删除学习计划失败"})
		return
	}

	// 连带清理图数据库中的步骤链
	if pc.pathSvc != nil {
		if err := pc.pathSvc.DeletePlanPath(c.Request.Context(), planID); err != nil {
			log.Printf("删除学习路径失败 - 计划ID: %d, 错误: %v", planID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"detail": fmt.Sprintf("Study plan %d deleted", planID)})
}

// Path 读取计划的步骤链
// 图数据库未启用时返回空列表
func (pc *PlanController) Path(c *gin.Context) {
	planID, err := strconv.Atoi(c.Param("plan_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的计划id"})
		return
	}

	var plan models.StudyPlan
	if err := pc.db.Where("id = ?", planID).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "学习计划不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询学习计划失败"})
		return
	}

	steps := []graph.StepNode{}
	if pc.pathSvc != nil {
		steps, err = pc.pathSvc.GetPlanPath(c.Request.Context(), planID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "读取学习路径失败"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"plan_id": planID,
		"steps":   steps,
	})
}
