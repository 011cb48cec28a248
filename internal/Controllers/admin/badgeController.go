package admin

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Stans-Gate/NeuraBlend/internal/config"
	"github.com/Stans-Gate/NeuraBlend/internal/models"
	"github.com/Stans-Gate/NeuraBlend/internal/oss"
	"github.com/Stans-Gate/NeuraBlend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateBadgeRequest 创建勋章请求
// ImageData 为base64编码的图片内容，配置了对象存储时上传并覆盖ImagePath
type CreateBadgeRequest struct {
	Name             string `json:"name" binding:"required"`
	Description      string `json:"description"`
	KudosCost        int    `json:"kudos_cost"`
	ImagePath        string `json:"image_path"`
	ImageData        string `json:"image_data"`
	ImageContentType string `json:"image_content_type"`
}

// PurchaseBadgeRequest 购买勋章请求
type PurchaseBadgeRequest struct {
	UserID  int `json:"user_id" binding:"required"`
	BadgeID int `json:"badge_id" binding:"required"`
}

// BadgeController 勋章控制器
type BadgeController struct {
	db        *gorm.DB
	ossClient *oss.OSS
	rewardSvc *services.RewardService
}

// NewBadgeController 创建勋章控制器
// ossClient 可以为nil，此时不处理图片上传和预签名
func NewBadgeController(db *gorm.DB, ossClient *oss.OSS) *BadgeController {
	return &BadgeController{
		db:        db,
		ossClient: ossClient,
		rewardSvc: services.NewRewardService(db),
	}
}

// badgeResponse 勋章对外响应结构
func (bc *BadgeController) badgeResponse(c *gin.Context, b *models.Badge) gin.H {
	imageURL := b.ImagePath
	// 对象存储中的图片换成预签名链接
	if bc.ossClient != nil && strings.HasPrefix(b.ImagePath, "badges/") {
		bucket := config.GlobalConfig.OSS.BucketName
		if u, err := bc.ossClient.PresignGet(c.Request.Context(), bucket, b.ImagePath, 15*time.Minute); err == nil {
			imageURL = u
		} else {
			log.Printf("生成勋章图片链接失败 - 勋章: %s, 错误: %v", b.Name, err)
		}
	}
	return gin.H{
		"id":          b.Id,
		"name":        b.Name,
		"description": b.Description,
		"image_path":  b.ImagePath,
		"image_url":   imageURL,
		"kudos_cost":  b.KudosCost,
	}
}

// Store 创建勋章（管理操作）
// 名称重复时返回冲突
func (bc *BadgeController) Store(c *gin.Context) {
	var req CreateBadgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.KudosCost < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kudos_cost不能为负数"})
		return
	}

	var existing models.Badge
	err := bc.db.Where("name = ?", req.Name).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "勋章名称已存在"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询勋章失败"})
		return
	}

	imagePath := req.ImagePath
	if bc.ossClient != nil && req.ImageData != "" {
		data, err := base64.StdEncoding.DecodeString(req.ImageData)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "图片数据解码失败"})
			return
		}
		contentType := req.ImageContentType
		if contentType == "" {
			contentType = "image/png"
		}
		key := fmt.Sprintf("badges/%s.png", strings.ReplaceAll(strings.ToLower(req.Name), " ", "-"))
		bucket := config.GlobalConfig.OSS.BucketName
		if err := bc.ossClient.UploadBadgeImage(c.Request.Context(), bucket, key, data, contentType); err != nil {
			log.Printf("上传勋章图片失败 - 勋章: %s, 错误: %v", req.Name, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "上传勋章图片失败"})
			return
		}
		imagePath = key
	}

	badge := models.Badge{
		Name:        req.Name,
		Description: req.Description,
		ImagePath:   imagePath,
		KudosCost:   req.KudosCost,
	}
	if err := bc.db.Create(&badge).Error; err != nil {
		log.Printf("创建勋章失败 - 勋章: %s, 错误: %v", req.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建勋章失败"})
		return
	}

	c.JSON(http.StatusOK, bc.badgeResponse(c, &badge))
}

// Index 列出全部勋章
func (bc *BadgeController) Index(c *gin.Context) {
	var badges []models.Badge
	if err := bc.db.Order("kudos_cost").Find(&badges).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询勋章失败"})
		return
	}

	list := make([]gin.H, 0, len(badges))
	for i := range badges {
		list = append(list, bc.badgeResponse(c, &badges[i]))
	}
	c.JSON(http.StatusOK, list)
}

// UserBadges 列出用户已购勋章
func (bc *BadgeController) UserBadges(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户id"})
		return
	}

	var user models.User
	if err := bc.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "用户不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询用户失败"})
		return
	}

	var badges []models.Badge
	err = bc.db.
		Joins("JOIN user_badges ON user_badges.badge_id = badges.id").
		Where("user_badges.user_id = ?", userID).
		Order("user_badges.purchased_at").
		Find(&badges).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询已购勋章失败"})
		return
	}

	list := make([]gin.H, 0, len(badges))
	for i := range badges {
		list = append(list, bc.badgeResponse(c, &badges[i]))
	}
	c.JSON(http.StatusOK, list)
}

// Purchase 购买勋章
func (bc *BadgeController) Purchase(c *gin.Context) {
	var req PurchaseBadgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := bc.rewardSvc.PurchaseBadge(req.UserID, req.BadgeID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "用户不存在"})
		case errors.Is(err, services.ErrBadgeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "勋章不存在"})
		case errors.Is(err, services.ErrBadgeAlreadyOwned):
			c.JSON(http.StatusConflict, gin.H{"error": "勋章已拥有"})
		case errors.Is(err, services.ErrInsufficientKudos):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "kudos余额不足"})
		default:
			log.Printf("购买勋章失败 - 用户ID: %d, 勋章ID: %d, 错误: %v", req.UserID, req.BadgeID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "购买勋章失败"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
