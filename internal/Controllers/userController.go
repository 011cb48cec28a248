package Controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Stans-Gate/NeuraBlend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateUserRequest 创建用户请求
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// UserController 用户控制器
type UserController struct {
	db *gorm.DB
}

// NewUserController 创建用户控制器
func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

// userResponse 用户对外响应结构
func userResponse(u *models.User) gin.H {
	return gin.H{
		"id":           u.Id,
		"uuid":         u.UUID,
		"name":         u.Name,
		"email":        u.Email,
		"total_points": u.TotalPoints,
		"kudos":        u.Kudos,
	}
}

// Create 创建用户
// 用户名已存在时返回已有记录，保证按名字幂等
func (uc *UserController) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	err := uc.db.Where("name = ?", req.Name).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusOK, userResponse(&existing))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询用户失败"})
		return
	}

	user := models.User{
		UUID:  uuid.New().String(),
		Name:  req.Name,
		Email: req.Email,
	}
	if err := uc.db.Create(&user).Error; err != nil {
		log.Printf("创建用户失败 - 用户名: %s, 错误: %v", req.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建用户失败"})
		return
	}

	c.JSON(http.StatusOK, userResponse(&user))
}

// Show 根据id获取用户
func (uc *UserController) Show(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户id"})
		return
	}

	var user models.User
	if err := uc.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "用户不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询用户失败"})
		return
	}

	c.JSON(http.StatusOK, userResponse(&user))
}
