package main

import (
	"context"
	"log"

	"github.com/Stans-Gate/NeuraBlend/internal/config"
	"github.com/Stans-Gate/NeuraBlend/internal/graph"
	"github.com/Stans-Gate/NeuraBlend/internal/models"
	"github.com/Stans-Gate/NeuraBlend/internal/oss"
	"github.com/Stans-Gate/NeuraBlend/internal/routers"
	"github.com/Stans-Gate/NeuraBlend/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// 初始化配置
	configPath := "config.yaml"
	if err := config.InitConfig(configPath); err != nil {
		log.Fatalf("配置初始化失败: %v", err)
	}

	// 初始化数据库
	if err := models.InitDB(); err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}

	// 自动迁移数据库表
	if err := models.AutoMigrate(); err != nil {
		log.Fatalf("数据库表迁移失败: %v", err)
	}

	// 初始化内置勋章
	if err := models.SeedBadges(); err != nil {
		log.Fatalf("勋章初始化失败: %v", err)
	}

	// AI生成服务
	aiService := services.NewAIService(config.GlobalConfig.AI)

	// 图数据库（可选）
	var pathSvc *graph.StudyPathService
	if config.GlobalConfig.GraphDatabase.Enabled {
		neo4jCfg := graph.Neo4jConfig{
			URI:      config.GlobalConfig.GraphDatabase.Neo4j.URI,
			Username: config.GlobalConfig.GraphDatabase.Neo4j.Username,
			Password: config.GlobalConfig.GraphDatabase.Neo4j.Password,
			Database: config.GlobalConfig.GraphDatabase.Neo4j.Database,
		}
		neo4jClient, err := graph.NewNeo4jClient(neo4jCfg)
		if err != nil {
			log.Printf("图数据库连接失败，学习路径功能不可用: %v", err)
		} else {
			defer neo4jClient.Close()
			pathSvc = graph.NewStudyPathService(neo4jClient)
		}
	}

	// 对象存储（可选）
	var ossClient *oss.OSS
	if config.GlobalConfig.OSS.Enabled {
		client, err := oss.NewOSSClient(
			config.GlobalConfig.OSS.Address,
			config.GlobalConfig.OSS.AccessKey,
			config.GlobalConfig.OSS.SecretKey,
		)
		if err != nil {
			log.Printf("对象存储连接失败，勋章图片功能不可用: %v", err)
		} else {
			if err := client.CreateBucket(context.Background(), config.GlobalConfig.OSS.BucketName); err != nil {
				log.Printf("创建存储桶失败: %v", err)
			}
			ossClient = client
		}
	}

	// 设置Gin运行模式
	gin.SetMode(config.GlobalConfig.Server.Mode)

	// 创建路由引擎
	r := gin.Default()

	// 初始化路由
	routers.RoutersInit(r, aiService, pathSvc, ossClient)

	// 启动服务器
	serverAddr := config.GlobalConfig.GetServerAddr()
	log.Printf("服务器启动在端口: %s", serverAddr)
	if err := r.Run(serverAddr); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}
