package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/services/container"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/error/response"
)

// HandleHealthFunc 返回健康检查处理函数，探测数据库连通性
func HandleHealthFunc(container *container.ServiceContainer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "up"
		sqlDB, err := container.GetDB().DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "down"
		}

		response.Success(ctx, gin.H{
			"status":   "ok",
			"database": dbStatus,
			"time":     time.Now().Format(time.RFC3339),
		})
	}
}

// HandlePingFunc 返回存活探测处理函数
func HandlePingFunc() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		response.Success(ctx, gin.H{"message": "pong"})
	}
}
