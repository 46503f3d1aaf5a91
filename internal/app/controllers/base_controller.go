package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/services"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/error/code"
)

// ErrorResponse 错误响应的swagger文档结构
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// currentCaller 从gin上下文提取经过认证的调用者身份，
// 由JWT中间件写入，核心逻辑不自己管理登录状态
func currentCaller(ctx *gin.Context) services.CallerIdentity {
	caller := services.CallerIdentity{}

	if userID, exists := ctx.Get("userID"); exists {
		if id, ok := userID.(uint); ok {
			caller.UserID = id
		}
	}
	if username, exists := ctx.Get("username"); exists {
		if name, ok := username.(string); ok {
			caller.Username = name
		}
	}

	return caller
}

// serviceErrorCode 把服务层领域错误映射到错误码
func serviceErrorCode(err error) int {
	switch {
	// 校验类错误
	case errors.Is(err, services.ErrZoneNameRequired),
		errors.Is(err, services.ErrDescriptionRequired),
		errors.Is(err, services.ErrUserFieldsRequired):
		return code.ErrValidation

	// 引用类错误
	case errors.Is(err, services.ErrSensorZoneNotFound):
		return code.ErrSensorZoneNotFound
	case errors.Is(err, services.ErrEventSensorNotFound):
		return code.ErrEventSensorNotFound
	case errors.Is(err, services.ErrEventScenarioNotFound):
		return code.ErrEventScenarioNotFound

	// 实体不存在
	case errors.Is(err, services.ErrZoneNotFound):
		return code.ErrZoneNotFound
	case errors.Is(err, services.ErrSensorNotFound):
		return code.ErrSensorNotFound
	case errors.Is(err, services.ErrScenarioNotFound):
		return code.ErrScenarioNotFound
	case errors.Is(err, services.ErrUserNotFound):
		return code.ErrUserNotFound
	case errors.Is(err, services.ErrEventNotFound):
		return code.ErrEventNotFound

	// 冲突类错误
	case errors.Is(err, services.ErrZoneHasDependents):
		return code.ErrZoneHasDependents
	case errors.Is(err, services.ErrSensorHasEvents):
		return code.ErrSensorHasEvents
	case errors.Is(err, services.ErrScenarioHasEvents):
		return code.ErrScenarioHasEvents
	case errors.Is(err, services.ErrEventAlreadyResolved):
		return code.ErrEventAlreadyResolved

	// 用户相关
	case errors.Is(err, services.ErrUserAlreadyExist):
		return code.ErrUserAlreadyExist
	case errors.Is(err, services.ErrUserPasswordIncorrect):
		return code.ErrUserPasswordIncorrect
	case errors.Is(err, services.ErrUserNoEmail):
		return code.ErrUserNoEmail

	default:
		return code.ErrDatabase
	}
}
