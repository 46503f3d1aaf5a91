package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/services/container"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/error/code"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/error/response"
)

// InterfaceAuthController 定义认证控制器接口
type InterfaceAuthController interface {
	Login()
	Me()
}

// AuthController 处理登录与身份查询请求
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController 创建一个新的认证控制器
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest 表示登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"guard@pyrosafe.io"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// HandleAuthFunc 返回一个处理认证请求的Gin处理函数
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "me":
			controller.Me()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. Login 用户登录，颁发JWT令牌
// @Summary      Login
// @Description  Authenticate with email and password, returns a JWT for subsequent requests
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	user, err := c.Container.GetUserService().Authenticate(req.Email, req.Password)
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	role := "operator"
	if user.UserRole {
		role = "admin"
	}

	token, err := c.Container.GetJWTService().GenerateToken(user.ID, user.Username, role)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     role,
		},
	})
}

// 2. Me 返回当前令牌对应的调用者身份
// @Summary      Current Identity
// @Description  Return the identity carried by the presented JWT
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/me [get]
// @Security     BearerAuth
func (c *AuthController) Me() {
	caller := currentCaller(c.Ctx)
	if caller.UserID == 0 {
		response.Unauthorized(c.Ctx)
		return
	}

	user, err := c.Container.GetUserService().GetUserByID(caller.UserID)
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, user)
}
