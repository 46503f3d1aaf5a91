package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/models"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/services/container"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/error/code"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/error/response"
)

// InterfaceUserController 定义用户控制器接口
type InterfaceUserController interface {
	GetUsers()
	GetUser()
	CreateUser()
	UpdateUser()
	DeleteUser()
}

// UserController 处理操作员账号相关的请求
type UserController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUserController 创建一个新的用户控制器
func NewUserController(ctx *gin.Context, container *container.ServiceContainer) *UserController {
	return &UserController{
		Ctx:       ctx,
		Container: container,
	}
}

// UserCreateRequest 表示用户创建请求
type UserCreateRequest struct {
	Username string `json:"username" binding:"required" example:"guard01"`
	Email    string `json:"email" example:"guard01@example.com"`
	Phone    string `json:"phone" example:"+380501234567"`
	Password string `json:"password" binding:"required" example:"secret"`
	UserRole bool   `json:"user_role" example:"false"` // true表示管理员
}

// UserUpdateRequest 表示用户更新请求，密码为空表示不修改
type UserUpdateRequest struct {
	Username string `json:"username" example:"guard01"`
	Email    string `json:"email" example:"guard01@example.com"`
	Phone    string `json:"phone" example:"+380501234567"`
	Password string `json:"password" example:""`
	UserRole bool   `json:"user_role" example:"false"`
}

// HandleUserFunc 返回一个处理用户请求的Gin处理函数
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserController(ctx, container)

		switch method {
		case "getUsers":
			controller.GetUsers()
		case "getUser":
			controller.GetUser()
		case "createUser":
			controller.CreateUser()
		case "updateUser":
			controller.UpdateUser()
		case "deleteUser":
			controller.DeleteUser()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetUsers 获取用户列表
// @Summary      Get All Users
// @Description  Get the list of operator accounts
// @Tags         User
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /users [get]
// @Security     BearerAuth
func (c *UserController) GetUsers() {
	users, err := c.Container.GetUserService().GetAllUsers()
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, users)
}

// 2. GetUser 获取单个用户
// @Summary      Get User by ID
// @Description  Get a single operator account by its ID
// @Tags         User
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (c *UserController) GetUser() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的用户ID", nil)
		return
	}

	user, err := c.Container.GetUserService().GetUserByID(uint(id))
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, user)
}

// 3. CreateUser 创建新用户
// @Summary      Create User
// @Description  Create a new operator account; username and email must be unique
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body UserCreateRequest true "User parameters"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /users [post]
// @Security     BearerAuth
func (c *UserController) CreateUser() {
	var req UserCreateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		UserRole: req.UserRole,
	}

	if err := c.Container.GetUserService().CreateUser(user); err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"id":       user.ID,
		"username": user.Username,
	})
}

// 4. UpdateUser 更新用户信息
// @Summary      Update User
// @Description  Update mutable fields of an operator account
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        id path int true "User ID"
// @Param        request body UserUpdateRequest true "User parameters"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [put]
// @Security     BearerAuth
func (c *UserController) UpdateUser() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的用户ID", nil)
		return
	}

	var req UserUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	updates := map[string]interface{}{
		"user_role": req.UserRole,
	}
	if req.Username != "" {
		updates["username"] = req.Username
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Password != "" {
		updates["password"] = req.Password
	}

	user, err := c.Container.GetUserService().UpdateUser(uint(id), updates)
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, user)
}

// 5. DeleteUser 删除用户，无删除保护
// @Summary      Delete User
// @Description  Delete an operator account unconditionally
// @Tags         User
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [delete]
// @Security     BearerAuth
func (c *UserController) DeleteUser() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的用户ID", nil)
		return
	}

	if err := c.Container.GetUserService().DeleteUser(uint(id)); err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
