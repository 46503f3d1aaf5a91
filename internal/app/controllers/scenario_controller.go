package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/models"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/services/container"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/error/code"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/error/response"
)

// InterfaceScenarioController 定义预案控制器接口
type InterfaceScenarioController interface {
	GetScenarios()
	GetScenario()
	CreateScenario()
	UpdateScenario()
	DeleteScenario()
}

// ScenarioController 处理响应预案相关的请求
type ScenarioController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewScenarioController 创建一个新的预案控制器
func NewScenarioController(ctx *gin.Context, container *container.ServiceContainer) *ScenarioController {
	return &ScenarioController{
		Ctx:       ctx,
		Container: container,
	}
}

// ScenarioRequest 表示预案创建/更新请求
type ScenarioRequest struct {
	ScenarioType string `json:"scenario_type" binding:"required" example:"evacuation"`
	Description  string `json:"description" example:"Building evacuation procedure"`
	Priority     string `json:"priority" example:"High"` // High, Medium, Low
	IsActive     *bool  `json:"is_active" example:"true"`
}

// HandleScenarioFunc 返回一个处理预案请求的Gin处理函数
func HandleScenarioFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewScenarioController(ctx, container)

		switch method {
		case "getScenarios":
			controller.GetScenarios()
		case "getScenario":
			controller.GetScenario()
		case "createScenario":
			controller.CreateScenario()
		case "updateScenario":
			controller.UpdateScenario()
		case "deleteScenario":
			controller.DeleteScenario()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetScenarios 获取预案列表
// @Summary      Get All Scenarios
// @Description  Get the list of response scenarios
// @Tags         Scenario
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /scenarios [get]
// @Security     BearerAuth
func (c *ScenarioController) GetScenarios() {
	scenarios, err := c.Container.GetScenarioService().GetAllScenarios()
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, scenarios)
}

// 2. GetScenario 获取单个预案
// @Summary      Get Scenario by ID
// @Description  Get a single response scenario by its ID
// @Tags         Scenario
// @Produce      json
// @Param        id path int true "Scenario ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /scenarios/{id} [get]
// @Security     BearerAuth
func (c *ScenarioController) GetScenario() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的预案ID", nil)
		return
	}

	scenario, err := c.Container.GetScenarioService().GetScenarioByID(uint(id))
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, scenario)
}

// 3. CreateScenario 创建新预案
// @Summary      Create Scenario
// @Description  Create a new response scenario
// @Tags         Scenario
// @Accept       json
// @Produce      json
// @Param        request body ScenarioRequest true "Scenario parameters"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /scenarios [post]
// @Security     BearerAuth
func (c *ScenarioController) CreateScenario() {
	var req ScenarioRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	scenario := &models.Scenario{
		ScenarioType: req.ScenarioType,
		Description:  req.Description,
		Priority:     req.Priority,
		IsActive:     true,
	}
	if req.IsActive != nil {
		scenario.IsActive = *req.IsActive
	}

	if err := c.Container.GetScenarioService().CreateScenario(scenario); err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, scenario)
}

// 4. UpdateScenario 更新预案信息
// @Summary      Update Scenario
// @Description  Update mutable fields of a response scenario
// @Tags         Scenario
// @Accept       json
// @Produce      json
// @Param        id path int true "Scenario ID"
// @Param        request body ScenarioRequest true "Scenario parameters"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /scenarios/{id} [put]
// @Security     BearerAuth
func (c *ScenarioController) UpdateScenario() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的预案ID", nil)
		return
	}

	var req ScenarioRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	updates := map[string]interface{}{
		"scenario_type": req.ScenarioType,
		"description":   req.Description,
		"priority":      req.Priority,
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	scenario, err := c.Container.GetScenarioService().UpdateScenario(uint(id), updates)
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, scenario)
}

// 5. DeleteScenario 删除预案
// @Summary      Delete Scenario
// @Description  Delete a scenario; rejected while any event references it
// @Tags         Scenario
// @Produce      json
// @Param        id path int true "Scenario ID"
// @Success      200  {object}  response.Response
// @Failure      409  {object}  ErrorResponse
// @Router       /scenarios/{id} [delete]
// @Security     BearerAuth
func (c *ScenarioController) DeleteScenario() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的预案ID", nil)
		return
	}

	if err := c.Container.GetScenarioService().DeleteScenario(uint(id)); err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
