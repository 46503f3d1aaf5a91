package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/models"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/services/container"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/error/code"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/error/response"
)

// InterfaceZoneController 定义区域控制器接口
type InterfaceZoneController interface {
	GetZones()
	GetZone()
	CreateZone()
	UpdateZone()
	DeleteZone()
}

// ZoneController 处理区域相关的请求
type ZoneController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewZoneController 创建一个新的区域控制器
func NewZoneController(ctx *gin.Context, container *container.ServiceContainer) *ZoneController {
	return &ZoneController{
		Ctx:       ctx,
		Container: container,
	}
}

// ZoneRequest 表示区域创建/更新请求
type ZoneRequest struct {
	ZoneName string  `json:"zone_name" binding:"required" example:"Server Room A"`
	Floor    int     `json:"floor" example:"1"`
	Area     float64 `json:"area" example:"50.5"` // 面积，单位 m²
}

// HandleZoneFunc 返回一个处理区域请求的Gin处理函数
func HandleZoneFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewZoneController(ctx, container)

		switch method {
		case "getZones":
			controller.GetZones()
		case "getZone":
			controller.GetZone()
		case "createZone":
			controller.CreateZone()
		case "updateZone":
			controller.UpdateZone()
		case "deleteZone":
			controller.DeleteZone()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetZones 获取区域列表
// @Summary      Get All Zones
// @Description  Get the list of all protection zones
// @Tags         Zone
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /zones [get]
// @Security     BearerAuth
func (c *ZoneController) GetZones() {
	zones, err := c.Container.GetZoneService().GetAllZones()
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, zones)
}

// 2. GetZone 获取单个区域
// @Summary      Get Zone by ID
// @Description  Get a single protection zone by its ID
// @Tags         Zone
// @Produce      json
// @Param        id path int true "Zone ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /zones/{id} [get]
// @Security     BearerAuth
func (c *ZoneController) GetZone() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的区域ID", nil)
		return
	}

	zone, err := c.Container.GetZoneService().GetZoneByID(uint(id))
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, zone)
}

// 3. CreateZone 创建新区域
// @Summary      Create Zone
// @Description  Create a new protection zone
// @Tags         Zone
// @Accept       json
// @Produce      json
// @Param        request body ZoneRequest true "Zone parameters"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /zones [post]
// @Security     BearerAuth
func (c *ZoneController) CreateZone() {
	var req ZoneRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	zone := &models.Zone{
		ZoneName: req.ZoneName,
		Floor:    req.Floor,
		Area:     req.Area,
	}

	if err := c.Container.GetZoneService().CreateZone(zone); err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, zone)
}

// 4. UpdateZone 更新区域信息
// @Summary      Update Zone
// @Description  Update mutable fields of a protection zone
// @Tags         Zone
// @Accept       json
// @Produce      json
// @Param        id path int true "Zone ID"
// @Param        request body ZoneRequest true "Zone parameters"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /zones/{id} [put]
// @Security     BearerAuth
func (c *ZoneController) UpdateZone() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的区域ID", nil)
		return
	}

	var req ZoneRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	updates := map[string]interface{}{
		"zone_name": req.ZoneName,
		"floor":     req.Floor,
		"area":      req.Area,
	}

	zone, err := c.Container.GetZoneService().UpdateZone(uint(id), updates)
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, zone)
}

// 5. DeleteZone 删除区域
// @Summary      Delete Zone
// @Description  Delete a zone; rejected while it has active sensors or any events
// @Tags         Zone
// @Produce      json
// @Param        id path int true "Zone ID"
// @Success      200  {object}  response.Response
// @Failure      409  {object}  ErrorResponse
// @Router       /zones/{id} [delete]
// @Security     BearerAuth
func (c *ZoneController) DeleteZone() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的区域ID", nil)
		return
	}

	if err := c.Container.GetZoneService().DeleteZone(uint(id)); err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
