package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/models"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/services/container"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/error/code"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/error/response"
)

// InterfaceSensorController 定义传感器控制器接口
type InterfaceSensorController interface {
	GetSensors()
	GetSensor()
	CreateSensor()
	UpdateSensor()
	DeleteSensor()
}

// SensorController 处理传感器相关的请求
type SensorController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSensorController 创建一个新的传感器控制器
func NewSensorController(ctx *gin.Context, container *container.ServiceContainer) *SensorController {
	return &SensorController{
		Ctx:       ctx,
		Container: container,
	}
}

// SensorRequest 表示传感器创建/更新请求
type SensorRequest struct {
	SensorName  string `json:"sensor_name" binding:"required" example:"S1"`
	SensorValue string `json:"sensor_value" example:"0.07"` // 当前读数，字符串编码
	SensorType  string `json:"sensor_type" binding:"required" example:"smoke"`
	Status      string `json:"status" example:"Active"`
	ZoneID      uint   `json:"zone_id" binding:"required" example:"1"`
}

// HandleSensorFunc 返回一个处理传感器请求的Gin处理函数
func HandleSensorFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSensorController(ctx, container)

		switch method {
		case "getSensors":
			controller.GetSensors()
		case "getSensor":
			controller.GetSensor()
		case "createSensor":
			controller.CreateSensor()
		case "updateSensor":
			controller.UpdateSensor()
		case "deleteSensor":
			controller.DeleteSensor()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetSensors 获取传感器列表，支持按区域过滤
// @Summary      Get All Sensors
// @Description  Get the list of sensors, optionally filtered by zone
// @Tags         Sensor
// @Produce      json
// @Param        zone_id query int false "Zone ID filter"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /sensors [get]
// @Security     BearerAuth
func (c *SensorController) GetSensors() {
	if zoneParam := c.Ctx.Query("zone_id"); zoneParam != "" {
		zoneID, err := strconv.ParseUint(zoneParam, 10, 32)
		if err != nil {
			response.FailWithMessage(c.Ctx, code.ErrBind, "无效的区域ID", nil)
			return
		}

		sensors, err := c.Container.GetSensorService().GetSensorsByZone(uint(zoneID))
		if err != nil {
			response.Fail(c.Ctx, serviceErrorCode(err), nil)
			return
		}
		response.Success(c.Ctx, sensors)
		return
	}

	sensors, err := c.Container.GetSensorService().GetAllSensors()
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, sensors)
}

// 2. GetSensor 获取单个传感器
// @Summary      Get Sensor by ID
// @Description  Get a single sensor by its ID
// @Tags         Sensor
// @Produce      json
// @Param        id path int true "Sensor ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /sensors/{id} [get]
// @Security     BearerAuth
func (c *SensorController) GetSensor() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的传感器ID", nil)
		return
	}

	sensor, err := c.Container.GetSensorService().GetSensorByID(uint(id))
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, sensor)
}

// 3. CreateSensor 创建新传感器
// @Summary      Create Sensor
// @Description  Create a new sensor; the referenced zone must exist
// @Tags         Sensor
// @Accept       json
// @Produce      json
// @Param        request body SensorRequest true "Sensor parameters"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /sensors [post]
// @Security     BearerAuth
func (c *SensorController) CreateSensor() {
	var req SensorRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	sensor := &models.Sensor{
		SensorName:  req.SensorName,
		SensorValue: req.SensorValue,
		SensorType:  req.SensorType,
		Status:      models.SensorStatus(req.Status),
		ZoneID:      req.ZoneID,
	}

	if err := c.Container.GetSensorService().CreateSensor(sensor); err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, sensor)
}

// 4. UpdateSensor 更新传感器信息
// @Summary      Update Sensor
// @Description  Update mutable fields of a sensor
// @Tags         Sensor
// @Accept       json
// @Produce      json
// @Param        id path int true "Sensor ID"
// @Param        request body SensorRequest true "Sensor parameters"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /sensors/{id} [put]
// @Security     BearerAuth
func (c *SensorController) UpdateSensor() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的传感器ID", nil)
		return
	}

	var req SensorRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	updates := map[string]interface{}{
		"sensor_name":  req.SensorName,
		"sensor_value": req.SensorValue,
		"sensor_type":  req.SensorType,
		"status":       req.Status,
		"zone_id":      req.ZoneID,
	}

	sensor, err := c.Container.GetSensorService().UpdateSensor(uint(id), updates)
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, sensor)
}

// 5. DeleteSensor 删除传感器
// @Summary      Delete Sensor
// @Description  Delete a sensor; rejected while any event references it
// @Tags         Sensor
// @Produce      json
// @Param        id path int true "Sensor ID"
// @Success      200  {object}  response.Response
// @Failure      409  {object}  ErrorResponse
// @Router       /sensors/{id} [delete]
// @Security     BearerAuth
func (c *SensorController) DeleteSensor() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的传感器ID", nil)
		return
	}

	if err := c.Container.GetSensorService().DeleteSensor(uint(id)); err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
