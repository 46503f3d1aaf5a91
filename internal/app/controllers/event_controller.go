package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/services"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/services/container"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/error/code"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/error/response"
)

// InterfaceEventController 定义事件控制器接口
type InterfaceEventController interface {
	GetEvents()
	GetEvent()
	CreateEvent()
	ResolveEvent()
	DeleteEvent()
}

// EventController 处理安全事件相关的请求
type EventController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewEventController 创建一个新的事件控制器
func NewEventController(ctx *gin.Context, container *container.ServiceContainer) *EventController {
	return &EventController{
		Ctx:       ctx,
		Container: container,
	}
}

// EventCreateRequest 表示事件创建请求。
// 状态与解决信息不接受传入，新事件一律从 New 开始
type EventCreateRequest struct {
	SensorID    uint   `json:"sensor_id" binding:"required" example:"1"`
	ScenarioID  *uint  `json:"scenario_id" example:"1"` // 可选的响应预案
	Description string `json:"description" binding:"required" example:"Smoke detected"`
	Severity    string `json:"severity" example:"High"` // High, Medium, Low；缺省为Low
}

// HandleEventFunc 返回一个处理事件请求的Gin处理函数
func HandleEventFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEventController(ctx, container)

		switch method {
		case "getEvents":
			controller.GetEvents()
		case "getEvent":
			controller.GetEvent()
		case "createEvent":
			controller.CreateEvent()
		case "resolveEvent":
			controller.ResolveEvent()
		case "deleteEvent":
			controller.DeleteEvent()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetEvents 获取事件列表，支持分页，按创建时间倒序
// @Summary      Get All Events
// @Description  Get the list of safety events, newest first
// @Tags         Event
// @Produce      json
// @Param        page query int false "页码，默认为1"
// @Param        page_size query int false "每页条数，默认为20"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /events [get]
// @Security     BearerAuth
func (c *EventController) GetEvents() {
	// 获取分页参数
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	events, total, err := c.Container.GetEventService().GetAllEvents(page, pageSize)
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        events,
	})
}

// 2. GetEvent 获取单个事件
// @Summary      Get Event by ID
// @Description  Get a single safety event by its ID
// @Tags         Event
// @Produce      json
// @Param        id path int true "Event ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /events/{id} [get]
// @Security     BearerAuth
func (c *EventController) GetEvent() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的事件ID", nil)
		return
	}

	event, err := c.Container.GetEventService().GetEventByID(uint(id))
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, event)
}

// 3. CreateEvent 创建新事件
// @Summary      Create Event
// @Description  Create a new safety event; the referenced sensor (and scenario, if given) must exist
// @Tags         Event
// @Accept       json
// @Produce      json
// @Param        request body EventCreateRequest true "Event parameters"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Router       /events [post]
// @Security     BearerAuth
func (c *EventController) CreateEvent() {
	var req EventCreateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	event, err := c.Container.GetEventService().CreateEvent(&services.CreateEventInput{
		SensorID:    req.SensorID,
		ScenarioID:  req.ScenarioID,
		Description: req.Description,
		Severity:    req.Severity,
	})
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	// 广播到监控主题，失败不影响请求结果
	c.Container.GetMQTTEventService().PublishEventCreated(event)

	response.Success(c.Ctx, event)
}

// 4. ResolveEvent 解决事件
// @Summary      Resolve Event
// @Description  Mark an event as resolved by the calling operator; a second call is rejected
// @Tags         Event
// @Produce      json
// @Param        id path int true "Event ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /events/{id}/resolve [post]
// @Security     BearerAuth
func (c *EventController) ResolveEvent() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的事件ID", nil)
		return
	}

	result, err := c.Container.GetEventService().ResolveEvent(uint(id), currentCaller(c.Ctx))
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	c.Container.GetMQTTEventService().PublishEventResolved(uint(id), result)

	response.Success(c.Ctx, result)
}

// 5. DeleteEvent 删除事件，不论其状态如何
// @Summary      Delete Event
// @Description  Delete a safety event regardless of its state
// @Tags         Event
// @Produce      json
// @Param        id path int true "Event ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  ErrorResponse
// @Router       /events/{id} [delete]
// @Security     BearerAuth
func (c *EventController) DeleteEvent() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的事件ID", nil)
		return
	}

	if err := c.Container.GetEventService().DeleteEvent(uint(id)); err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
