package controllers

import (
	"encoding/base64"

	"github.com/gin-gonic/gin"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/services"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/services/container"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/error/code"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/error/response"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/pkg/logger"
)

// InterfaceReportController 定义报告控制器接口
type InterfaceReportController interface {
	GenerateWeeklyReport()
	DownloadReport()
}

// ReportController 处理周报生成与下载请求
type ReportController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewReportController 创建一个新的报告控制器
func NewReportController(ctx *gin.Context, container *container.ServiceContainer) *ReportController {
	return &ReportController{
		Ctx:       ctx,
		Container: container,
	}
}

// WeeklyReportRequest 表示周报生成请求。
// ZoneID 为 0 表示覆盖所有区域
type WeeklyReportRequest struct {
	ZoneID  uint   `json:"zone_id" example:"1"`
	Comment string `json:"comment" example:"Night shift, all calm"`
}

// WeeklyReportResponse 周报生成响应：产物内联返回，
// 同时带上可供下载接口按引用取回的报告ID
type WeeklyReportResponse struct {
	ReportID          string `json:"report_id"`
	FileName          string `json:"file_name"`
	FileContentBase64 string `json:"file_content_base64"`
	EmailSent         bool   `json:"email_sent"`
	ZoneCount         int    `json:"zone_count"`
	SensorCount       int    `json:"sensor_count"`
	EventCount        int    `json:"event_count"`
}

// HandleReportFunc 返回一个处理报告请求的Gin处理函数
func HandleReportFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewReportController(ctx, container)

		switch method {
		case "generateWeeklyReport":
			controller.GenerateWeeklyReport()
		case "downloadReport":
			controller.DownloadReport()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GenerateWeeklyReport 生成周报并派发邮件投递
// @Summary      Generate Weekly Report
// @Description  Aggregate the last 7 days for a zone (or all zones), return the text artifact inline and dispatch it to the caller's email in the background
// @Tags         Report
// @Accept       json
// @Produce      json
// @Param        request body WeeklyReportRequest true "Report parameters"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /reports/weekly [post]
// @Security     BearerAuth
func (c *ReportController) GenerateWeeklyReport() {
	var req WeeklyReportRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	caller := currentCaller(c.Ctx)

	// 在聚合之前先校验投递地址：收件人无效时不做任何生成工作
	user, err := c.Container.GetUserService().GetUserByID(caller.UserID)
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}
	if user.Email == "" {
		response.Fail(c.Ctx, serviceErrorCode(services.ErrUserNoEmail), nil)
		return
	}

	artifact, err := c.Container.GetReportService().GenerateWeeklyReport(req.ZoneID, req.Comment, caller)
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	// 缓存产物供下载接口取回，缓存失败不影响请求
	if err := c.Container.GetRedisService().CacheReport(artifact); err != nil {
		logger.Warning("报告缓存失败: %s: %v", artifact.ReportID, err)
	}

	// 后台投递：请求立即返回，不等待SMTP结果
	c.Container.GetReportDispatcher().DispatchAsync(user.Email, user.Username, artifact)

	response.Success(c.Ctx, WeeklyReportResponse{
		ReportID:          artifact.ReportID,
		FileName:          artifact.FileName,
		FileContentBase64: base64.StdEncoding.EncodeToString(artifact.Content),
		EmailSent:         false,
		ZoneCount:         artifact.ZoneCount,
		SensorCount:       artifact.SensorCount,
		EventCount:        artifact.EventCount,
	})
}

// 2. DownloadReport 按报告ID下载已缓存的报告文件
// @Summary      Download Report
// @Description  Download a previously generated report by its ID while it is still cached
// @Tags         Report
// @Produce      text/plain
// @Param        id path string true "Report ID"
// @Success      200  {string}  string
// @Failure      404  {object}  ErrorResponse
// @Router       /reports/download/{id} [get]
// @Security     BearerAuth
func (c *ReportController) DownloadReport() {
	reportID := c.Ctx.Param("id")
	if reportID == "" {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的报告ID", nil)
		return
	}

	cached, err := c.Container.GetRedisService().GetReport(reportID)
	if err != nil {
		response.Fail(c.Ctx, code.ErrReportNotFound, nil)
		return
	}

	c.Ctx.Header("Content-Disposition", `attachment; filename="`+cached.FileName+`"`)
	c.Ctx.Data(200, "text/plain; charset=utf-8", cached.Content)
}
