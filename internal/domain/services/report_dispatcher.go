package services

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/domain/models"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/infrastructure/config"
	"github.com/NureKulabukhovaTaisiia/PyroSafe/pkg/logger"
)

// InterfaceReportDispatcher defines the report delivery dispatcher interface
type InterfaceReportDispatcher interface {
	DispatchAsync(to, username string, artifact *ReportArtifact)
	Wait()
}

// ReportDispatcher 负责报告的后台投递。
// 投递与发起请求解耦：请求取消不会中止已派发的投递任务，
// 投递失败不回传给调用方，而是写入 delivery_logs 追加记录
type ReportDispatcher struct {
	DB      *gorm.DB
	Email   InterfaceEmailService
	Timeout time.Duration

	wg sync.WaitGroup
}

// NewReportDispatcher 创建一个新的报告投递器
func NewReportDispatcher(db *gorm.DB, cfg *config.Config, email InterfaceEmailService) InterfaceReportDispatcher {
	return &ReportDispatcher{
		DB:      db,
		Email:   email,
		Timeout: cfg.SMTPTimeout,
	}
}

// DispatchAsync 派发一次后台投递并立即返回。
// 附件字节由投递任务独占持有，直到传输调用返回为止
func (d *ReportDispatcher) DispatchAsync(to, username string, artifact *ReportArtifact) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.Timeout)
		defer cancel()

		if err := d.Email.SendReport(ctx, to, username, artifact); err != nil {
			d.recordFailure(to, artifact.FileName, err)
			return
		}

		logger.Info("报告已发送: %s -> %s", artifact.FileName, to)
	}()
}

// Wait 等待所有已派发的投递任务结束，用于优雅关闭和测试
func (d *ReportDispatcher) Wait() {
	d.wg.Wait()
}

// recordFailure 把投递失败写入持久化诊断记录，附带日志输出。
// 记录只追加，按收件人和时间定位
func (d *ReportDispatcher) recordFailure(to, fileName string, cause error) {
	logger.Error("报告发送失败: %s -> %s: %v", fileName, to, cause)

	entry := models.DeliveryLog{
		Destination: to,
		FileName:    fileName,
		Cause:       cause.Error(),
	}
	if err := d.DB.Create(&entry).Error; err != nil {
		// 诊断记录写入失败只能靠日志兜底
		logger.Error("投递失败记录写入失败: %v", err)
	}
}
