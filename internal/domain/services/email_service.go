package services

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/infrastructure/config"
)

// InterfaceEmailService defines the email transport interface
type InterfaceEmailService interface {
	SendReport(ctx context.Context, to, username string, artifact *ReportArtifact) error
}

// EmailService 通过SMTP发送带附件的报告邮件
type EmailService struct {
	Config *config.Config
	dialer *gomail.Dialer
}

// NewEmailService 创建一个新的邮件服务
func NewEmailService(cfg *config.Config) InterfaceEmailService {
	return &EmailService{
		Config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	}
}

// SendReport 把报告作为附件发送给收件人。
// 发送在独立goroutine中执行并受ctx约束，慢速SMTP不会无限占用派发任务；
// 附件字节在传输完成前一直由闭包持有，之后随消息一起释放
func (s *EmailService) SendReport(ctx context.Context, to, username string, artifact *ReportArtifact) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.Config.SMTPFrom, "PyroSafe System")
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("PyroSafe Report — %s", artifact.GeneratedAt.Format("02.01.2006")))
	m.SetBody("text/plain", fmt.Sprintf(
		"Hello, %s!\n\nAttached is the weekly PyroSafe report.\n\nBest regards,\nPyroSafe System", username))

	content := artifact.Content
	m.Attach(artifact.FileName,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"text/plain; charset=UTF-8"}}))

	// gomail 不感知context，把发送包进goroutine以支持超时
	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("发送超时: %w", ctx.Err())
	}
}
