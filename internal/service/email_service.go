package service

import (
	"fmt"

	"go.uber.org/zap"
	mail "gopkg.in/mail.v2"

	"bloghub-backend/config"
	"bloghub-backend/internal/common"
)

// EmailService 通过 SMTP 发送事务性邮件
type EmailService struct {
	dialer *mail.Dialer
	from   string
}

// NewEmailService 创建邮件服务
func NewEmailService() *EmailService {
	cfg := config.AppConfig
	return &EmailService{
		dialer: mail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.SMTPUsername,
	}
}

// SendWelcomeEmail 发送欢迎邮件。发送失败只记录日志，不影响注册流程。
func (s *EmailService) SendWelcomeEmail(to, name string) {
	body := fmt.Sprintf(`
		<h2>欢迎加入 BlogHub，%s！</h2>
		<p>你的账号已经创建成功，现在就去发布第一篇文章吧。</p>
		<p><a href="%s">进入 BlogHub</a></p>`, name, config.AppConfig.FrontendURL)

	err := common.WithRetry(func() error {
		return s.send(to, "欢迎加入 BlogHub", body)
	}, 3)
	if err != nil {
		zap.L().Error("发送欢迎邮件失败", zap.String("to", to), zap.Error(err))
		return
	}
	zap.L().Info("欢迎邮件发送成功", zap.String("to", to))
}

// SendVerificationEmail 发送邮箱验证邮件
func (s *EmailService) SendVerificationEmail(to, name, token string) {
	link := fmt.Sprintf("%s/verify-email?token=%s", config.AppConfig.FrontendURL, token)
	body := fmt.Sprintf(`
		<h2>%s，请验证你的邮箱</h2>
		<p>点击下面的链接完成邮箱验证，链接24小时内有效。</p>
		<p><a href="%s">验证邮箱</a></p>`, name, link)

	err := common.WithRetry(func() error {
		return s.send(to, "验证你的 BlogHub 邮箱", body)
	}, 3)
	if err != nil {
		zap.L().Error("发送验证邮件失败", zap.String("to", to), zap.Error(err))
	}
}

// SendPasswordResetEmail 发送密码重置邮件
func (s *EmailService) SendPasswordResetEmail(to, token string) {
	link := fmt.Sprintf("%s/reset-password?token=%s", config.AppConfig.FrontendURL, token)
	body := fmt.Sprintf(`
		<h2>重置你的密码</h2>
		<p>我们收到了你的密码重置请求，点击下面的链接设置新密码，链接1小时内有效。</p>
		<p>如果这不是你本人的操作，请忽略这封邮件。</p>
		<p><a href="%s">重置密码</a></p>`, link)

	err := common.WithRetry(func() error {
		return s.send(to, "重置 BlogHub 密码", body)
	}, 3)
	if err != nil {
		zap.L().Error("发送密码重置邮件失败", zap.String("to", to), zap.Error(err))
	}
}

func (s *EmailService) send(to, subject, htmlBody string) error {
	m := mail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	return s.dialer.DialAndSend(m)
}
