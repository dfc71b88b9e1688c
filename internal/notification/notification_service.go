package notification

import (
	"fmt"

	"go.uber.org/zap"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	SendPasswordReset(email, name, resetToken string) error
	SendPayslipReady(email, name, period, pdfURL string) error
}

type service struct {
	mailer      Mailer
	frontendURL string
	logger      *zap.Logger
}

func NewService(mailer Mailer, frontendURL string, logger *zap.Logger) Service {
	return &service{
		mailer:      mailer,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

func (s *service) SendPasswordReset(email, name, resetToken string) error {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, resetToken)

	body := fmt.Sprintf(`
		<p>Hola %s,</p>
		<p>Recibimos una solicitud para restablecer tu contrasena.
		El enlace es valido por una hora:</p>
		<p><a href="%s">Restablecer contrasena</a></p>
		<p>Si no solicitaste este cambio, ignora este correo.</p>
	`, name, resetLink)

	if err := s.mailer.Send(email, "Restablecer contrasena", body); err != nil {
		s.logger.Error("send password reset email failed",
			zap.String("email", email),
			zap.Error(err))
		return err
	}

	s.logger.Info("password reset email sent", zap.String("email", email))
	return nil
}

func (s *service) SendPayslipReady(email, name, period, pdfURL string) error {
	body := fmt.Sprintf(`
		<p>Hola %s,</p>
		<p>Tu comprobante de nomina del periodo %s ya esta disponible:</p>
		<p><a href="%s">Descargar comprobante</a></p>
	`, name, period, pdfURL)

	subject := fmt.Sprintf("Comprobante de nomina %s", period)

	if err := s.mailer.Send(email, subject, body); err != nil {
		s.logger.Error("send payslip email failed",
			zap.String("email", email),
			zap.String("period", period),
			zap.Error(err))
		return err
	}

	s.logger.Info("payslip email sent",
		zap.String("email", email),
		zap.String("period", period))
	return nil
}
