package consumer

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Diana-hub4/Demo-dian-back/internal/events"
	"github.com/Diana-hub4/Demo-dian-back/internal/notification"
)

func ConsumePasswordResetRequested(
	ctx context.Context,
	reader Reader,
	notificationService notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.password_reset")
	log.Info("password reset consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("password reset consumer stopped")
				return
			}
			log.Error("fetch password reset message failed", zap.Error(err))
			continue
		}

		var event events.PasswordResetRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode password reset event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := notificationService.SendPasswordReset(event.Email, event.Name, event.ResetToken); err != nil {
			log.Error("send password reset email failed",
				zap.String("user_id", event.UserID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit password reset message failed", zap.Error(err))
			continue
		}
	}
}

func ConsumePayslipGenerated(
	ctx context.Context,
	reader Reader,
	notificationService notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payslip_generated")
	log.Info("payslip generated consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payslip generated consumer stopped")
				return
			}
			log.Error("fetch payslip generated message failed", zap.Error(err))
			continue
		}

		var event events.PayslipGeneratedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payslip generated event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		// A payslip without an email is still valid, there is nobody to notify.
		if event.EmployeeEmail == "" {
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		err = notificationService.SendPayslipReady(event.EmployeeEmail, event.EmployeeName, event.Period, event.PDFURL)
		if err != nil {
			log.Error("send payslip email failed",
				zap.String("payslip_id", event.PayslipID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payslip generated message failed", zap.Error(err))
			continue
		}
	}
}
