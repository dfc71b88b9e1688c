package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Diana-hub4/Demo-dian-back/internal/config"
	"github.com/Diana-hub4/Demo-dian-back/internal/events"
	"github.com/Diana-hub4/Demo-dian-back/internal/messaging/kafka"
	"github.com/Diana-hub4/Demo-dian-back/internal/messaging/kafka/consumer"
	"github.com/Diana-hub4/Demo-dian-back/internal/notification"
	"github.com/Diana-hub4/Demo-dian-back/internal/payroll"
	"github.com/Diana-hub4/Demo-dian-back/internal/shared/connection"
)

// RunConsumer reads domain events and reacts: payslip requests render a
// PDF, the other topics turn into emails.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, 5)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	payrollRepo := payroll.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	payslipRenderer := payroll.NewPDFRenderer(cfg.Payslip.StorageDir, cfg.Payslip.PublicBaseURL)
	payrollService := payroll.NewServiceWithOutbox(sqlDB, payrollRepo, payslipRenderer, outboxRepo)

	mailer := notification.NewSMTPMailer(cfg.SMTP)
	notificationService := notification.NewService(mailer, cfg.FrontendURL, logger)

	newReader := func(topic, groupID string) *kafkago.Reader {
		return kafkago.NewReader(kafkago.ReaderConfig{
			Brokers:        []string{cfg.Kafka.Broker},
			Topic:          topic,
			GroupID:        groupID,
			CommitInterval: 0,
			StartOffset:    kafkago.FirstOffset,
		})
	}

	payslipReader := newReader(events.PayslipRequestedTopic, "conta-dian-payslip-renderer")
	defer payslipReader.Close()
	resetReader := newReader(events.PasswordResetRequestedTopic, "conta-dian-notifier")
	defer resetReader.Close()
	generatedReader := newReader(events.PayslipGeneratedTopic, "conta-dian-notifier")
	defer generatedReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePayslipRequested(ctx, payslipReader, payrollService, logger)
	go consumer.ConsumePasswordResetRequested(ctx, resetReader, notificationService, logger)
	go consumer.ConsumePayslipGenerated(ctx, generatedReader, notificationService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
