package consumer

import (
	"context"
	"encoding/json"
	"errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Diana-hub4/Demo-dian-back/internal/events"
	"github.com/Diana-hub4/Demo-dian-back/internal/payroll"
	payrollerrors "github.com/Diana-hub4/Demo-dian-back/internal/payroll/errors"
)

// Reader is the subset of kafka-go's Reader the consumer loops use.
type Reader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

func ConsumePayslipRequested(
	ctx context.Context,
	reader Reader,
	payrollService payroll.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payslip_requested")
	log.Info("payslip requested consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payslip requested consumer stopped")
				return
			}
			log.Error("fetch payslip requested message failed", zap.Error(err))
			continue
		}

		var event events.PayslipRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payslip requested event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = payrollService.GeneratePayslip(ctx, event.PayslipID)
		if err != nil {
			// A payslip deleted after the event was queued can never be
			// rendered; leaving the offset uncommitted would redeliver it
			// forever.
			if errors.Is(err, payrollerrors.ErrPayslipNotFound) {
				log.Warn("payslip no longer exists, skipping",
					zap.String("payslip_id", event.PayslipID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("generate payslip failed",
				zap.String("payslip_id", event.PayslipID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payslip requested message failed", zap.Error(err))
			continue
		}

		log.Info("payslip generated from requested event",
			zap.String("payslip_id", event.PayslipID),
		)
	}
}
