package service

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
)

type loggingTransferrer struct{}

// NewLoggingTransferrer returns a transfer backend that logs the payout and
// reports success. Real payout rails live outside this process; deployments
// with one substitute their own FundsTransferrer.
func NewLoggingTransferrer() FundsTransferrer {
	return &loggingTransferrer{}
}

func (t *loggingTransferrer) Transfer(_ context.Context, to domain.Identity, amountCents int64) error {
	logger.Info("Outbound transfer", "to", to, "amount_cents", amountCents)
	return nil
}
