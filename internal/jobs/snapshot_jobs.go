package jobs

import (
	"context"

	"carrental-backend/internal/api/metrics"
	"carrental-backend/internal/logger"
)

// TakeLedgerSnapshot logs the ledger headline numbers and refreshes the
// snapshot gauges. Read-only.
func (jr *JobRunner) TakeLedgerSnapshot() {
	jr.runWithRecovery("TakeLedgerSnapshot", func() {
		ctx := context.Background()

		jr.mu.Lock()
		accounts, err := jr.store.AccountRepository.Count(ctx)
		if err != nil {
			jr.mu.Unlock()
			logger.Error("Snapshot failed reading account count", "error", err)
			return
		}
		items, err := jr.store.ItemRepository.Count(ctx)
		if err != nil {
			jr.mu.Unlock()
			logger.Error("Snapshot failed reading item count", "error", err)
			return
		}
		collected, err := jr.store.TreasuryRepository.Balance(ctx)
		jr.mu.Unlock()
		if err != nil {
			logger.Error("Snapshot failed reading treasury", "error", err)
			return
		}

		metrics.AccountsRegistered.Set(float64(accounts))
		metrics.ItemsTotal.Set(float64(items))
		metrics.TreasuryCollectedCents.Set(float64(collected))

		logger.Info("Ledger snapshot",
			"accounts", accounts,
			"items", items,
			"treasury_collected_cents", collected,
		)
	})
}
