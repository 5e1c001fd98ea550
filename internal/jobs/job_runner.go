package jobs

import (
	"sync"

	"carrental-backend/internal/config"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository/memory"
)

// JobRunner coordinates all scheduled jobs. It shares the core serialization
// mutex with the API so its reads never interleave with a mutation.
type JobRunner struct {
	mu     *sync.Mutex
	store  *memory.Store
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(mu *sync.Mutex, store *memory.Store, cfg *config.Config) *JobRunner {
	return &JobRunner{
		mu:     mu,
		store:  store,
		config: cfg,
	}
}

// Config exposes the configuration for schedule registration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	log := logger.WithMethod(jobName)
	defer func() {
		if r := recover(); r != nil {
			log.Error("Job panicked", "panic", r)
		}
	}()

	log.Info("Starting job")
	jobFunc()
	log.Info("Job completed")
}
