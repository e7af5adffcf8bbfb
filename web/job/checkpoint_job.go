// Package job contains the scheduled maintenance tasks of the web server.
package job

import (
	"github.com/lingochat/lingochat/database"
	"github.com/lingochat/lingochat/logger"
)

// CheckpointJob folds the SQLite write-ahead log back into the database file.
type CheckpointJob struct {
	checkpoint func() error
}

func NewCheckpointJob() *CheckpointJob {
	return &CheckpointJob{checkpoint: database.Checkpoint}
}

// Run implements cron.Job.
func (j *CheckpointJob) Run() {
	if err := j.checkpoint(); err != nil {
		logger.Warning("checkpoint job err:", err)
		return
	}
	logger.Debug("database checkpoint done")
}
