package cronjobs

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"go-ayuda/db"
	"go-ayuda/mlmodel"
	"go-ayuda/training"
)

// Init schedules the nightly model validation run: reload the artifact so a
// freshly trained model is picked up, then score it against the stored
// rule-based amounts and log the accuracy.
func Init(store *db.Store, model *mlmodel.Handle, logger *zap.Logger) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("0 3 * * *", func() {
		model.Reload()
		if !model.Available() {
			logger.Info("nightly validation skipped, no model artifact")
			return
		}
		entries, err := store.AllEntries()
		if err != nil {
			logger.Error("nightly validation failed to read assessments", zap.Error(err))
			return
		}
		report := training.Validate(entries, model, logger)
		logger.Info("nightly model validation",
			zap.Int("total", report.Total),
			zap.Int("exact_matches", report.ExactMatches),
			zap.Float64("exact_accuracy", report.ExactAccuracy),
			zap.Float64("tolerance_accuracy", report.ToleranceAccuracy),
		)
	})
	if err != nil {
		logger.Error("failed to schedule validation job", zap.Error(err))
	}

	c.Start()
	return c
}
