package store

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Janitor periodically removes sessions that outlived the inactivity window.
type Janitor struct {
	cron   *cron.Cron
	store  Store
	ttl    time.Duration
	logger logrus.FieldLogger
	now    func() time.Time
}

func NewJanitor(st Store, ttl time.Duration, logger logrus.FieldLogger) *Janitor {
	return &Janitor{
		cron:   cron.New(),
		store:  st,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// Start schedules the sweep with a standard cron spec or descriptor such as
// "@every 10m".
func (j *Janitor) Start(schedule string) error {
	if _, err := j.cron.AddFunc(schedule, j.sweep); err != nil {
		return fmt.Errorf("invalid purge schedule %q: %w", schedule, err)
	}
	j.cron.Start()
	j.logger.WithField("schedule", schedule).Info("session janitor started")
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
}

func (j *Janitor) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := j.store.PurgeExpired(ctx, j.ttl, j.now())
	if err != nil {
		j.logger.WithError(err).Error("session purge failed")
		return
	}
	if n > 0 {
		j.logger.WithField("removed", n).Info("expired sessions purged")
	}
}
