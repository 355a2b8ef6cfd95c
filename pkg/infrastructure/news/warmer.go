package news

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DefaultRefreshSchedule refreshes the cache hourly
const DefaultRefreshSchedule = "@every 1h"

// Warmer periodically refreshes cached headlines for a fixed set of queries
type Warmer struct {
	cron    *cron.Cron
	service *Service
	queries []string
	log     *logrus.Logger
}

// NewWarmer schedules a refresh of queries on the given cron schedule
func NewWarmer(service *Service, queries []string, schedule string, log *logrus.Logger) (*Warmer, error) {
	if schedule == "" {
		schedule = DefaultRefreshSchedule
	}

	w := &Warmer{
		cron:    cron.New(),
		service: service,
		queries: append([]string(nil), queries...),
		log:     log,
	}

	if _, err := w.cron.AddFunc(schedule, func() { w.Run(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}
	return w, nil
}

// Run refreshes all queries once
func (w *Warmer) Run(ctx context.Context) {
	n := w.service.Refresh(ctx, w.queries)
	w.log.WithFields(logrus.Fields{
		"refreshed": n,
		"total":     len(w.queries) * len(Regions),
	}).Info("News cache warmed")
}

// Start begins the schedule in the background
func (w *Warmer) Start() {
	w.cron.Start()
}

// Stop halts the schedule and waits for a running refresh to finish
func (w *Warmer) Stop() {
	<-w.cron.Stop().Done()
}
