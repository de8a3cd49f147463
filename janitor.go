package main

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const pruneSchedule = "@hourly"

// RunSessionJanitor prunes sessions idle for longer than ttl once at start
// and then on every tick of the hourly schedule, until ctx is done.
func RunSessionJanitor(ctx context.Context, svc *QuizService, ttl time.Duration, log *zap.Logger) {
	prune := func() {
		n, err := svc.PruneSessions(ctx, ttl)
		if err != nil {
			log.Error("failed to prune sessions", zap.Error(err))
			return
		}
		if n > 0 {
			log.Info("pruned idle sessions", zap.Int64("count", n))
		}
	}

	c := cron.New(cron.WithLocation(time.UTC))
	if _, err := c.AddFunc(pruneSchedule, prune); err != nil {
		log.Error("failed to add cron job", zap.Error(err))
		return
	}

	prune()
	c.Start()
	log.Info("session janitor started", zap.Duration("ttl", ttl))

	<-ctx.Done()

	<-c.Stop().Done()
	log.Info("session janitor stopped")
}
