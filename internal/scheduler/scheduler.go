package scheduler

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"
)

// Run calls job once right away and then every interval until ctx is done.
// A failing job is logged and retried on the next tick.
func Run(ctx context.Context, clk clock.Clock, every time.Duration, job func(context.Context) error) {
	if clk == nil {
		clk = clock.New()
	}

	ticker := clk.Ticker(every)
	defer ticker.Stop()

	runJob(ctx, clk, job)

	for {
		select {
		case <-ticker.C:
			runJob(ctx, clk, job)
		case <-ctx.Done():
			return
		}
	}
}

func runJob(ctx context.Context, clk clock.Clock, job func(context.Context) error) {
	if err := job(ctx); err != nil {
		logrus.Warn("scheduled job failed: ", err)
		return
	}

	logrus.Info("Last updated at: ", clk.Now())
}
