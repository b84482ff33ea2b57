package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultHeartbeatSchedule pings subscribers every 30 seconds.
const DefaultHeartbeatSchedule = "*/30 * * * * *"

// SubscriberPinger is the part of the notification hub the heartbeat needs.
type SubscriberPinger interface {
	Ping(ctx context.Context) int
	Subscribers() int
}

// SubscriberHeartbeatJob pings websocket subscribers on a schedule so dead
// connections are detected and pruned between order events.
type SubscriberHeartbeatJob struct {
	pinger   SubscriberPinger
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSubscriberHeartbeatJob creates the job. An empty schedule falls back to
// DefaultHeartbeatSchedule; schedules use the six-field cron format with seconds.
func NewSubscriberHeartbeatJob(pinger SubscriberPinger, schedule string, logger *slog.Logger) *SubscriberHeartbeatJob {
	if schedule == "" {
		schedule = DefaultHeartbeatSchedule
	}

	return &SubscriberHeartbeatJob{
		pinger:   pinger,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "subscriber_heartbeat_job"),
	}
}

// Start registers the heartbeat and starts the scheduler.
func (j *SubscriberHeartbeatJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Subscriber heartbeat job started", "schedule", j.schedule)
	return nil
}

// Run performs one heartbeat round.
func (j *SubscriberHeartbeatJob) Run() {
	ctx := context.Background()

	if pruned := j.pinger.Ping(ctx); pruned > 0 {
		j.logger.InfoContext(ctx, "Pruned dead subscribers",
			"pruned", pruned,
			"remaining", j.pinger.Subscribers(),
		)
	}
}

// Stop stops the scheduler and waits for a running heartbeat to finish.
func (j *SubscriberHeartbeatJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Subscriber heartbeat job stopped")
}
