// Package jobs provides scheduled background tasks for the order tracker.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// SubscriberHeartbeatJob pings every websocket subscriber of the notification
// hub and drops connections that can no longer be written to.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(hub, cfg.HeartbeatSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field format with a leading seconds field. The default,
// "*/30 * * * * *", runs every 30 seconds and is configurable through
// HEARTBEAT_SCHEDULE.
package jobs
