package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"aqi-dashboard/internal/domain/usecase/airquality"
	"aqi-dashboard/pkg/log"
	"aqi-dashboard/pkg/msg"
	"aqi-dashboard/pkg/redis"
)

// RefreshSchedulerConfig holds configuration for the refresh scheduler
type RefreshSchedulerConfig struct {
	CronExpression  string
	LockTTL         time.Duration
	RefreshInterval time.Duration
}

// RefreshScheduler keeps the AQI snapshot cache warm on a schedule, so
// interactive renders rarely pay the sequential fetch pass. With a Redis
// client present the schedule runs under a distributed lock; without one it
// runs unconditionally (single-instance deployment).
type RefreshScheduler struct {
	cron        *cron.Cron
	useCase     airquality.UseCase
	redisClient *redis.Client
	config      *RefreshSchedulerConfig
}

// NewRefreshScheduler creates a new refresh scheduler. redisClient may be nil.
func NewRefreshScheduler(useCase airquality.UseCase, redisClient *redis.Client, cronExpression string, lockTTL int, refreshInterval int) *RefreshScheduler {
	return &RefreshScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config: &RefreshSchedulerConfig{
			CronExpression:  cronExpression,
			LockTTL:         time.Duration(lockTTL) * time.Second,
			RefreshInterval: time.Duration(refreshInterval) * time.Second,
		},
	}
}

// InitRefreshScheduleTasks initializes the refresh schedule, with distributed
// locking when Redis is configured.
func (s *RefreshScheduler) InitRefreshScheduleTasks(ctx context.Context) {
	go func() {
		var refreshErrChan <-chan error
		var lock *redis.Lock

		if s.redisClient != nil {
			lock = redis.NewScheduledTaskLock(
				s.redisClient,
				"aqi_refresh_scheduler",
				s.getLockTTL(),
				s.getRefreshInterval(),
				"aqi_schedules",
			)

			if err := lock.Lock(ctx); err != nil {
				log.Errorf("Failed to acquire distributed lock, refresh scheduler will not be initialized: %v", err)
				return
			}

			refreshErrChan = lock.AutoRefresh(ctx)
		}

		if _, err := s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask); err != nil {
			log.Errorf("Failed to initialize refresh scheduler, cron will not be started: %v", err)
			return
		}

		s.cron.Start()
		log.Infof("AQI refresh scheduler started with cron expression: %s", s.config.CronExpression)

		var err error
		if refreshErrChan != nil {
			err = <-refreshErrChan
		} else {
			<-ctx.Done()
		}

		s.Stop()

		if lock != nil {
			// The run context is already done here, so release on a fresh one.
			if unlockErr := lock.Unlock(context.Background()); unlockErr != nil {
				log.Warnf("Failed to release refresh scheduler lock: %v", unlockErr)
			}
		}

		if err != nil {
			log.Errorf("AQI refresh scheduler stopped due to lock auto-refresh failure: %v", err)
		} else {
			log.Info("AQI refresh scheduler stopped gracefully")
		}
	}()
}

// ExecuteScheduledTask runs one warm-up refresh pass
func (s *RefreshScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()

	log.Info(msg.GetMessage("dashboard.cron.start"), zap.String("request_id", requestID))

	if _, err := s.useCase.RefreshDashboard(context.Background()); err != nil {
		log.Error(msg.GetMessage("dashboard.cron.failed", err.Error()), zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("dashboard.cron.end"), zap.String("request_id", requestID))
}

// Stop gracefully stops the scheduler
func (s *RefreshScheduler) Stop() {
	if s.cron != nil {
		cronCtx := s.cron.Stop()
		<-cronCtx.Done()
	}
}

func (s *RefreshScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 10 * time.Minute
}

func (s *RefreshScheduler) getRefreshInterval() time.Duration {
	if s.config.RefreshInterval > 0 {
		return s.config.RefreshInterval
	}
	return 1 * time.Minute
}
