package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/workaxis/hrms-backend-go/internal/domain/leave"
	"github.com/workaxis/hrms-backend-go/internal/pkg/clock"
)

const leaveBalanceJobName = "initialize_leave_balances"

// LeaveJobs keeps every active employee supplied with a balance row per
// active leave type for the current year.
type LeaveJobs struct {
	leaveService leave.LeaveService
	clock        clock.Clock
}

func NewLeaveJobs(leaveService leave.LeaveService, clk clock.Clock) *LeaveJobs {
	return &LeaveJobs{leaveService: leaveService, clock: clk}
}

func (j *LeaveJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob(leaveBalanceJobName, interval, j.InitializeBalances)
}

func (j *LeaveJobs) InitializeBalances(ctx context.Context) error {
	year := j.clock.Now().Year()

	created, err := j.leaveService.InitializeBalancesForActiveEmployees(ctx, year)
	if err != nil {
		return fmt.Errorf("initialize leave balances for %d: %w", year, err)
	}
	if created > 0 {
		slog.Info("cron: leave balances initialized", "year", year, "created", created)
	}
	return nil
}
