package CronJobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"LogiTrack/Store"

	"github.com/robfig/cron/v3"
)

// OverdueChecker periodically sweeps the request collection and logs
// requests past their schedule. Read-only: delay is a derived property
// and is never written back.
type OverdueChecker struct {
	cronScheduler  *cron.Cron
	data           *Store.Data
	runImmediately bool
	jobID          cron.EntryID
}

func NewOverdueChecker(data *Store.Data, runImmediately bool) *OverdueChecker {
	return &OverdueChecker{
		cronScheduler:  cron.New(cron.WithSeconds()),
		data:           data,
		runImmediately: runImmediately,
	}
}

// Start schedules the sweep every 15 minutes.
func (o *OverdueChecker) Start() error {
	var err error
	o.jobID, err = o.cronScheduler.AddFunc("0 */15 * * * *", func() {
		o.runSweep()
	})
	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	o.cronScheduler.Start()
	fmt.Println("Overdue request sweep started - runs every 15 minutes")

	if o.runImmediately {
		o.runSweep()
	}
	return nil
}

func (o *OverdueChecker) Stop() {
	if o.cronScheduler != nil {
		o.cronScheduler.Stop()
		log.Println("Overdue request sweep stopped")
	}
}

// UpdateSchedule changes the sweep schedule.
// Format: "0 */15 * * * *" = every 15 minutes.
func (o *OverdueChecker) UpdateSchedule(schedule string) error {
	o.cronScheduler.Remove(o.jobID)

	var err error
	o.jobID, err = o.cronScheduler.AddFunc(schedule, func() {
		o.runSweep()
	})
	if err != nil {
		return fmt.Errorf("error updating schedule: %w", err)
	}

	log.Printf("Overdue sweep schedule updated to: %s\n", schedule)
	return nil
}

func (o *OverdueChecker) runSweep() {
	requests, err := o.data.Requests.FetchAll(context.Background())
	if err != nil {
		log.Printf("Overdue sweep failed to fetch requests: %v", err)
		return
	}

	now := time.Now()
	overdue := 0
	for _, r := range requests {
		if r.IsDelayed(now) {
			overdue++
			log.Printf("Request %s (%s) is overdue, scheduled for %s", r.InvoiceNumber, r.ClientName, r.ScheduledFor)
		}
	}
	if overdue > 0 {
		log.Printf("Overdue sweep found %d delayed request(s)", overdue)
	}
}
