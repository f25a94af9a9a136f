package jobs

import (
	"time"

	tasks "caracoroa/task"
)

func StartMaintenanceScheduler() {
	ticker := time.NewTicker(1 * time.Hour)
	go func() {
		for {
			<-ticker.C
			tasks.CleanupExpiredSessions()
		}
	}()
}
