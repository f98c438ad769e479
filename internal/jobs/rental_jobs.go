package jobs

import (
	"context"
	"time"

	"carrental-backend/internal/logger"
)

// SendOverdueReminders emails every customer whose active rental is past
// its scheduled return date as of today.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()
		today := time.Now().UTC().Format("2006-01-02")

		rentals, err := jr.store.Rentals().ListOverdue(ctx, today)
		if err != nil {
			logger.Error("Failed to list overdue rentals", "error", err)
			return
		}

		sent := 0
		for i := range rentals {
			rt := &rentals[i]
			if err := jr.emailSvc.SendOverdueReminder(ctx, rt); err != nil {
				logger.Error("Failed to send overdue reminder",
					"rental_id", rt.ID,
					"customer_email", rt.CustomerEmail,
					"error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent overdue reminders", "overdue", len(rentals), "sent", sent)
	})
}
