package jobs

import (
	"context"

	"carrental-backend/internal/logger"
)

// SendUnpaidBillReminders emails every customer holding an unpaid bill.
func (jr *JobRunner) SendUnpaidBillReminders() {
	jr.runWithRecovery("SendUnpaidBillReminders", func() {
		ctx := context.Background()

		bills, err := jr.store.Bills().ListUnpaid(ctx)
		if err != nil {
			logger.Error("Failed to list unpaid bills", "error", err)
			return
		}

		sent := 0
		for i := range bills {
			bill := &bills[i]
			if err := jr.emailSvc.SendUnpaidBillReminder(ctx, bill); err != nil {
				logger.Error("Failed to send unpaid bill reminder",
					"bill_id", bill.ID,
					"customer_email", bill.CustomerEmail,
					"error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent unpaid bill reminders", "unpaid", len(bills), "sent", sent)
	})
}
