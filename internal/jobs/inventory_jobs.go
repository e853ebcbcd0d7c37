package jobs

import (
	"context"

	"hrassets-backend/internal/domain"
	"hrassets-backend/internal/logger"
)

// ReconcileInventory audits the invariant 0 <= available <= quantity against
// the outstanding approved requests. The workflow keeps the counters
// consistent on its own; this job only reports drift, it never repairs it.
func (jr *JobRunner) ReconcileInventory() {
	jr.runWithRecovery("ReconcileInventory", func() {
		ctx := context.Background()

		approved, err := jr.store.RequestRepository.CountApprovedByAsset(ctx)
		if err != nil {
			logger.Error("Failed to count approved requests", "error", err)
			return
		}

		query := `SELECT id, company, quantity, available FROM assets`
		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to load assets for reconciliation", "error", err)
			return
		}
		defer rows.Close()

		checked, drifted := 0, 0
		for rows.Next() {
			var id, quantity, available int32
			var company string
			if err := rows.Scan(&id, &company, &quantity, &available); err != nil {
				logger.Error("Failed to scan asset row", "error", err)
				return
			}
			checked++

			if available < 0 || available > quantity {
				drifted++
				logger.Error("Asset availability out of bounds", "asset_id", id, "company", company, "quantity", quantity, "available", available)
				continue
			}
			// Every approved request holds one unit until it is returned.
			if expected := quantity - approved[id]; expected != available {
				drifted++
				logger.Warn("Asset availability drifted from approved request count",
					"asset_id", id, "company", company, "available", available, "expected", expected, "approved", approved[id])
			}
		}
		if err := rows.Err(); err != nil {
			logger.Error("Asset reconciliation scan failed", "error", err)
			return
		}

		logger.Info("Inventory reconciliation finished", "assets_checked", checked, "drifted", drifted)
	})
}

// SendPendingReminders emails each HR approver a count of requests still
// sitting in PENDING for their company.
func (jr *JobRunner) SendPendingReminders() {
	jr.runWithRecovery("SendPendingReminders", func() {
		ctx := context.Background()

		requests, err := jr.store.RequestRepository.ListAll(ctx)
		if err != nil {
			logger.Error("Failed to list requests", "error", err)
			return
		}
		pendingByCompany := make(map[string]int)
		for i := range requests {
			if requests[i].Status == domain.RequestStatusPending {
				pendingByCompany[requests[i].Company]++
			}
		}

		approverQuery := `SELECT email, COALESCE(company, '') FROM users WHERE role = $1`
		approverRows, err := jr.db.QueryContext(ctx, approverQuery, domain.UserRoleHR)
		if err != nil {
			logger.Error("Failed to list approvers", "error", err)
			return
		}
		defer approverRows.Close()

		sent := 0
		for approverRows.Next() {
			var email, company string
			if err := approverRows.Scan(&email, &company); err != nil {
				logger.Error("Failed to scan approver row", "error", err)
				return
			}
			count := pendingByCompany[company]
			if count == 0 {
				continue
			}
			if err := jr.emailSvc.SendPendingReminder(ctx, email, count); err != nil {
				logger.Error("Failed to send pending reminder", "email", email, "error", err)
				continue
			}
			sent++
		}
		if err := approverRows.Err(); err != nil {
			logger.Error("Approver scan failed", "error", err)
			return
		}

		logger.Info("Pending reminders sent", "count", sent)
	})
}
