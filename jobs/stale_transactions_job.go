package jobs

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/adjeiboateng/brightkids_backend/database"
	"github.com/adjeiboateng/brightkids_backend/models"
	"github.com/adjeiboateng/brightkids_backend/notifications"
)

const staleAfter = time.Hour

// ReportStalePendingTransactions flags transactions that have sat in pending
// for over an hour. A stale row usually means the customer abandoned checkout,
// but it can also mean Paystack charged them and webhook delivery is broken,
// so the job reports for manual reconciliation and never mutates anything.
func ReportStalePendingTransactions() {
	log.Println("Running job: ReportStalePendingTransactions...")

	cutoff := time.Now().Add(-staleAfter)

	var stale []models.PendingTransaction
	err := database.DB.
		Where("status = ? AND created_at < ?", models.TxnStatusPending, cutoff).
		Order("created_at asc").
		Find(&stale).Error
	if err != nil {
		log.Printf("Error checking for stale pending transactions: %v", err)
		return
	}

	if len(stale) == 0 {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%d Stale Pending Transactions</h1><p>Check these against the Paystack dashboard:</p><ul>", len(stale))
	for _, txn := range stale {
		log.Printf("⚠️ Stale pending transaction %s (%s, %s, created %s)",
			txn.Reference, txn.ProgramType, notifications.FormatCedis(txn.AmountPesewas), txn.CreatedAt.Format(time.RFC3339))
		fmt.Fprintf(&b, "<li>%s — %s — %s — created %s</li>",
			txn.Reference, txn.ProgramType, notifications.FormatCedis(txn.AmountPesewas), txn.CreatedAt.Format("2006-01-02 15:04"))
	}
	b.WriteString("</ul>")

	notifications.SendAdminEmail("Stale pending transactions need review", b.String())
}
