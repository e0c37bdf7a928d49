package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	feesService "afa_backend/internals/features/finance/fees/service"
	authModel "afa_backend/internals/features/users/auth/model"
)

// Start registers the recurring jobs. Call once after the DB is up.
func Start(db *gorm.DB) {
	c := cron.New()

	// nightly: drop long-expired blacklist entries
	if _, err := c.AddFunc("0 3 * * *", func() { cleanupBlacklist(db) }); err != nil {
		log.Printf("[CRON] blacklist job registration failed: %v", err)
	}

	// hourly: pending payments past their due date become overdue
	if _, err := c.AddFunc("@hourly", func() {
		n, err := feesService.MarkOverduePayments(db)
		if err != nil {
			log.Printf("[CRON] overdue sweep failed: %v", err)
		} else if n > 0 {
			log.Printf("[CRON] %d payments marked overdue", n)
		}
	}); err != nil {
		log.Printf("[CRON] overdue job registration failed: %v", err)
	}

	c.Start()
	log.Println("✅ Scheduler started.")
}

func cleanupBlacklist(db *gorm.DB) {
	ttlDays := 7
	if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			ttlDays = parsed
		}
	}

	deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

	res := db.Unscoped().
		Where("expired_at < ?", deleteBefore).
		Delete(&authModel.TokenBlacklist{})
	if res.Error != nil {
		log.Printf("[CLEANUP] blacklist purge failed: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[CLEANUP] %d expired tokens removed", res.RowsAffected)
	}
}
