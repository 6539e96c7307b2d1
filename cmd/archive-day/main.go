package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"bitbucket.org/seferidata/pos_backend/config"
	"bitbucket.org/seferidata/pos_backend/models"
	"bitbucket.org/seferidata/pos_backend/utils"
	"bitbucket.org/seferidata/pos_backend/workflow"
)

func main() {
	organizationID := flag.String("organization-id", "", "Optional: archive only one organization. If empty, archives all organizations.")
	date := flag.String("date", "", "Optional: business date (YYYY-MM-DD). Defaults to yesterday in the organization timezone.")
	flag.Parse()

	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil)")
		os.Exit(1)
	}

	// Ensure schema is up-to-date (creates the archive tables if missing).
	models.MigrateTable()

	var orgs []models.Organization
	orgQuery := db.WithContext(ctx).Model(&models.Organization{})
	if strings.TrimSpace(*organizationID) != "" {
		orgQuery = orgQuery.Where("id = ?", strings.TrimSpace(*organizationID))
	}
	if err := orgQuery.Find(&orgs).Error; err != nil {
		fmt.Fprintf(os.Stderr, "failed to list organizations: %v\n", err)
		os.Exit(1)
	}
	if len(orgs) == 0 {
		fmt.Fprintln(os.Stderr, "no organizations found to archive")
		return
	}

	failed := 0
	for _, org := range orgs {
		businessDate := strings.TrimSpace(*date)
		if businessDate == "" {
			today, err := utils.ConvertToDate(time.Now().UTC(), org.Timezone)
			if err != nil {
				fmt.Fprintf(os.Stderr, "organization %s: failed to resolve timezone: %v\n", org.ID, err)
				failed++
				continue
			}
			businessDate = today.AddDate(0, 0, -1).Format(utils.DateLayout)
		}

		if err := workflow.ArchiveDay(ctx, org.ID, businessDate); err != nil {
			fmt.Fprintf(os.Stderr, "organization %s: archive %s failed: %v\n", org.ID, businessDate, err)
			failed++
			continue
		}
		fmt.Printf("organization %s: archived %s\n", org.ID, businessDate)
	}
	if failed > 0 {
		os.Exit(1)
	}
}
