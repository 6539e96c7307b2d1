package workflow

import (
	"context"
	"time"

	"bitbucket.org/seferidata/pos_backend/config"
	"bitbucket.org/seferidata/pos_backend/models"
	"bitbucket.org/seferidata/pos_backend/utils"
	"github.com/bsm/redislock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ArchiveScheduler drives the daily archive workflow. Each tick it checks, per
// organization, whether yesterday (in the organization's timezone) has been
// archived by this process yet, and runs ArchiveDay if not.
//
// The lastArchived marker is process-local and advisory: it only avoids
// re-running work this process already confirmed. Correctness across restarts
// and across concurrent processes comes from ArchiveDay's keyed writes, not
// from the marker or the redis lock.
type ArchiveScheduler struct {
	DB          *gorm.DB
	Logger      *logrus.Logger
	SchedulerID string

	PollInterval time.Duration
	LockTTL      time.Duration

	// Archive and Now are swappable in tests.
	Archive func(ctx context.Context, organizationId string, businessDate string) error
	Now     func() time.Time

	lastArchived map[string]string
}

func NewArchiveScheduler(db *gorm.DB, logger *logrus.Logger) *ArchiveScheduler {
	return &ArchiveScheduler{
		DB:           db,
		Logger:       logger,
		SchedulerID:  uuid.NewString(),
		PollInterval: 5 * time.Minute,
		LockTTL:      10 * time.Minute,
		Archive:      ArchiveDay,
		Now:          time.Now,
		lastArchived: map[string]string{},
	}
}

func (s *ArchiveScheduler) Run(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		s.CheckAndArchive(ctx)
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.PollInterval):
		}
	}
}

// CheckAndArchive runs one scheduling pass over all organizations. Failures
// are logged and retried on the next tick; the marker only advances on
// confirmed success.
func (s *ArchiveScheduler) CheckAndArchive(ctx context.Context) {
	orgs, err := models.GetAllOrganizations(ctx)
	if err != nil {
		if s.Logger != nil {
			config.LogError(s.Logger, "archiveScheduler.go", "CheckAndArchive", "listing organizations", s.SchedulerID, err)
		}
		return
	}
	for _, org := range orgs {
		s.checkOrganization(ctx, org)
	}
}

func (s *ArchiveScheduler) checkOrganization(ctx context.Context, org models.Organization) {
	today, err := utils.ConvertToDate(s.Now().UTC(), org.Timezone)
	if err != nil {
		if s.Logger != nil {
			config.LogError(s.Logger, "archiveScheduler.go", "checkOrganization", "resolving organization timezone", logrus.Fields{
				"organization_id": org.ID,
				"timezone":        org.Timezone,
			}, err)
		}
		return
	}
	yesterday := today.AddDate(0, 0, -1).Format(utils.DateLayout)
	if s.lastArchived[org.ID] == yesterday {
		return
	}

	// Best-effort lock so multiple schedulers don't burn the same work. Not
	// acquiring it (or having no redis at all) is fine; ArchiveDay is
	// idempotent either way.
	release := s.tryLock(ctx, org.ID, yesterday)
	if release == nil {
		return
	}
	defer release()

	if err := s.Archive(ctx, org.ID, yesterday); err != nil {
		if s.Logger != nil {
			config.LogError(s.Logger, "archiveScheduler.go", "checkOrganization", "archiving business date", logrus.Fields{
				"scheduler_id":    s.SchedulerID,
				"organization_id": org.ID,
				"business_date":   yesterday,
			}, err)
		}
		return
	}

	s.lastArchived[org.ID] = yesterday
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"field":           "ArchiveScheduler",
			"scheduler_id":    s.SchedulerID,
			"organization_id": org.ID,
			"business_date":   yesterday,
		}).Info("archived business date")
	}
}

// tryLock returns a release func, or nil when another scheduler holds the
// lock. Without redis it returns a no-op release so the work still runs.
func (s *ArchiveScheduler) tryLock(ctx context.Context, organizationId string, businessDate string) func() {
	locker := config.GetRedisLock()
	if locker == nil {
		return func() {}
	}
	key := "archive:" + organizationId + ":" + businessDate
	lock, err := locker.Obtain(ctx, key, s.LockTTL, nil)
	if err != nil {
		if err != redislock.ErrNotObtained && s.Logger != nil {
			s.Logger.WithFields(logrus.Fields{
				"field":           "ArchiveScheduler",
				"organization_id": organizationId,
				"business_date":   businessDate,
			}).Warn("obtaining archive lock: " + err.Error())
		}
		if err == redislock.ErrNotObtained {
			return nil
		}
		// Redis trouble, proceed unlocked.
		return func() {}
	}
	return func() { _ = lock.Release(context.Background()) }
}
