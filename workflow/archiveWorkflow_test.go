package workflow

import (
	"errors"
	"sync"
	"testing"
	"time"

	mysqlDriver "github.com/go-sql-driver/mysql"
)

// NOTE: These tests are intentionally DB-free. They validate the intended
// archival semantics: re-running (or racing) the archive for a date must leave
// exactly one archive row with stable totals, because every write is keyed by
// (organization, date). Full DB integration tests need a MySQL environment.

type fakeArchiveStore struct {
	mu   sync.Mutex
	rows map[string]int // org|date -> total at archive time
	live map[string]int // org|date -> live total still unarchived
}

func newFakeArchiveStore() *fakeArchiveStore {
	return &fakeArchiveStore{rows: map[string]int{}, live: map[string]int{}}
}

// archive mirrors ArchiveDay's transaction shape: fold whatever is live into
// the aggregate (the ON DUPLICATE KEY branch adds to the existing totals),
// then clear the live rows.
func (s *fakeArchiveStore) archive(organizationId, date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := organizationId + "|" + date
	if total, ok := s.live[key]; ok {
		s.rows[key] = s.rows[key] + total
		delete(s.live, key)
	}
	// No live rows: keyed upsert finds nothing to add, existing row untouched.
}

func TestArchive_RerunLeavesOneRowWithStableTotals(t *testing.T) {
	s := newFakeArchiveStore()
	s.live["org-1|2026-08-27"] = 500

	for i := 0; i < 10; i++ {
		s.archive("org-1", "2026-08-27")
	}

	if len(s.rows) != 1 {
		t.Fatalf("expected exactly 1 archive row, got %d", len(s.rows))
	}
	if s.rows["org-1|2026-08-27"] != 500 {
		t.Fatalf("expected total 500 after re-runs, got %d", s.rows["org-1|2026-08-27"])
	}
	if len(s.live) != 0 {
		t.Fatalf("expected live store cleared, got %d entries", len(s.live))
	}
}

func TestArchive_LateRowsAddToExistingTotals(t *testing.T) {
	s := newFakeArchiveStore()
	s.live["org-1|2026-08-27"] = 500
	s.archive("org-1", "2026-08-27")

	// A late-synced order for the already-archived date shows up live.
	s.live["org-1|2026-08-27"] = 50
	s.archive("org-1", "2026-08-27")

	if len(s.rows) != 1 {
		t.Fatalf("expected exactly 1 archive row, got %d", len(s.rows))
	}
	// The second run must reconcile additively, never overwrite the first
	// run's totals with only the late rows.
	if s.rows["org-1|2026-08-27"] != 550 {
		t.Fatalf("expected total 550 after late rows, got %d", s.rows["org-1|2026-08-27"])
	}
	if len(s.live) != 0 {
		t.Fatalf("expected live store cleared, got %d entries", len(s.live))
	}
}

func TestArchive_ConcurrentRunsAreSafe(t *testing.T) {
	for run := 0; run < 100; run++ {
		s := newFakeArchiveStore()
		s.live["org-1|2026-08-27"] = 500

		var wg sync.WaitGroup
		for i := 0; i < 25; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.archive("org-1", "2026-08-27")
			}()
		}
		wg.Wait()

		if len(s.rows) != 1 || s.rows["org-1|2026-08-27"] != 500 {
			t.Fatalf("run=%d expected single row with total 500, got %v", run, s.rows)
		}
	}
}

func TestDayBefore(t *testing.T) {
	utc := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	cases := []struct {
		a, b time.Time
		want bool
	}{
		{utc(2026, 8, 27), utc(2026, 8, 28), true},
		{utc(2026, 8, 28), utc(2026, 8, 28), false},
		{utc(2026, 8, 29), utc(2026, 8, 28), false},
		{utc(2025, 12, 31), utc(2026, 1, 1), true},
		// Same instant in different locations is still the same calendar date
		// comparison; only Y/M/D fields matter.
		{time.Date(2026, 8, 27, 23, 59, 0, 0, time.UTC), utc(2026, 8, 28), true},
	}
	for _, tc := range cases {
		if got := dayBefore(tc.a, tc.b); got != tc.want {
			t.Fatalf("dayBefore(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestIsDuplicateKeyErr(t *testing.T) {
	if !isDuplicateKeyErr(&mysqlDriver.MySQLError{Number: 1062, Message: "Duplicate entry"}) {
		t.Fatal("expected 1062 to be a duplicate key error")
	}
	if isDuplicateKeyErr(&mysqlDriver.MySQLError{Number: 1213, Message: "Deadlock found"}) {
		t.Fatal("expected 1213 not to be a duplicate key error")
	}
	if isDuplicateKeyErr(errors.New("plain")) {
		t.Fatal("expected plain error not to be a duplicate key error")
	}
}
