package export

import (
	"errors"
	"testing"
	"time"

	"bitbucket.org/seferidata/pos_backend/utils"
)

func TestGenerateTimeBuckets_EvenWidth(t *testing.T) {
	buckets, err := GenerateTimeBuckets(60)
	if err != nil {
		t.Fatalf("GenerateTimeBuckets(60) error: %v", err)
	}
	if len(buckets) != 24 {
		t.Fatalf("expected 24 buckets, got %d", len(buckets))
	}
	if buckets[0].Start != "00:00:00" || buckets[0].End != "01:00:00" {
		t.Fatalf("unexpected first bucket: %s-%s", buckets[0].Start, buckets[0].End)
	}
	last := buckets[len(buckets)-1]
	if last.Start != "23:00:00" || last.End != "24:00:00" {
		t.Fatalf("unexpected last bucket: %s-%s", last.Start, last.End)
	}
}

func TestGenerateTimeBuckets_UnevenWidthClipsLast(t *testing.T) {
	buckets, err := GenerateTimeBuckets(90)
	if err != nil {
		t.Fatalf("GenerateTimeBuckets(90) error: %v", err)
	}
	if len(buckets) != 16 {
		t.Fatalf("expected 16 buckets, got %d", len(buckets))
	}
	last := buckets[len(buckets)-1]
	if last.Start != "22:30:00" || last.End != "24:00:00" {
		t.Fatalf("unexpected clipped last bucket: %s-%s", last.Start, last.End)
	}
}

func TestGenerateTimeBuckets_WholeDayIsOneBucket(t *testing.T) {
	buckets, err := GenerateTimeBuckets(1440)
	if err != nil {
		t.Fatalf("GenerateTimeBuckets(1440) error: %v", err)
	}
	if len(buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(buckets))
	}
	if buckets[0].Start != "00:00:00" || buckets[0].End != "24:00:00" {
		t.Fatalf("unexpected bucket: %s-%s", buckets[0].Start, buckets[0].End)
	}
}

func TestGenerateTimeBuckets_Contiguous(t *testing.T) {
	for _, width := range []int{1, 15, 37, 60, 90, 720} {
		buckets, err := GenerateTimeBuckets(width)
		if err != nil {
			t.Fatalf("GenerateTimeBuckets(%d) error: %v", width, err)
		}
		for i := 1; i < len(buckets); i++ {
			if buckets[i].Start != buckets[i-1].End {
				t.Fatalf("width=%d bucket %d not contiguous: %s then %s", width, i, buckets[i-1].End, buckets[i].Start)
			}
		}
		if buckets[0].Start != "00:00:00" {
			t.Fatalf("width=%d does not start at midnight: %s", width, buckets[0].Start)
		}
		if buckets[len(buckets)-1].End != "24:00:00" {
			t.Fatalf("width=%d does not end at day boundary: %s", width, buckets[len(buckets)-1].End)
		}
	}
}

func TestGenerateTimeBuckets_RejectsInvalidWidths(t *testing.T) {
	for _, width := range []int{0, -5, 1441} {
		_, err := GenerateTimeBuckets(width)
		if err == nil {
			t.Fatalf("GenerateTimeBuckets(%d) expected error", width)
		}
		if !errors.Is(err, utils.ErrorInvalidInput) {
			t.Fatalf("GenerateTimeBuckets(%d) expected invalid input error, got %v", width, err)
		}
	}
}

func TestTimeBucket_EndTimeOfLastBucketIsNextMidnight(t *testing.T) {
	day, err := utils.ParseBusinessDate("2026-08-28")
	if err != nil {
		t.Fatalf("ParseBusinessDate error: %v", err)
	}
	buckets, err := GenerateTimeBuckets(60)
	if err != nil {
		t.Fatalf("GenerateTimeBuckets(60) error: %v", err)
	}
	last := buckets[len(buckets)-1]
	want := day.AddDate(0, 0, 1)
	if !last.EndTime(day).Equal(want) {
		t.Fatalf("expected last bucket end %v, got %v", want, last.EndTime(day))
	}
	if !buckets[0].StartTime(day).Equal(day) {
		t.Fatalf("expected first bucket start %v, got %v", day, buckets[0].StartTime(day))
	}
}

func TestTimeBucket_QueryWindowNeverUsesSentinelClock(t *testing.T) {
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	buckets, err := GenerateTimeBuckets(90)
	if err != nil {
		t.Fatalf("GenerateTimeBuckets(90) error: %v", err)
	}
	last := buckets[len(buckets)-1]
	end := last.EndTime(day)
	if end.Hour() != 0 || end.Minute() != 0 || end.Day() != 29 {
		t.Fatalf("expected midnight of the next day, got %v", end)
	}
}
