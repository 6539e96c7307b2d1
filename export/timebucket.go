package export

import (
	"fmt"
	"time"

	"bitbucket.org/seferidata/pos_backend/utils"
)

const minutesPerDay = 24 * 60

// TimeBucket is one fixed-width window of a business date. Start and End are
// HH:MM:SS labels; the final bucket of the day ends at the "24:00:00" sentinel.
type TimeBucket struct {
	Start string `json:"start"`
	End   string `json:"end"`

	startMinute int
	endMinute   int
}

// StartTime resolves the bucket's inclusive lower boundary against a concrete day.
func (b TimeBucket) StartTime(day time.Time) time.Time {
	return day.Add(time.Duration(b.startMinute) * time.Minute)
}

// EndTime resolves the bucket's exclusive upper boundary against a concrete day.
// For the last bucket this is midnight of the following day, even though the
// label says 24:00:00.
func (b TimeBucket) EndTime(day time.Time) time.Time {
	return day.Add(time.Duration(b.endMinute) * time.Minute)
}

// GenerateTimeBuckets partitions a day into contiguous buckets of bucketMinutes
// each. The bucket count is ceil(1440/bucketMinutes); when the width does not
// divide 1440 evenly the last bucket is clipped at the day boundary. Pure and
// deterministic: the same width always yields the same sequence.
func GenerateTimeBuckets(bucketMinutes int) ([]TimeBucket, error) {
	if bucketMinutes <= 0 {
		return nil, fmt.Errorf("%w: bucket width must be a positive number of minutes, got %d", utils.ErrorInvalidInput, bucketMinutes)
	}
	if bucketMinutes > minutesPerDay {
		return nil, fmt.Errorf("%w: bucket width %d exceeds one day", utils.ErrorInvalidInput, bucketMinutes)
	}

	numBuckets := (minutesPerDay + bucketMinutes - 1) / bucketMinutes
	buckets := make([]TimeBucket, 0, numBuckets)
	for i := 0; i < numBuckets; i++ {
		startMinute := i * bucketMinutes
		endMinute := (i + 1) * bucketMinutes
		if endMinute > minutesPerDay {
			endMinute = minutesPerDay
		}
		buckets = append(buckets, TimeBucket{
			Start:       minuteLabel(startMinute),
			End:         minuteLabel(endMinute),
			startMinute: startMinute,
			endMinute:   endMinute,
		})
	}
	return buckets, nil
}

func minuteLabel(minute int) string {
	return fmt.Sprintf("%02d:%02d:00", minute/60, minute%60)
}
