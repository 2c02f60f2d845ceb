package analytics

import (
	"time"

	"github.com/goodsign/monday"

	"github.com/vietanh2810/activities-api/internal/domain"
)

type Granularity string

const (
	GranularityMonth     Granularity = "month"
	GranularityTrimester Granularity = "trimester"
	GranularityYear      Granularity = "year"
	GranularityCustom    Granularity = "custom"
)

// Custom ranges up to this many days are bucketed per day.
const maxDailyBuckets = 31

var (
	ErrInvalidGranularity = domain.NewKindError(domain.ErrValidation, "invalid timeline granularity")
	ErrInvalidRange       = domain.NewKindError(domain.ErrValidation, "timeline range must end after it starts")
)

type TimelineRequest struct {
	Granularity Granularity
	// Anchor selects the month, quarter or year. Location is taken from it.
	Anchor time.Time
	// From and To bound a custom range, both days inclusive.
	From   time.Time
	To     time.Time
	Locale monday.Locale
}

// Bucket counts attended activities beginning in [Start, End).
type Bucket struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
	Count int       `json:"count"`
}

// Timeline buckets attended activities over the requested window. Empty
// buckets are kept so the series has no gaps.
func Timeline(items []domain.ActivityHistoryItem, req TimelineRequest) ([]Bucket, error) {
	locale := req.Locale
	if locale == "" {
		locale = monday.LocaleEnUS
	}

	var buckets []Bucket
	switch req.Granularity {
	case GranularityMonth:
		start := monthStart(req.Anchor)
		buckets = dailyBuckets(start, start.AddDate(0, 1, 0), locale)
	case GranularityTrimester:
		start := monthStart(req.Anchor)
		start = start.AddDate(0, -((int(start.Month()) - 1) % 3), 0)
		buckets = monthlyBuckets(start, start.AddDate(0, 3, 0), locale)
	case GranularityYear:
		start := time.Date(req.Anchor.Year(), time.January, 1, 0, 0, 0, 0, req.Anchor.Location())
		buckets = monthlyBuckets(start, start.AddDate(1, 0, 0), locale)
	case GranularityCustom:
		if req.From.IsZero() || req.To.IsZero() || req.To.Before(req.From) {
			return nil, ErrInvalidRange
		}
		start, end := dayStart(req.From), dayStart(req.To).AddDate(0, 0, 1)
		if !start.AddDate(0, 0, maxDailyBuckets).Before(end) {
			buckets = dailyBuckets(start, end, locale)
		} else {
			buckets = monthlyBuckets(monthStart(start), monthStart(end.AddDate(0, 0, -1)).AddDate(0, 1, 0), locale)
		}
	default:
		return nil, ErrInvalidGranularity
	}

	for _, item := range items {
		if !item.Attended {
			continue
		}
		at := item.Activity.BeginAt
		for i := range buckets {
			if !at.Before(buckets[i].Start) && at.Before(buckets[i].End) {
				buckets[i].Count++
				break
			}
		}
	}

	return buckets, nil
}

func dailyBuckets(start, end time.Time, locale monday.Locale) []Bucket {
	var buckets []Bucket
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		buckets = append(buckets, Bucket{
			Start: day,
			End:   day.AddDate(0, 0, 1),
			Label: monday.Format(day, "2 Jan", locale),
		})
	}
	return buckets
}

func monthlyBuckets(start, end time.Time, locale monday.Locale) []Bucket {
	var buckets []Bucket
	for month := start; month.Before(end); month = month.AddDate(0, 1, 0) {
		buckets = append(buckets, Bucket{
			Start: month,
			End:   month.AddDate(0, 1, 0),
			Label: monday.Format(month, "January 2006", locale),
		})
	}
	return buckets
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
