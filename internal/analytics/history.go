// Package analytics derives per-member statistics from activity history.
// Everything here is pure; callers load the data.
package analytics

import (
	"math"
	"strings"
	"time"

	"github.com/vietanh2810/activities-api/internal/domain"
)

// BuildHistory joins activities with the member's participations as seen at now.
// A non-public activity the member never registered for is listed but is
// neither missed nor recommended, since the member could not join it.
func BuildHistory(activities []domain.Activity, participations []domain.Participant, preferred []string, now time.Time) []domain.ActivityHistoryItem {
	byActivity := make(map[uint]domain.Participant, len(participations))
	for _, p := range participations {
		byActivity[p.ActivityID] = p
	}

	items := make([]domain.ActivityHistoryItem, 0, len(activities))
	for _, a := range activities {
		item := domain.ActivityHistoryItem{
			Activity: a,
			Upcoming: a.BeginAt.After(now),
		}
		if p, ok := byActivity[a.ID]; ok {
			p := p
			item.Participation = &p
		}

		joinable := a.IsPublic || item.Participation != nil
		if !item.Upcoming {
			item.Attended = item.Participation != nil && item.Participation.PointBearing()
			item.Missed = !item.Attended && joinable
		} else {
			item.Recommended = item.Participation == nil && joinable && Recommend(preferred, a.CategorySet())
		}

		items = append(items, item)
	}

	return items
}

// PresenceRate is the rounded percentage of past activities attended.
func PresenceRate(items []domain.ActivityHistoryItem) int {
	attended, missed := 0, 0
	for _, item := range items {
		switch {
		case item.Attended:
			attended++
		case item.Missed:
			missed++
		}
	}
	if attended+missed == 0 {
		return 0
	}

	return int(math.Round(100 * float64(attended) / float64(attended+missed)))
}

// Recommend reports whether the two category sets intersect, ignoring case.
func Recommend(memberCategories, activityCategories []string) bool {
	if len(memberCategories) == 0 || len(activityCategories) == 0 {
		return false
	}

	wanted := make(map[string]struct{}, len(memberCategories))
	for _, c := range memberCategories {
		wanted[normalizeCategory(c)] = struct{}{}
	}
	for _, c := range activityCategories {
		c = normalizeCategory(c)
		if c == "" {
			continue
		}
		if _, ok := wanted[c]; ok {
			return true
		}
	}

	return false
}

func normalizeCategory(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}
