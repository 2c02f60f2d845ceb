package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/activities-api/internal/domain"
)

var now = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func activityAt(id uint, at time.Time, categories ...string) domain.Activity {
	return domain.Activity{
		ID:         id,
		Type:       domain.ActivityEvent,
		Name:       "activity",
		BeginAt:    at,
		EndAt:      at.Add(time.Hour),
		IsPublic:   true,
		Categories: categories,
	}
}

func TestBuildHistory(t *testing.T) {
	past := now.AddDate(0, 0, -3)
	future := now.AddDate(0, 0, 3)

	activities := []domain.Activity{
		activityAt(1, past),
		activityAt(2, past),
		activityAt(3, past),
		activityAt(4, future, "Music"),
		activityAt(5, future, "music"),
		activityAt(6, future, "sport"),
	}
	participations := []domain.Participant{
		{ID: 10, ActivityID: 1, MemberID: 7},
		{ID: 11, ActivityID: 2, MemberID: 7, IsTemp: true},
		{ID: 12, ActivityID: 5, MemberID: 7, IsInterested: true},
	}

	items := BuildHistory(activities, participations, []string{"music"}, now)
	require.Len(t, items, 6)

	assert.True(t, items[0].Attended)
	assert.False(t, items[0].Missed)

	assert.False(t, items[1].Attended, "a tentative registration is not attendance")
	assert.True(t, items[1].Missed)

	assert.True(t, items[2].Missed)
	assert.Nil(t, items[2].Participation)

	assert.True(t, items[3].Upcoming)
	assert.True(t, items[3].Recommended)
	assert.False(t, items[3].Missed)

	assert.True(t, items[4].Upcoming)
	assert.False(t, items[4].Recommended, "already acted on")

	assert.True(t, items[5].Upcoming)
	assert.False(t, items[5].Recommended)
}

func TestBuildHistory_PastActivityNeverRecommended(t *testing.T) {
	items := BuildHistory([]domain.Activity{activityAt(1, now.Add(-time.Hour), "music")}, nil, []string{"music"}, now)

	require.Len(t, items, 1)
	assert.False(t, items[0].Upcoming)
	assert.False(t, items[0].Recommended)
	assert.True(t, items[0].Missed)
}

func TestBuildHistory_PrivateActivities(t *testing.T) {
	private := func(id uint, at time.Time) domain.Activity {
		a := activityAt(id, at, "music")
		a.IsPublic = false
		return a
	}
	activities := []domain.Activity{
		private(1, now.AddDate(0, 0, -2)),
		private(2, now.AddDate(0, 0, -1)),
		private(3, now.AddDate(0, 0, 2)),
	}
	participations := []domain.Participant{{ID: 10, ActivityID: 2, MemberID: 7, IsTemp: true}}

	items := BuildHistory(activities, participations, []string{"music"}, now)
	require.Len(t, items, 3)

	assert.False(t, items[0].Missed, "not open to the member")
	assert.False(t, items[0].Attended)
	assert.True(t, items[1].Missed, "registered but did not attend")
	assert.False(t, items[2].Recommended)
	assert.Equal(t, 0, PresenceRate(items[:1]))
	assert.Equal(t, 0, PresenceRate(items))
}

func TestPresenceRate(t *testing.T) {
	tests := []struct {
		name     string
		attended int
		missed   int
		upcoming int
		want     int
	}{
		{name: "no past activities", upcoming: 2, want: 0},
		{name: "all attended", attended: 4, want: 100},
		{name: "two of three", attended: 2, missed: 1, want: 67},
		{name: "one of three", attended: 1, missed: 2, upcoming: 5, want: 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var items []domain.ActivityHistoryItem
			for i := 0; i < tt.attended; i++ {
				items = append(items, domain.ActivityHistoryItem{Attended: true})
			}
			for i := 0; i < tt.missed; i++ {
				items = append(items, domain.ActivityHistoryItem{Missed: true})
			}
			for i := 0; i < tt.upcoming; i++ {
				items = append(items, domain.ActivityHistoryItem{Upcoming: true})
			}

			assert.Equal(t, tt.want, PresenceRate(items))
		})
	}
}

func TestRecommend(t *testing.T) {
	assert.True(t, Recommend([]string{"Music", "sport"}, []string{" music "}))
	assert.False(t, Recommend([]string{"music"}, []string{"sport"}))
	assert.False(t, Recommend(nil, []string{"sport"}))
	assert.False(t, Recommend([]string{"sport"}, nil))
}
