package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/activities-api/internal/analytics"
	"github.com/vietanh2810/activities-api/internal/domain"
)

func TestAnalyticsService_Summary(t *testing.T) {
	store := newMemStore()
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	svc := NewAnalyticsService(fakeMembers{store}, fakeActivities{store}, fakeParticipants{store})
	svc.now = func() time.Time { return now }

	member := store.addMember(domain.Member{
		JoinedAt:            now.AddDate(0, -1, 0),
		PreferredCategories: []string{"music"},
	})

	at := func(days int, categories ...string) domain.Activity {
		begin := now.AddDate(0, 0, days)
		return store.addActivity(domain.Activity{
			Type: domain.ActivityEvent, Name: "x", BeginAt: begin, EndAt: begin.Add(time.Hour), IsPublic: true, Categories: categories,
		})
	}
	before := at(-40)
	attended1 := at(-10)
	attended2 := at(-5)
	missed := at(-3)
	upcoming := at(5, "Music")

	participants := fakeParticipants{store}
	_, err := participants.Create(context.Background(), domain.Participant{ActivityID: attended1.ID, MemberID: member.ID, Rate: ptr(2)})
	require.NoError(t, err)
	_, err = participants.Create(context.Background(), domain.Participant{ActivityID: attended2.ID, MemberID: member.ID, Rate: ptr(4)})
	require.NoError(t, err)
	_, err = participants.Create(context.Background(), domain.Participant{ActivityID: before.ID, MemberID: member.ID})
	require.NoError(t, err)

	history, err := svc.GetHistory(context.Background(), member.ID)
	require.NoError(t, err)
	require.Len(t, history, 4, "activities before joining are left out")
	assert.Equal(t, missed.ID, history[2].Activity.ID)
	assert.True(t, history[2].Missed)
	assert.Equal(t, upcoming.ID, history[3].Activity.ID)
	assert.True(t, history[3].Recommended)

	summary, err := svc.Summary(context.Background(), member.ID, analytics.TimelineRequest{Granularity: analytics.GranularityMonth})
	require.NoError(t, err)

	assert.Equal(t, 67, summary.PresenceRate)
	assert.Equal(t, 2, summary.Attended)
	assert.Equal(t, 1, summary.Missed)
	assert.Equal(t, 1, summary.Upcoming)
	assert.Equal(t, 1, summary.Recommended)
	assert.Len(t, summary.Timeline, 30)
	require.NotNil(t, summary.Trend)
	assert.InDelta(t, 0.5, summary.Trend.Slope, 1e-9)
}

func TestAnalyticsService_Summary_NoTrend(t *testing.T) {
	store := newMemStore()
	svc := NewAnalyticsService(fakeMembers{store}, fakeActivities{store}, fakeParticipants{store})
	member := store.addMember(domain.Member{JoinedAt: time.Now().UTC()})

	summary, err := svc.Summary(context.Background(), member.ID, analytics.TimelineRequest{Granularity: analytics.GranularityYear})
	require.NoError(t, err)

	assert.Nil(t, summary.Trend)
	assert.Equal(t, 0, summary.PresenceRate)
	assert.Len(t, summary.Timeline, 12)

	_, err = svc.GetHistory(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
