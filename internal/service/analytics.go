package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vietanh2810/activities-api/internal/analytics"
	"github.com/vietanh2810/activities-api/internal/domain"
)

type HistoryMemberRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Member, error)
}

type HistoryActivityRepository interface {
	FindSince(ctx context.Context, since time.Time) ([]domain.Activity, error)
}

type HistoryParticipantRepository interface {
	FindByMember(ctx context.Context, memberID uint) ([]domain.Participant, error)
}

// Summary bundles the statistics shown on a member dashboard. Trend is nil
// when fewer than two rated activities exist.
type Summary struct {
	MemberID     uint               `json:"member_id"`
	PresenceRate int                `json:"presence_rate"`
	Attended     int                `json:"attended"`
	Missed       int                `json:"missed"`
	Upcoming     int                `json:"upcoming"`
	Recommended  int                `json:"recommended"`
	Timeline     []analytics.Bucket `json:"timeline"`
	Trend        *analytics.Trend   `json:"trend,omitempty"`
}

type AnalyticsService struct {
	members      HistoryMemberRepository
	activities   HistoryActivityRepository
	participants HistoryParticipantRepository
	now          Clock
}

func NewAnalyticsService(members HistoryMemberRepository, activities HistoryActivityRepository, participants HistoryParticipantRepository) *AnalyticsService {
	return &AnalyticsService{
		members:      members,
		activities:   activities,
		participants: participants,
		now:          systemClock,
	}
}

// GetHistory lists every activity since the member joined, flagged from the
// member's point of view.
func (s *AnalyticsService) GetHistory(ctx context.Context, memberID uint) ([]domain.ActivityHistoryItem, error) {
	member, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("s.members.FindByID -> %w", err)
	}

	activities, err := s.activities.FindSince(ctx, member.JoinedAt)
	if err != nil {
		return nil, fmt.Errorf("s.activities.FindSince -> %w", err)
	}

	participations, err := s.participants.FindByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("s.participants.FindByMember -> %w", err)
	}

	return analytics.BuildHistory(activities, participations, member.PreferredCategories, s.now()), nil
}

func (s *AnalyticsService) Summary(ctx context.Context, memberID uint, req analytics.TimelineRequest) (Summary, error) {
	items, err := s.GetHistory(ctx, memberID)
	if err != nil {
		return Summary{}, err
	}

	if req.Anchor.IsZero() {
		req.Anchor = s.now()
	}
	timeline, err := analytics.Timeline(items, req)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		MemberID:     memberID,
		PresenceRate: analytics.PresenceRate(items),
		Timeline:     timeline,
	}
	for _, item := range items {
		switch {
		case item.Attended:
			summary.Attended++
		case item.Missed:
			summary.Missed++
		case item.Upcoming:
			summary.Upcoming++
		}
		if item.Recommended {
			summary.Recommended++
		}
	}

	trend, err := analytics.RatingTrend(items)
	switch {
	case err == nil:
		summary.Trend = &trend
	case !errors.Is(err, domain.ErrInsufficientData):
		return Summary{}, err
	}

	return summary, nil
}
