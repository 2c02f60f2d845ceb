package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vietanh2810/activities-api/internal/domain"
	"github.com/vietanh2810/activities-api/internal/repository"
)

var (
	ErrParticipantNotFound = repository.ErrParticipantNotFound
	ErrParticipantExists   = repository.ErrParticipantExists
	ErrDuplicateMember     = domain.NewKindError(domain.ErrConflict, "member listed more than once")
	ErrInvalidAttendance   = domain.NewKindError(domain.ErrValidation, "attendance must be present or absent")
)

const defaultBatchConcurrency = 8

type ParticipationActivityRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Activity, error)
}

type ParticipantRepository interface {
	Create(ctx context.Context, p domain.Participant) (domain.Participant, error)
	FindByID(ctx context.Context, id uint) (domain.Participant, error)
	FindByIDForUpdate(ctx context.Context, id uint) (domain.Participant, error)
	FindByActivity(ctx context.Context, activityID uint) ([]domain.Participant, error)
	Update(ctx context.Context, id uint, patch domain.ParticipantPatch) (domain.Participant, error)
	Delete(ctx context.Context, id uint) error
}

type PointsAwarder interface {
	AwardForActivity(ctx context.Context, memberID, activityID uint, delta int, description string) (domain.AwardResult, error)
}

type ParticipationService struct {
	tx             Transactor
	activities     ParticipationActivityRepository
	participants   ParticipantRepository
	ledger         PointsAwarder
	metrics        Metrics
	maxConcurrency int
	now            Clock
}

func NewParticipationService(
	tx Transactor,
	activities ParticipationActivityRepository,
	participants ParticipantRepository,
	ledger PointsAwarder,
	metrics Metrics,
	maxConcurrency int,
) *ParticipationService {
	if maxConcurrency <= 0 {
		maxConcurrency = defaultBatchConcurrency
	}

	return &ParticipationService{
		tx:             tx,
		activities:     activities,
		participants:   participants,
		ledger:         ledger,
		metrics:        metrics,
		maxConcurrency: maxConcurrency,
		now:            systemClock,
	}
}

func (s *ParticipationService) List(ctx context.Context, activityID uint) ([]domain.Participant, error) {
	if _, err := s.activities.FindByID(ctx, activityID); err != nil {
		return nil, fmt.Errorf("s.activities.FindByID -> %w", err)
	}

	participants, err := s.participants.FindByActivity(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("s.participants.FindByActivity -> %w", err)
	}

	return participants, nil
}

// AddParticipants registers every member independently. One member failing
// does not undo the others; the result lists what happened to each.
func (s *ParticipationService) AddParticipants(ctx context.Context, activityID uint, in domain.AddParticipantsInput) (domain.AddParticipantsResult, error) {
	if err := in.Validate(); err != nil {
		return domain.AddParticipantsResult{}, err
	}

	activity, err := s.activities.FindByID(ctx, activityID)
	if err != nil {
		return domain.AddParticipantsResult{}, fmt.Errorf("s.activities.FindByID -> %w", err)
	}

	existing, err := s.participants.FindByActivity(ctx, activityID)
	if err != nil {
		return domain.AddParticipantsResult{}, fmt.Errorf("s.participants.FindByActivity -> %w", err)
	}

	seen := make(map[uint]bool, len(existing)+len(in.MemberIDs))
	for _, p := range existing {
		seen[p.MemberID] = true
	}

	var (
		result  domain.AddParticipantsResult
		pending []uint
	)
	for _, memberID := range in.MemberIDs {
		if seen[memberID] {
			result.Fail(memberID, s.alreadyListed(existing, memberID))
			continue
		}
		seen[memberID] = true
		pending = append(pending, memberID)
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(s.maxConcurrency)
	for _, memberID := range pending {
		memberID := memberID
		g.Go(func() error {
			p, err := s.register(ctx, activity, memberID, in)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Fail(memberID, err)
				return nil
			}
			result.SuccessCount++
			result.Added = append(result.Added, p)

			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(result.Added, func(i, j int) bool {
		return result.Added[i].ID < result.Added[j].ID
	})
	sort.SliceStable(result.Failures, func(i, j int) bool {
		return result.Failures[i].MemberID < result.Failures[j].MemberID
	})

	s.metrics.RecordParticipants(result.SuccessCount, result.FailCount)
	if result.FailCount > 0 {
		for _, f := range result.Failures {
			zap.L().Warn("failed to register participant",
				zap.Uint("activity_id", activityID),
				zap.Uint("member_id", f.MemberID),
				zap.Error(f.Err))
		}
	}

	return result, nil
}

func (s *ParticipationService) alreadyListed(existing []domain.Participant, memberID uint) error {
	for _, p := range existing {
		if p.MemberID == memberID {
			return ErrParticipantExists
		}
	}
	return ErrDuplicateMember
}

// register inserts one participant and awards its points in one transaction.
func (s *ParticipationService) register(ctx context.Context, activity domain.Activity, memberID uint, in domain.AddParticipantsInput) (domain.Participant, error) {
	p := domain.Participant{
		ActivityID:   activity.ID,
		MemberID:     memberID,
		IsTemp:       in.IsTemp,
		IsInterested: in.IsInterested,
		Rate:         in.Rate,
		Notes:        in.Notes,
		RegisteredAt: s.now(),
	}
	if p.PointBearing() {
		p.AwardedPoints = activity.Points
	}

	var created domain.Participant
	err := s.tx.Run(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.participants.Create(ctx, p)
		if err != nil {
			return fmt.Errorf("s.participants.Create -> %w", err)
		}

		_, err = s.ledger.AwardForActivity(ctx, memberID, activity.ID, p.AwardedPoints, "registered for "+activity.Name)
		if err != nil {
			return fmt.Errorf("s.ledger.AwardForActivity -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Participant{}, err
	}

	return created, nil
}

// Remove deletes a registration. Points the registration earned are taken back.
func (s *ParticipationService) Remove(ctx context.Context, participantID uint) error {
	return s.tx.Run(ctx, func(ctx context.Context) error {
		p, err := s.participants.FindByIDForUpdate(ctx, participantID)
		if err != nil {
			return fmt.Errorf("s.participants.FindByIDForUpdate -> %w", err)
		}

		if err := s.participants.Delete(ctx, participantID); err != nil {
			return fmt.Errorf("s.participants.Delete -> %w", err)
		}

		if !p.PointBearing() || p.AwardedPoints <= 0 {
			return nil
		}

		activity, err := s.activities.FindByID(ctx, p.ActivityID)
		if err != nil {
			return fmt.Errorf("s.activities.FindByID -> %w", err)
		}
		if activity.Points <= 0 {
			return nil
		}

		_, err = s.ledger.AwardForActivity(ctx, p.MemberID, p.ActivityID, -p.AwardedPoints, "unregistered from "+activity.Name)
		if err != nil {
			return fmt.Errorf("s.ledger.AwardForActivity -> %w", err)
		}

		return nil
	})
}

func (s *ParticipationService) Update(ctx context.Context, participantID uint, patch domain.ParticipantPatch) (domain.Participant, error) {
	if err := patch.Validate(); err != nil {
		return domain.Participant{}, err
	}

	if patch.Empty() {
		p, err := s.participants.FindByID(ctx, participantID)
		if err != nil {
			return domain.Participant{}, fmt.Errorf("s.participants.FindByID -> %w", err)
		}
		return p, nil
	}

	updated, err := s.participants.Update(ctx, participantID, patch)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.participants.Update -> %w", err)
	}

	return updated, nil
}

// MarkAttendance confirms a present participant, or drops an absent one.
// Neither outcome touches the ledger.
func (s *ParticipationService) MarkAttendance(ctx context.Context, participantID uint, status domain.AttendanceStatus) (domain.Participant, error) {
	switch status {
	case domain.AttendancePresent:
		confirmed := false
		updated, err := s.participants.Update(ctx, participantID, domain.ParticipantPatch{
			IsTemp:       &confirmed,
			IsInterested: &confirmed,
		})
		if err != nil {
			return domain.Participant{}, fmt.Errorf("s.participants.Update -> %w", err)
		}
		return updated, nil

	case domain.AttendanceAbsent:
		var removed domain.Participant
		err := s.tx.Run(ctx, func(ctx context.Context) error {
			var err error
			removed, err = s.participants.FindByIDForUpdate(ctx, participantID)
			if err != nil {
				return fmt.Errorf("s.participants.FindByIDForUpdate -> %w", err)
			}
			if err := s.participants.Delete(ctx, participantID); err != nil {
				return fmt.Errorf("s.participants.Delete -> %w", err)
			}
			return nil
		})
		if err != nil {
			return domain.Participant{}, err
		}
		return removed, nil
	}

	return domain.Participant{}, ErrInvalidAttendance
}
