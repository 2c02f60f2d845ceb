package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vietanh2810/activities-api/internal/domain"
	"github.com/vietanh2810/activities-api/internal/repository"
)

var (
	ErrMemberNotFound = repository.ErrMemberNotFound
	ErrInvalidSource  = domain.NewKindError(domain.ErrValidation, "invalid ledger source type")
)

type LedgerMemberRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Member, error)
	FindByIDForUpdate(ctx context.Context, id uint) (domain.Member, error)
	UpdateBalance(ctx context.Context, id uint, balance int) error
}

type LedgerRepository interface {
	Append(ctx context.Context, entry domain.LedgerEntry) (domain.LedgerEntry, error)
	FindByMember(ctx context.Context, memberID uint) ([]domain.LedgerEntry, error)
}

// LedgerService owns every change to a member balance. A balance never goes
// below zero, and every change leaves an entry with the requested delta.
type LedgerService struct {
	tx      Transactor
	members LedgerMemberRepository
	entries LedgerRepository
	metrics Metrics
	now     Clock
}

func NewLedgerService(tx Transactor, members LedgerMemberRepository, entries LedgerRepository, metrics Metrics) *LedgerService {
	return &LedgerService{
		tx:      tx,
		members: members,
		entries: entries,
		metrics: metrics,
		now:     systemClock,
	}
}

// Award applies delta to the member balance and appends the ledger entry.
// A zero delta writes nothing.
func (s *LedgerService) Award(ctx context.Context, memberID uint, delta int, description string, source domain.SourceType) (domain.AwardResult, error) {
	if !source.Valid() {
		return domain.AwardResult{}, ErrInvalidSource
	}

	return s.apply(ctx, domain.LedgerEntry{
		MemberID:    memberID,
		Delta:       delta,
		SourceType:  source,
		Description: description,
	})
}

// AwardForActivity is Award with the activity source and a link to the activity.
func (s *LedgerService) AwardForActivity(ctx context.Context, memberID, activityID uint, delta int, description string) (domain.AwardResult, error) {
	return s.apply(ctx, domain.LedgerEntry{
		MemberID:    memberID,
		Delta:       delta,
		SourceType:  domain.SourceActivity,
		Description: description,
		ActivityID:  &activityID,
	})
}

func (s *LedgerService) apply(ctx context.Context, entry domain.LedgerEntry) (domain.AwardResult, error) {
	if entry.Delta == 0 {
		return domain.AwardResult{Applied: false}, nil
	}

	var result domain.AwardResult
	err := s.tx.Run(ctx, func(ctx context.Context) error {
		member, err := s.members.FindByIDForUpdate(ctx, entry.MemberID)
		if err != nil {
			return fmt.Errorf("s.members.FindByIDForUpdate -> %w", err)
		}

		balance := domain.ClampedBalance(member.Balance, entry.Delta)
		if err := s.members.UpdateBalance(ctx, member.ID, balance); err != nil {
			return fmt.Errorf("s.members.UpdateBalance -> %w", err)
		}

		entry.CreatedAt = s.now()
		created, err := s.entries.Append(ctx, entry)
		if err != nil {
			return fmt.Errorf("s.entries.Append -> %w", err)
		}

		result = domain.AwardResult{Applied: true, Balance: balance, Entry: &created}

		return nil
	})
	if err != nil {
		if isStoreFailure(err) {
			zap.L().Error("failed to apply ledger entry",
				zap.Uint("member_id", entry.MemberID),
				zap.Int("delta", entry.Delta),
				zap.String("source", string(entry.SourceType)),
				zap.Error(err))
		}
		return domain.AwardResult{}, err
	}

	s.metrics.RecordDelta(string(entry.SourceType), entry.Delta)

	return result, nil
}

func (s *LedgerService) History(ctx context.Context, memberID uint) ([]domain.LedgerEntry, error) {
	if _, err := s.members.FindByID(ctx, memberID); err != nil {
		return nil, fmt.Errorf("s.members.FindByID -> %w", err)
	}

	entries, err := s.entries.FindByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("s.entries.FindByMember -> %w", err)
	}

	return entries, nil
}

// Reconcile replays the ledger and compares the result with the stored balance.
func (s *LedgerService) Reconcile(ctx context.Context, memberID uint) (domain.Reconciliation, error) {
	member, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		return domain.Reconciliation{}, fmt.Errorf("s.members.FindByID -> %w", err)
	}

	entries, err := s.entries.FindByMember(ctx, memberID)
	if err != nil {
		return domain.Reconciliation{}, fmt.Errorf("s.entries.FindByMember -> %w", err)
	}

	replayed := domain.Replay(entries)
	rec := domain.Reconciliation{
		MemberID:   memberID,
		Stored:     member.Balance,
		Replayed:   replayed,
		Entries:    len(entries),
		Consistent: replayed == member.Balance,
	}
	if !rec.Consistent {
		zap.L().Warn("ledger does not match stored balance",
			zap.Uint("member_id", memberID),
			zap.Int("stored", rec.Stored),
			zap.Int("replayed", rec.Replayed))
	}

	return rec, nil
}
