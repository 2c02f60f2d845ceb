package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/activities-api/internal/domain"
	"github.com/vietanh2810/activities-api/internal/repository/dao"
)

type LedgerDAO interface {
	Insert(ctx context.Context, entry dao.LedgerEntry) (dao.LedgerEntry, error)
	FindByMember(ctx context.Context, memberID uint) ([]dao.LedgerEntry, error)
}

type LedgerRepository struct {
	dao LedgerDAO
}

func NewLedgerRepository(dao LedgerDAO) *LedgerRepository {
	return &LedgerRepository{
		dao: dao,
	}
}

func (r *LedgerRepository) Append(ctx context.Context, entry domain.LedgerEntry) (domain.LedgerEntry, error) {
	created, err := r.dao.Insert(ctx, dao.LedgerEntry{
		MemberID:    entry.MemberID,
		Delta:       entry.Delta,
		SourceType:  string(entry.SourceType),
		Description: entry.Description,
		ActivityID:  entry.ActivityID,
		CreatedAt:   entry.CreatedAt,
	})
	if err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *LedgerRepository) FindByMember(ctx context.Context, memberID uint) ([]domain.LedgerEntry, error) {
	found, err := r.dao.FindByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByMember -> %w", err)
	}

	entries := make([]domain.LedgerEntry, 0, len(found))
	for _, e := range found {
		entries = append(entries, r.daoToDomain(e))
	}

	return entries, nil
}

func (r *LedgerRepository) daoToDomain(e dao.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:          e.ID,
		MemberID:    e.MemberID,
		Delta:       e.Delta,
		SourceType:  domain.SourceType(e.SourceType),
		Description: e.Description,
		ActivityID:  e.ActivityID,
		CreatedAt:   e.CreatedAt,
	}
}
