package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/activities-api/internal/domain"
	"github.com/vietanh2810/activities-api/internal/repository/dao"
)

var (
	ErrParticipantNotFound = dao.ErrParticipantNotFound
	ErrParticipantExists   = dao.ErrParticipantExists
)

type ParticipantDAO interface {
	Insert(ctx context.Context, participant dao.Participant) (dao.Participant, error)
	FindByID(ctx context.Context, id uint) (dao.Participant, error)
	FindByIDForUpdate(ctx context.Context, id uint) (dao.Participant, error)
	FindByActivity(ctx context.Context, activityID uint) ([]dao.Participant, error)
	FindByMember(ctx context.Context, memberID uint) ([]dao.Participant, error)
	Update(ctx context.Context, id uint, columns map[string]any) (dao.Participant, error)
	Delete(ctx context.Context, id uint) error
}

type ParticipantRepository struct {
	dao ParticipantDAO
}

func NewParticipantRepository(dao ParticipantDAO) *ParticipantRepository {
	return &ParticipantRepository{
		dao: dao,
	}
}

func (r *ParticipantRepository) Create(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	created, err := r.dao.Insert(ctx, dao.Participant{
		ActivityID:    p.ActivityID,
		MemberID:      p.MemberID,
		IsTemp:        p.IsTemp,
		IsInterested:  p.IsInterested,
		Rate:          p.Rate,
		Notes:         p.Notes,
		AwardedPoints: p.AwardedPoints,
		RegisteredAt:  p.RegisteredAt,
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id uint) (domain.Participant, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ParticipantRepository) FindByIDForUpdate(ctx context.Context, id uint) (domain.Participant, error) {
	found, err := r.dao.FindByIDForUpdate(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.FindByIDForUpdate -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ParticipantRepository) FindByActivity(ctx context.Context, activityID uint) ([]domain.Participant, error) {
	found, err := r.dao.FindByActivity(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByActivity -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ParticipantRepository) FindByMember(ctx context.Context, memberID uint) ([]domain.Participant, error) {
	found, err := r.dao.FindByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByMember -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ParticipantRepository) Update(ctx context.Context, id uint, patch domain.ParticipantPatch) (domain.Participant, error) {
	columns := map[string]any{}
	if patch.Rate != nil {
		columns["rate"] = *patch.Rate
	}
	if patch.Notes != nil {
		columns["notes"] = *patch.Notes
	}
	if patch.IsInterested != nil {
		columns["is_interested"] = *patch.IsInterested
	}
	if patch.IsTemp != nil {
		columns["is_temp"] = *patch.IsTemp
	}

	updated, err := r.dao.Update(ctx, id, columns)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ParticipantRepository) daoToDomain(p dao.Participant) domain.Participant {
	return domain.Participant{
		ID:            p.ID,
		ActivityID:    p.ActivityID,
		MemberID:      p.MemberID,
		IsTemp:        p.IsTemp,
		IsInterested:  p.IsInterested,
		Rate:          p.Rate,
		Notes:         p.Notes,
		AwardedPoints: p.AwardedPoints,
		RegisteredAt:  p.RegisteredAt,
	}
}

func (r *ParticipantRepository) daosToDomain(found []dao.Participant) []domain.Participant {
	participants := make([]domain.Participant, 0, len(found))
	for _, p := range found {
		participants = append(participants, r.daoToDomain(p))
	}

	return participants
}
