package repository

import (
	"context"
	"fmt"

	"gorm.io/datatypes"

	"github.com/vietanh2810/activities-api/internal/domain"
	"github.com/vietanh2810/activities-api/internal/repository/dao"
)

var (
	ErrMemberEmailExists = dao.ErrMemberEmailExists
	ErrMemberNotFound    = dao.ErrMemberNotFound
)

type MemberDAO interface {
	Insert(ctx context.Context, member dao.Member) (dao.Member, error)
	FindByID(ctx context.Context, id uint) (dao.Member, error)
	FindByIDForUpdate(ctx context.Context, id uint) (dao.Member, error)
	FindByEmail(ctx context.Context, email string) (dao.Member, error)
	UpdateBalance(ctx context.Context, id uint, balance int) error
	UpdatePreferredCategories(ctx context.Context, id uint, categories datatypes.JSON) error
}

type MemberRepository struct {
	dao MemberDAO
}

func NewMemberRepository(dao MemberDAO) *MemberRepository {
	return &MemberRepository{
		dao: dao,
	}
}

func (r *MemberRepository) Create(ctx context.Context, member domain.Member) (domain.Member, error) {
	created, err := r.dao.Insert(ctx, dao.Member{
		Email:               member.Email,
		Password:            member.Password,
		Name:                member.Name,
		Role:                member.Role,
		Balance:             member.Balance,
		JoinedAt:            member.JoinedAt,
		PreferredCategories: stringsToJSON(member.PreferredCategories),
	})
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *MemberRepository) FindByID(ctx context.Context, id uint) (domain.Member, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *MemberRepository) FindByIDForUpdate(ctx context.Context, id uint) (domain.Member, error) {
	found, err := r.dao.FindByIDForUpdate(ctx, id)
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.FindByIDForUpdate -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *MemberRepository) FindByEmail(ctx context.Context, email string) (domain.Member, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *MemberRepository) UpdateBalance(ctx context.Context, id uint, balance int) error {
	if err := r.dao.UpdateBalance(ctx, id, balance); err != nil {
		return fmt.Errorf("r.dao.UpdateBalance -> %w", err)
	}

	return nil
}

func (r *MemberRepository) UpdatePreferredCategories(ctx context.Context, id uint, categories []string) error {
	if err := r.dao.UpdatePreferredCategories(ctx, id, stringsToJSON(categories)); err != nil {
		return fmt.Errorf("r.dao.UpdatePreferredCategories -> %w", err)
	}

	return nil
}

func (r *MemberRepository) daoToDomain(m dao.Member) domain.Member {
	return domain.Member{
		ID:                  m.ID,
		Email:               m.Email,
		Password:            m.Password,
		Name:                m.Name,
		Role:                m.Role,
		Balance:             m.Balance,
		JoinedAt:            m.JoinedAt,
		PreferredCategories: jsonToStrings(m.PreferredCategories),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}
