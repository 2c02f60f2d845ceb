package service

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/activities-api/internal/domain"
)

type MemberRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Member, error)
	UpdatePreferredCategories(ctx context.Context, id uint, categories []string) error
}

type MemberService struct {
	repo MemberRepository
}

func NewMemberService(repo MemberRepository) *MemberService {
	return &MemberService{
		repo: repo,
	}
}

func (s *MemberService) GetMember(ctx context.Context, id uint) (domain.Member, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return member, nil
}

func (s *MemberService) UpdatePreferences(ctx context.Context, id uint, categories []string) (domain.Member, error) {
	for _, c := range categories {
		if err := validation.Validate(c, validation.Required, validation.Length(1, 64)); err != nil {
			return domain.Member{}, domain.NewValidationError(err)
		}
	}

	if err := s.repo.UpdatePreferredCategories(ctx, id, categories); err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.UpdatePreferredCategories -> %w", err)
	}

	return s.GetMember(ctx, id)
}
