package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/vietanh2810/activities-api/internal/domain"
	"github.com/vietanh2810/activities-api/internal/repository"
)

var (
	ErrMemberEmailExists = repository.ErrMemberEmailExists
	ErrWrongPassword     = errors.New("wrong password")
)

type AuthMemberRepository interface {
	Create(ctx context.Context, member domain.Member) (domain.Member, error)
	FindByEmail(ctx context.Context, email string) (domain.Member, error)
}

type AuthService struct {
	repo AuthMemberRepository
	now  Clock
}

func NewAuthService(repo AuthMemberRepository) *AuthService {
	return &AuthService{
		repo: repo,
		now:  systemClock,
	}
}

// Signup stores a new member with a hashed password. JoinedAt defaults to now.
func (s *AuthService) Signup(ctx context.Context, member domain.Member) (domain.Member, error) {
	if err := s.checkEmailExists(ctx, member.Email); err != nil {
		return domain.Member{}, err
	}

	hashedPassword, err := hashPassword(member.Password)
	if err != nil {
		return domain.Member{}, err
	}
	member.Password = hashedPassword

	if member.Role == "" {
		member.Role = domain.RoleMember
	}
	if member.JoinedAt.IsZero() {
		member.JoinedAt = s.now()
	}
	member.Balance = 0

	created, err := s.repo.Create(ctx, member)
	if err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Member, error) {
	member, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return domain.Member{}, ErrMemberNotFound
		}

		return domain.Member{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(password)); err != nil {
		return domain.Member{}, ErrWrongPassword
	}

	return member, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *AuthService) checkEmailExists(ctx context.Context, email string) error {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return ErrMemberEmailExists
	}
	if !errors.Is(err, repository.ErrMemberNotFound) {
		return err
	}
	return nil
}
