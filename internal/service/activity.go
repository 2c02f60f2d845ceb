package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vietanh2810/activities-api/internal/domain"
	"github.com/vietanh2810/activities-api/internal/repository"
)

var (
	ErrActivityNotFound         = repository.ErrActivityNotFound
	ErrActivityExtensionMissing = repository.ErrActivityExtensionMissing
	ErrMixedExtensionFields     = domain.NewKindError(domain.ErrValidation, "patch sets fields of more than one activity type")
)

type ActivityRepository interface {
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	FindByID(ctx context.Context, id uint) (domain.Activity, error)
	Find(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error)
	Update(ctx context.Context, id uint, activityType domain.ActivityType, patch domain.ActivityPatch) error
	Delete(ctx context.Context, id uint) error
}

type ActivityService struct {
	repo    ActivityRepository
	metrics Metrics
}

func NewActivityService(repo ActivityRepository, metrics Metrics) *ActivityService {
	return &ActivityService{
		repo:    repo,
		metrics: metrics,
	}
}

func (s *ActivityService) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	if err := activity.Validate(); err != nil {
		return domain.Activity{}, err
	}

	created, err := s.repo.Create(ctx, activity)
	if err != nil {
		s.storeFailed("create", 0, err)
		return domain.Activity{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ActivityService) Get(ctx context.Context, id uint) (domain.Activity, error) {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.storeFailed("get", id, err)
		return domain.Activity{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return activity, nil
}

func (s *ActivityService) List(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, domain.ErrInvalidActivityType
	}

	activities, err := s.repo.Find(ctx, filter)
	if err != nil {
		s.storeFailed("list", 0, err)
		return nil, fmt.Errorf("s.repo.Find -> %w", err)
	}

	return activities, nil
}

// Update applies a partial update. The merged activity must still be valid,
// and extension fields must belong to the activity's own type.
func (s *ActivityService) Update(ctx context.Context, id uint, patch domain.ActivityPatch) (domain.Activity, error) {
	owner, ok := patch.ExtensionOwner()
	if !ok {
		return domain.Activity{}, ErrMixedExtensionFields
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.storeFailed("update", id, err)
		return domain.Activity{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if owner != "" && owner != current.Type {
		return domain.Activity{}, domain.NewKindError(domain.ErrValidation,
			fmt.Sprintf("%s fields cannot be set on a %s", owner, current.Type))
	}

	if err := patch.Apply(current).Validate(); err != nil {
		return domain.Activity{}, err
	}

	if err := s.repo.Update(ctx, id, current.Type, patch); err != nil {
		s.storeFailed("update", id, err)
		return domain.Activity{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return updated, nil
}

// Delete is idempotent: deleting a missing activity succeeds.
func (s *ActivityService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.storeFailed("delete", id, err)
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *ActivityService) storeFailed(op string, id uint, err error) {
	if !isStoreFailure(err) {
		return
	}

	s.metrics.RecordStoreError(op)
	zap.L().Error("activity store operation failed",
		zap.String("op", op),
		zap.Uint("activity_id", id),
		zap.Error(err))
}
