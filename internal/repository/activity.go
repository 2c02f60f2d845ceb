package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/vietanh2810/activities-api/internal/domain"
	"github.com/vietanh2810/activities-api/internal/repository/dao"
)

var (
	ErrActivityNotFound         = dao.ErrActivityNotFound
	ErrActivityExtensionMissing = dao.ErrActivityExtensionMissing
)

type ActivityDAO interface {
	Insert(ctx context.Context, activity dao.Activity, ext dao.Extension) (dao.Activity, error)
	FindByID(ctx context.Context, id uint) (dao.Activity, error)
	FindExtension(ctx context.Context, activityType string, id uint) (dao.Extension, error)
	FindExtensions(ctx context.Context, activities []dao.Activity) (map[uint]dao.Extension, error)
	Find(ctx context.Context, filter dao.ActivityFilter) ([]dao.Activity, error)
	FindSince(ctx context.Context, since time.Time) ([]dao.Activity, error)
	Update(ctx context.Context, id uint, activityType string, base, ext map[string]any) error
	Delete(ctx context.Context, id uint) error
}

type ActivityRepository struct {
	dao ActivityDAO
}

func NewActivityRepository(dao ActivityDAO) *ActivityRepository {
	return &ActivityRepository{
		dao: dao,
	}
}

func (r *ActivityRepository) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	activity.EnsureDetails()

	created, err := r.dao.Insert(ctx, r.domainToDao(activity), r.extensionToDao(activity))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	result := r.daoToDomain(created)
	result.Event, result.Meeting = activity.Event, activity.Meeting
	result.Formation, result.GeneralAssembly = activity.Formation, activity.GeneralAssembly

	return result, nil
}

// FindByID returns the base record merged with its extension.
func (r *ActivityRepository) FindByID(ctx context.Context, id uint) (domain.Activity, error) {
	base, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	ext, err := r.dao.FindExtension(ctx, base.Type, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.FindExtension -> %w", err)
	}

	activity := r.daoToDomain(base)
	r.mergeExtension(&activity, ext)

	return activity, nil
}

func (r *ActivityRepository) Find(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error) {
	found, err := r.dao.Find(ctx, dao.ActivityFilter{
		Type:     string(filter.Type),
		IsOnline: filter.IsOnline,
		IsPaid:   filter.IsPaid,
		IsPublic: filter.IsPublic,
		From:     filter.From,
		To:       filter.To,
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.Find -> %w", err)
	}

	return r.daosToDomain(found), nil
}

// FindSince returns activities beginning at or after since, merged with their
// extensions so per-type categories are visible.
func (r *ActivityRepository) FindSince(ctx context.Context, since time.Time) ([]domain.Activity, error) {
	found, err := r.dao.FindSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindSince -> %w", err)
	}

	exts, err := r.dao.FindExtensions(ctx, found)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindExtensions -> %w", err)
	}

	activities := r.daosToDomain(found)
	for i := range activities {
		if ext, ok := exts[activities[i].ID]; ok {
			r.mergeExtension(&activities[i], ext)
		}
	}

	return activities, nil
}

// Update writes the patch to the base and extension records of an activity of
// the given type. Patch fields are routed by the record that owns them.
func (r *ActivityRepository) Update(ctx context.Context, id uint, activityType domain.ActivityType, patch domain.ActivityPatch) error {
	base, ext := patchColumns(patch)

	if err := r.dao.Update(ctx, id, string(activityType), base, ext); err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func patchColumns(p domain.ActivityPatch) (base, ext map[string]any) {
	base, ext = map[string]any{}, map[string]any{}
	put := func(m map[string]any, column string, set bool, value func() any) {
		if set {
			m[column] = value()
		}
	}

	put(base, "name", p.Name != nil, func() any { return *p.Name })
	put(base, "description", p.Description != nil, func() any { return *p.Description })
	put(base, "begin_at", p.BeginAt != nil, func() any { return *p.BeginAt })
	put(base, "end_at", p.EndAt != nil, func() any { return *p.EndAt })
	put(base, "location", p.Location != nil, func() any { return *p.Location })
	put(base, "is_online", p.IsOnline != nil, func() any { return *p.IsOnline })
	put(base, "online_link", p.OnlineLink != nil, func() any { return *p.OnlineLink })
	put(base, "points", p.Points != nil, func() any { return *p.Points })
	put(base, "is_paid", p.IsPaid != nil, func() any { return *p.IsPaid })
	put(base, "price", p.Price != nil, func() any { return *p.Price })
	put(base, "is_public", p.IsPublic != nil, func() any { return *p.IsPublic })
	put(base, "media", p.Media != nil, func() any { return stringsToJSON(*p.Media) })
	put(base, "categories", p.Categories != nil, func() any { return stringsToJSON(*p.Categories) })

	put(ext, "agenda_plan", p.AgendaPlan != nil, func() any { return *p.AgendaPlan })
	put(ext, "minutes_attachment", p.MinutesAttachment != nil, func() any { return *p.MinutesAttachment })
	put(ext, "meeting_category", p.MeetingCategory != nil, func() any { return *p.MeetingCategory })
	put(ext, "trainer_name", p.TrainerName != nil, func() any { return *p.TrainerName })
	put(ext, "course_attachment", p.CourseAttachment != nil, func() any { return *p.CourseAttachment })
	put(ext, "training_category", p.TrainingCategory != nil, func() any { return *p.TrainingCategory })
	put(ext, "assembly_scope", p.AssemblyScope != nil, func() any { return *p.AssemblyScope })

	return base, ext
}

func (r *ActivityRepository) domainToDao(a domain.Activity) dao.Activity {
	return dao.Activity{
		ID:          a.ID,
		Type:        string(a.Type),
		Name:        a.Name,
		Description: a.Description,
		BeginAt:     a.BeginAt,
		EndAt:       a.EndAt,
		Location:    a.Location,
		IsOnline:    a.IsOnline,
		OnlineLink:  a.OnlineLink,
		Points:      a.Points,
		IsPaid:      a.IsPaid,
		Price:       a.Price,
		IsPublic:    a.IsPublic,
		Media:       stringsToJSON(a.Media),
		Categories:  stringsToJSON(a.Categories),
	}
}

func (r *ActivityRepository) extensionToDao(a domain.Activity) dao.Extension {
	switch {
	case a.Event != nil:
		return &dao.EventDetails{}
	case a.Meeting != nil:
		return &dao.MeetingDetails{
			AgendaPlan:        a.Meeting.AgendaPlan,
			MinutesAttachment: a.Meeting.MinutesAttachment,
			MeetingCategory:   a.Meeting.MeetingCategory,
		}
	case a.Formation != nil:
		return &dao.FormationDetails{
			TrainerName:      a.Formation.TrainerName,
			CourseAttachment: a.Formation.CourseAttachment,
			TrainingCategory: a.Formation.TrainingCategory,
		}
	case a.GeneralAssembly != nil:
		return &dao.GeneralAssemblyDetails{
			AssemblyScope: a.GeneralAssembly.AssemblyScope,
		}
	}

	return nil
}

func (r *ActivityRepository) mergeExtension(a *domain.Activity, ext dao.Extension) {
	switch e := ext.(type) {
	case *dao.EventDetails:
		a.Event = &domain.EventDetails{}
	case *dao.MeetingDetails:
		a.Meeting = &domain.MeetingDetails{
			AgendaPlan:        e.AgendaPlan,
			MinutesAttachment: e.MinutesAttachment,
			MeetingCategory:   e.MeetingCategory,
		}
	case *dao.FormationDetails:
		a.Formation = &domain.FormationDetails{
			TrainerName:      e.TrainerName,
			CourseAttachment: e.CourseAttachment,
			TrainingCategory: e.TrainingCategory,
		}
	case *dao.GeneralAssemblyDetails:
		a.GeneralAssembly = &domain.GeneralAssemblyDetails{
			AssemblyScope: e.AssemblyScope,
		}
	}
}

func (r *ActivityRepository) daoToDomain(a dao.Activity) domain.Activity {
	return domain.Activity{
		ID:          a.ID,
		Type:        domain.ActivityType(a.Type),
		Name:        a.Name,
		Description: a.Description,
		BeginAt:     a.BeginAt,
		EndAt:       a.EndAt,
		Location:    a.Location,
		IsOnline:    a.IsOnline,
		OnlineLink:  a.OnlineLink,
		Points:      a.Points,
		IsPaid:      a.IsPaid,
		Price:       a.Price,
		IsPublic:    a.IsPublic,
		Media:       jsonToStrings(a.Media),
		Categories:  jsonToStrings(a.Categories),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (r *ActivityRepository) daosToDomain(found []dao.Activity) []domain.Activity {
	activities := make([]domain.Activity, 0, len(found))
	for _, a := range found {
		activities = append(activities, r.daoToDomain(a))
	}

	return activities
}
