package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	TypeEvent           = "event"
	TypeMeeting         = "meeting"
	TypeFormation       = "formation"
	TypeGeneralAssembly = "general_assembly"
)

// Activity is the base record shared by every activity type.
type Activity struct {
	ID          uint   `gorm:"primaryKey"`
	Type        string `gorm:"type:varchar(32);not null;index"`
	Name        string `gorm:"not null"`
	Description string
	BeginAt     time.Time `gorm:"not null;index"`
	EndAt       time.Time `gorm:"not null"`
	Location    string
	IsOnline    bool `gorm:"not null"`
	OnlineLink  string
	Points      int  `gorm:"not null"`
	IsPaid      bool `gorm:"not null"`
	Price       *float64
	IsPublic    bool           `gorm:"not null"`
	Media       datatypes.JSON `gorm:"type:jsonb"`
	Categories  datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// Extension is the per-type record keyed by its activity id.
type Extension interface {
	Kind() string
	OwnerID() uint
	setActivityID(id uint)
}

type EventDetails struct {
	ActivityID uint     `gorm:"primaryKey;autoIncrement:false"`
	Activity   Activity `gorm:"constraint:OnDelete:RESTRICT"`
	CreatedAt  time.Time
}

type MeetingDetails struct {
	ActivityID        uint     `gorm:"primaryKey;autoIncrement:false"`
	Activity          Activity `gorm:"constraint:OnDelete:RESTRICT"`
	AgendaPlan        string
	MinutesAttachment string
	MeetingCategory   string
	CreatedAt         time.Time
}

type FormationDetails struct {
	ActivityID       uint     `gorm:"primaryKey;autoIncrement:false"`
	Activity         Activity `gorm:"constraint:OnDelete:RESTRICT"`
	TrainerName      string
	CourseAttachment string
	TrainingCategory string
	CreatedAt        time.Time
}

type GeneralAssemblyDetails struct {
	ActivityID    uint     `gorm:"primaryKey;autoIncrement:false"`
	Activity      Activity `gorm:"constraint:OnDelete:RESTRICT"`
	AssemblyScope string
	CreatedAt     time.Time
}

func (*EventDetails) Kind() string           { return TypeEvent }
func (*MeetingDetails) Kind() string         { return TypeMeeting }
func (*FormationDetails) Kind() string       { return TypeFormation }
func (*GeneralAssemblyDetails) Kind() string { return TypeGeneralAssembly }

func (e *EventDetails) OwnerID() uint           { return e.ActivityID }
func (e *MeetingDetails) OwnerID() uint         { return e.ActivityID }
func (e *FormationDetails) OwnerID() uint       { return e.ActivityID }
func (e *GeneralAssemblyDetails) OwnerID() uint { return e.ActivityID }

func (e *EventDetails) setActivityID(id uint)           { e.ActivityID = id }
func (e *MeetingDetails) setActivityID(id uint)         { e.ActivityID = id }
func (e *FormationDetails) setActivityID(id uint)       { e.ActivityID = id }
func (e *GeneralAssemblyDetails) setActivityID(id uint) { e.ActivityID = id }

// NewExtension returns an empty extension record for the activity type.
func NewExtension(activityType string) (Extension, error) {
	switch activityType {
	case TypeEvent:
		return &EventDetails{}, nil
	case TypeMeeting:
		return &MeetingDetails{}, nil
	case TypeFormation:
		return &FormationDetails{}, nil
	case TypeGeneralAssembly:
		return &GeneralAssemblyDetails{}, nil
	}

	return nil, ErrInvalidActivityType
}

type ActivityFilter struct {
	Type     string
	IsOnline *bool
	IsPaid   *bool
	IsPublic *bool
	From     *time.Time
	To       *time.Time
}

type ActivityDAO struct {
	db *gorm.DB
}

func NewActivityDAO(db *gorm.DB) *ActivityDAO {
	return &ActivityDAO{
		db: db,
	}
}

// Insert writes the base record and its extension in one transaction.
func (d *ActivityDAO) Insert(ctx context.Context, activity Activity, ext Extension) (Activity, error) {
	if ext == nil || ext.Kind() != activity.Type {
		return Activity{}, ErrInvalidActivityType
	}

	err := inTx(ctx, d.db, func(tx *gorm.DB) error {
		if err := tx.Create(&activity).Error; err != nil {
			return err
		}

		ext.setActivityID(activity.ID)

		return tx.Omit(clause.Associations).Create(ext).Error
	})
	if err != nil {
		return Activity{}, mapError(err, nil)
	}

	return activity, nil
}

func (d *ActivityDAO) FindByID(ctx context.Context, id uint) (Activity, error) {
	var activity Activity

	result := conn(ctx, d.db).First(&activity, id)
	if result.Error != nil {
		return Activity{}, mapError(result.Error, ErrActivityNotFound)
	}

	return activity, nil
}

// FindExtension loads the extension record of the given type for an activity.
func (d *ActivityDAO) FindExtension(ctx context.Context, activityType string, id uint) (Extension, error) {
	ext, err := NewExtension(activityType)
	if err != nil {
		return nil, err
	}

	result := conn(ctx, d.db).Where("activity_id = ?", id).First(ext)
	if result.Error != nil {
		return nil, mapError(result.Error, ErrActivityExtensionMissing)
	}

	return ext, nil
}

// FindExtensions loads the extension records of the given activities with one
// query per activity type, keyed by activity id. Activities without an
// extension record are absent from the result.
func (d *ActivityDAO) FindExtensions(ctx context.Context, activities []Activity) (map[uint]Extension, error) {
	idsByType := make(map[string][]uint)
	for _, a := range activities {
		idsByType[a.Type] = append(idsByType[a.Type], a.ID)
	}

	found := make(map[uint]Extension, len(activities))
	db := conn(ctx, d.db)
	for activityType, ids := range idsByType {
		var (
			exts []Extension
			err  error
		)
		switch activityType {
		case TypeEvent:
			exts, err = findExtensions[EventDetails](db, ids)
		case TypeMeeting:
			exts, err = findExtensions[MeetingDetails](db, ids)
		case TypeFormation:
			exts, err = findExtensions[FormationDetails](db, ids)
		case TypeGeneralAssembly:
			exts, err = findExtensions[GeneralAssemblyDetails](db, ids)
		default:
			err = ErrInvalidActivityType
		}
		if err != nil {
			return nil, mapError(err, nil)
		}

		for _, ext := range exts {
			found[ext.OwnerID()] = ext
		}
	}

	return found, nil
}

func findExtensions[T any, PT interface {
	*T
	Extension
}](db *gorm.DB, ids []uint) ([]Extension, error) {
	var rows []T
	if err := db.Where("activity_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}

	exts := make([]Extension, 0, len(rows))
	for i := range rows {
		exts = append(exts, PT(&rows[i]))
	}

	return exts, nil
}

func (d *ActivityDAO) Find(ctx context.Context, filter ActivityFilter) ([]Activity, error) {
	query := conn(ctx, d.db).Model(&Activity{})
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.IsOnline != nil {
		query = query.Where("is_online = ?", *filter.IsOnline)
	}
	if filter.IsPaid != nil {
		query = query.Where("is_paid = ?", *filter.IsPaid)
	}
	if filter.IsPublic != nil {
		query = query.Where("is_public = ?", *filter.IsPublic)
	}
	if filter.From != nil {
		query = query.Where("begin_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("begin_at <= ?", *filter.To)
	}

	var activities []Activity
	if err := query.Order("begin_at DESC, id DESC").Find(&activities).Error; err != nil {
		return nil, mapError(err, nil)
	}

	return activities, nil
}

// FindSince returns activities beginning at or after since, oldest first.
func (d *ActivityDAO) FindSince(ctx context.Context, since time.Time) ([]Activity, error) {
	var activities []Activity

	result := conn(ctx, d.db).
		Where("begin_at >= ?", since).
		Order("begin_at ASC, id ASC").
		Find(&activities)
	if result.Error != nil {
		return nil, mapError(result.Error, nil)
	}

	return activities, nil
}

// Update applies the base and extension column sets in one transaction.
// Either map may be empty.
func (d *ActivityDAO) Update(ctx context.Context, id uint, activityType string, base, ext map[string]any) error {
	err := inTx(ctx, d.db, func(tx *gorm.DB) error {
		if len(base) > 0 {
			result := tx.Model(&Activity{}).Where("id = ?", id).Updates(base)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrActivityNotFound
			}
		}

		if len(ext) > 0 {
			model, err := NewExtension(activityType)
			if err != nil {
				return err
			}
			result := tx.Model(model).Where("activity_id = ?", id).Updates(ext)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrActivityExtensionMissing
			}
		}

		return nil
	})

	return mapError(err, nil)
}

// Delete removes the extension record, then the base record. A missing base
// record is not an error.
func (d *ActivityDAO) Delete(ctx context.Context, id uint) error {
	err := inTx(ctx, d.db, func(tx *gorm.DB) error {
		var activity Activity
		if err := tx.Select("id", "type").First(&activity, id).Error; err != nil {
			return err
		}

		ext, err := NewExtension(activity.Type)
		if err != nil {
			return err
		}
		if err := tx.Where("activity_id = ?", id).Delete(ext).Error; err != nil {
			return err
		}

		return tx.Delete(&Activity{}, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}

	return mapError(err, nil)
}
