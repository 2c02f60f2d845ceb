package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Participant struct {
	ID uint `gorm:"primaryKey"`

	ActivityID uint     `gorm:"not null;uniqueIndex:idx_participants_activity_member"`
	Activity   Activity `gorm:"constraint:OnDelete:CASCADE"`
	MemberID   uint     `gorm:"not null;uniqueIndex:idx_participants_activity_member;index"`
	Member     Member   `gorm:"constraint:OnDelete:CASCADE"`

	IsTemp        bool `gorm:"not null"`
	IsInterested  bool `gorm:"not null"`
	Rate          *int
	Notes         string
	AwardedPoints int `gorm:"not null"`

	RegisteredAt time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

type ParticipantDAO struct {
	db *gorm.DB
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		db: db,
	}
}

func (d *ParticipantDAO) Insert(ctx context.Context, participant Participant) (Participant, error) {
	result := conn(ctx, d.db).Omit(clause.Associations).Create(&participant)
	if result.Error != nil {
		return Participant{}, mapError(result.Error, nil)
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByID(ctx context.Context, id uint) (Participant, error) {
	var participant Participant

	result := conn(ctx, d.db).First(&participant, id)
	if result.Error != nil {
		return Participant{}, mapError(result.Error, ErrParticipantNotFound)
	}

	return participant, nil
}

// FindByIDForUpdate locks the row so a concurrent removal cannot reverse
// points twice.
func (d *ParticipantDAO) FindByIDForUpdate(ctx context.Context, id uint) (Participant, error) {
	var participant Participant

	result := conn(ctx, d.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&participant, id)
	if result.Error != nil {
		return Participant{}, mapError(result.Error, ErrParticipantNotFound)
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByActivity(ctx context.Context, activityID uint) ([]Participant, error) {
	return d.find(ctx, "activity_id = ?", activityID)
}

func (d *ParticipantDAO) FindByMember(ctx context.Context, memberID uint) ([]Participant, error) {
	return d.find(ctx, "member_id = ?", memberID)
}

func (d *ParticipantDAO) find(ctx context.Context, cond string, arg uint) ([]Participant, error) {
	var participants []Participant

	result := conn(ctx, d.db).
		Where(cond, arg).
		Order("registered_at ASC, id ASC").
		Find(&participants)
	if result.Error != nil {
		return nil, mapError(result.Error, nil)
	}

	return participants, nil
}

func (d *ParticipantDAO) Update(ctx context.Context, id uint, columns map[string]any) (Participant, error) {
	var participant Participant

	err := inTx(ctx, d.db, func(tx *gorm.DB) error {
		if len(columns) > 0 {
			result := tx.Model(&Participant{}).Where("id = ?", id).Updates(columns)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrParticipantNotFound
			}
		}

		return tx.First(&participant, id).Error
	})
	if err != nil {
		return Participant{}, mapError(err, ErrParticipantNotFound)
	}

	return participant, nil
}

func (d *ParticipantDAO) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, d.db).Delete(&Participant{}, id)
	if result.Error != nil {
		return mapError(result.Error, nil)
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}

	return nil
}
