package dao

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Member struct {
	ID uint `gorm:"primaryKey"`

	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
	Name     string `gorm:"not null"`
	Role     string `gorm:"type:varchar(16);not null"`

	Balance             int            `gorm:"not null"`
	JoinedAt            time.Time      `gorm:"not null"`
	PreferredCategories datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type MemberDAO struct {
	db *gorm.DB
}

func NewMemberDAO(db *gorm.DB) *MemberDAO {
	return &MemberDAO{
		db: db,
	}
}

func (d *MemberDAO) Insert(ctx context.Context, member Member) (Member, error) {
	result := conn(ctx, d.db).Create(&member)
	if result.Error != nil {
		return Member{}, mapError(result.Error, nil)
	}

	return member, nil
}

func (d *MemberDAO) FindByID(ctx context.Context, id uint) (Member, error) {
	var member Member

	result := conn(ctx, d.db).First(&member, id)
	if result.Error != nil {
		return Member{}, mapError(result.Error, ErrMemberNotFound)
	}

	return member, nil
}

// FindByIDForUpdate locks the member row until the surrounding transaction ends.
// NO KEY UPDATE still admits the KEY SHARE locks taken by foreign key checks,
// so a transaction that already inserted a row referencing the member can
// lock it without deadlocking against another such transaction.
func (d *MemberDAO) FindByIDForUpdate(ctx context.Context, id uint) (Member, error) {
	var member Member

	result := conn(ctx, d.db).
		Clauses(clause.Locking{Strength: "NO KEY UPDATE"}).
		First(&member, id)
	if result.Error != nil {
		return Member{}, mapError(result.Error, ErrMemberNotFound)
	}

	return member, nil
}

func (d *MemberDAO) FindByEmail(ctx context.Context, email string) (Member, error) {
	var member Member

	result := conn(ctx, d.db).Where("email = ?", email).First(&member)
	if result.Error != nil {
		return Member{}, mapError(result.Error, ErrMemberNotFound)
	}

	return member, nil
}

func (d *MemberDAO) UpdateBalance(ctx context.Context, id uint, balance int) error {
	return d.updateColumn(ctx, id, "balance", balance)
}

func (d *MemberDAO) UpdatePreferredCategories(ctx context.Context, id uint, categories datatypes.JSON) error {
	return d.updateColumn(ctx, id, "preferred_categories", categories)
}

func (d *MemberDAO) updateColumn(ctx context.Context, id uint, column string, value any) error {
	result := conn(ctx, d.db).Model(&Member{}).Where("id = ?", id).Update(column, value)
	if result.Error != nil {
		return mapError(result.Error, nil)
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}
