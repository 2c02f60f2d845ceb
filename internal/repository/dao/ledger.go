package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type LedgerEntry struct {
	ID         uint   `gorm:"primaryKey"`
	MemberID   uint   `gorm:"not null;index:idx_ledger_entries_member_created"`
	Member     Member `gorm:"constraint:OnDelete:CASCADE"`
	Delta      int    `gorm:"not null"`
	SourceType string `gorm:"type:varchar(16);not null"`
	// Description is free text shown in the member history.
	Description string
	ActivityID  *uint
	CreatedAt   time.Time `gorm:"not null;index:idx_ledger_entries_member_created"`
}

func (LedgerEntry) TableName() string {
	return "ledger_entries"
}

type LedgerDAO struct {
	db *gorm.DB
}

func NewLedgerDAO(db *gorm.DB) *LedgerDAO {
	return &LedgerDAO{
		db: db,
	}
}

// Insert appends an entry. Entries are never updated or deleted.
func (d *LedgerDAO) Insert(ctx context.Context, entry LedgerEntry) (LedgerEntry, error) {
	result := conn(ctx, d.db).Omit("Member").Create(&entry)
	if result.Error != nil {
		return LedgerEntry{}, mapError(result.Error, nil)
	}

	return entry, nil
}

// FindByMember returns a member's entries in the order they were applied.
func (d *LedgerDAO) FindByMember(ctx context.Context, memberID uint) ([]LedgerEntry, error) {
	var entries []LedgerEntry

	result := conn(ctx, d.db).
		Where("member_id = ?", memberID).
		Order("created_at ASC, id ASC").
		Find(&entries)
	if result.Error != nil {
		return nil, mapError(result.Error, nil)
	}

	return entries, nil
}
