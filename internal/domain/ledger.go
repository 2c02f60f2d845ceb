package domain

import (
	"sort"
	"time"
)

type SourceType string

const (
	SourceActivity   SourceType = "activity"
	SourceManual     SourceType = "manual"
	SourceRank       SourceType = "rank"
	SourcePenalty    SourceType = "penalty"
	SourceAdjustment SourceType = "adjustment"
)

func (s SourceType) Valid() bool {
	switch s {
	case SourceActivity, SourceManual, SourceRank, SourcePenalty, SourceAdjustment:
		return true
	}
	return false
}

// LedgerEntry is an immutable record of one point change. Delta is the raw
// requested change, before the zero floor was applied to the balance.
type LedgerEntry struct {
	ID          uint       `json:"id"`
	MemberID    uint       `json:"member_id"`
	Delta       int        `json:"delta"`
	SourceType  SourceType `json:"source_type"`
	Description string     `json:"description"`
	ActivityID  *uint      `json:"activity_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type AwardResult struct {
	Applied bool         `json:"applied"`
	Balance int          `json:"balance"`
	Entry   *LedgerEntry `json:"entry,omitempty"`
}

// ClampedBalance applies one transaction to a balance.
func ClampedBalance(balance, delta int) int {
	return max(0, balance+delta)
}

// Replay rebuilds a balance from the ledger, flooring at zero after every
// entry. Entries are sorted chronologically first; a plain sum is not a valid
// reconstruction once a clamp has fired.
func Replay(entries []LedgerEntry) int {
	ordered := make([]LedgerEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].ID < ordered[j].ID
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})
	balance := 0
	for _, e := range ordered {
		balance = ClampedBalance(balance, e.Delta)
	}
	return balance
}

type Reconciliation struct {
	MemberID   uint `json:"member_id"`
	Stored     int  `json:"stored"`
	Replayed   int  `json:"replayed"`
	Entries    int  `json:"entries"`
	Consistent bool `json:"consistent"`
}
