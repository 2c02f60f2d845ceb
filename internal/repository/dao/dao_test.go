package dao

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vietanh2810/activities-api/internal/domain"
)

var begin = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func insertMember(t *testing.T, db *gorm.DB, email string) Member {
	t.Helper()
	m, err := NewMemberDAO(db).Insert(context.Background(), Member{
		Email:    email,
		Password: "hash",
		Name:     "Member",
		Role:     "member",
		JoinedAt: begin.AddDate(-1, 0, 0),
	})
	require.NoError(t, err)
	return m
}

func insertActivity(t *testing.T, db *gorm.DB, ext Extension) Activity {
	t.Helper()
	a, err := NewActivityDAO(db).Insert(context.Background(), Activity{
		Type:       ext.Kind(),
		Name:       "Activity",
		BeginAt:    begin,
		EndAt:      begin.Add(2 * time.Hour),
		Points:     10,
		IsPublic:   true,
		Categories: datatypes.JSON(`["sport"]`),
	}, ext)
	require.NoError(t, err)
	return a
}

func TestActivityDAO_InsertAndRead(t *testing.T) {
	db := setupDB(t)
	d := NewActivityDAO(db)
	ctx := context.Background()

	a := insertActivity(t, db, &MeetingDetails{MeetingCategory: "board", AgendaPlan: "budget"})
	require.NotZero(t, a.ID)

	got, err := d.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, TypeMeeting, got.Type)
	assert.JSONEq(t, `["sport"]`, string(got.Categories))

	ext, err := d.FindExtension(ctx, got.Type, a.ID)
	require.NoError(t, err)
	meeting, ok := ext.(*MeetingDetails)
	require.True(t, ok)
	assert.Equal(t, "board", meeting.MeetingCategory)

	_, err = d.FindExtension(ctx, TypeFormation, a.ID)
	assert.ErrorIs(t, err, ErrActivityExtensionMissing)

	_, err = d.FindByID(ctx, a.ID+100)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityDAO_InsertRejectsForeignExtension(t *testing.T) {
	db := setupDB(t)
	d := NewActivityDAO(db)

	_, err := d.Insert(context.Background(), Activity{Type: TypeEvent, Name: "x", BeginAt: begin, EndAt: begin.Add(time.Hour)}, &FormationDetails{})
	assert.ErrorIs(t, err, ErrInvalidActivityType)

	var count int64
	require.NoError(t, db.Model(&Activity{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestActivityDAO_FindOrdering(t *testing.T) {
	db := setupDB(t)
	d := NewActivityDAO(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := d.Insert(ctx, Activity{
			Type:    TypeEvent,
			Name:    fmt.Sprintf("event %d", i),
			BeginAt: begin.AddDate(0, 0, i),
			EndAt:   begin.AddDate(0, 0, i).Add(time.Hour),
		}, &EventDetails{})
		require.NoError(t, err)
	}

	newest, err := d.Find(ctx, ActivityFilter{Type: TypeEvent})
	require.NoError(t, err)
	require.Len(t, newest, 3)
	assert.Equal(t, "event 2", newest[0].Name)

	since, err := d.FindSince(ctx, begin.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, since, 2)
	assert.Equal(t, "event 1", since[0].Name)
}

func TestActivityDAO_FindExtensions(t *testing.T) {
	db := setupDB(t)
	d := NewActivityDAO(db)
	ctx := context.Background()

	meeting := insertActivity(t, db, &MeetingDetails{MeetingCategory: "board"})
	formation := insertActivity(t, db, &FormationDetails{TrainingCategory: "safety"})
	event := insertActivity(t, db, &EventDetails{})

	found, err := d.FindSince(ctx, begin)
	require.NoError(t, err)
	require.Len(t, found, 3)

	exts, err := d.FindExtensions(ctx, found)
	require.NoError(t, err)
	require.Len(t, exts, 3)

	require.IsType(t, &MeetingDetails{}, exts[meeting.ID])
	assert.Equal(t, "board", exts[meeting.ID].(*MeetingDetails).MeetingCategory)
	require.IsType(t, &FormationDetails{}, exts[formation.ID])
	assert.Equal(t, "safety", exts[formation.ID].(*FormationDetails).TrainingCategory)
	assert.IsType(t, &EventDetails{}, exts[event.ID])

	empty, err := d.FindExtensions(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestActivityDAO_Update(t *testing.T) {
	db := setupDB(t)
	d := NewActivityDAO(db)
	ctx := context.Background()

	a := insertActivity(t, db, &FormationDetails{TrainerName: "Lea"})

	err := d.Update(ctx, a.ID, TypeFormation,
		map[string]any{"name": "Renamed"},
		map[string]any{"trainer_name": "Marc"})
	require.NoError(t, err)

	ext, err := d.FindExtension(ctx, TypeFormation, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Marc", ext.(*FormationDetails).TrainerName)

	err = d.Update(ctx, a.ID+100, TypeFormation, map[string]any{"name": "ghost"}, nil)
	assert.ErrorIs(t, err, ErrActivityNotFound)

	// The base write is rolled back when the extension row is missing.
	err = d.Update(ctx, a.ID, TypeMeeting, map[string]any{"name": "Half"}, map[string]any{"agenda_plan": "x"})
	assert.ErrorIs(t, err, ErrActivityExtensionMissing)
	got, err := d.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
}

func TestActivityDAO_DeleteIsIdempotent(t *testing.T) {
	db := setupDB(t)
	d := NewActivityDAO(db)
	ctx := context.Background()

	a := insertActivity(t, db, &GeneralAssemblyDetails{AssemblyScope: "annual"})
	m := insertMember(t, db, "p@example.com")
	_, err := NewParticipantDAO(db).Insert(ctx, Participant{ActivityID: a.ID, MemberID: m.ID, RegisteredAt: begin})
	require.NoError(t, err)

	require.NoError(t, d.Delete(ctx, a.ID))
	require.NoError(t, d.Delete(ctx, a.ID))

	_, err = d.FindByID(ctx, a.ID)
	assert.ErrorIs(t, err, ErrActivityNotFound)
	_, err = d.FindExtension(ctx, TypeGeneralAssembly, a.ID)
	assert.ErrorIs(t, err, ErrActivityExtensionMissing)

	participants, err := NewParticipantDAO(db).FindByActivity(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, participants)
}

func TestParticipantDAO_Constraints(t *testing.T) {
	db := setupDB(t)
	d := NewParticipantDAO(db)
	ctx := context.Background()

	a := insertActivity(t, db, &EventDetails{})
	m := insertMember(t, db, "p@example.com")

	p, err := d.Insert(ctx, Participant{ActivityID: a.ID, MemberID: m.ID, IsTemp: true, RegisteredAt: begin})
	require.NoError(t, err)

	_, err = d.Insert(ctx, Participant{ActivityID: a.ID, MemberID: m.ID, RegisteredAt: begin})
	assert.ErrorIs(t, err, ErrParticipantExists)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = d.Insert(ctx, Participant{ActivityID: a.ID, MemberID: m.ID + 100, RegisteredAt: begin})
	assert.ErrorIs(t, err, ErrMemberNotFound)

	rate := 4
	updated, err := d.Update(ctx, p.ID, map[string]any{"rate": &rate, "is_temp": false})
	require.NoError(t, err)
	assert.Equal(t, 4, *updated.Rate)
	assert.False(t, updated.IsTemp)

	_, err = d.Update(ctx, p.ID+100, map[string]any{"notes": "x"})
	assert.ErrorIs(t, err, ErrParticipantNotFound)

	require.NoError(t, d.Delete(ctx, p.ID))
	assert.ErrorIs(t, d.Delete(ctx, p.ID), ErrParticipantNotFound)
}

func TestMemberDAO(t *testing.T) {
	db := setupDB(t)
	d := NewMemberDAO(db)
	ctx := context.Background()

	m := insertMember(t, db, "a@example.com")

	_, err := d.Insert(ctx, Member{Email: "a@example.com", Password: "x", Name: "Dup", Role: "member", JoinedAt: begin})
	assert.ErrorIs(t, err, ErrMemberEmailExists)

	require.NoError(t, d.UpdateBalance(ctx, m.ID, 42))
	require.NoError(t, d.UpdatePreferredCategories(ctx, m.ID, datatypes.JSON(`["music"]`)))

	got, err := d.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, 42, got.Balance)
	assert.JSONEq(t, `["music"]`, string(got.PreferredCategories))

	assert.ErrorIs(t, d.UpdateBalance(ctx, m.ID+100, 1), ErrMemberNotFound)
	_, err = d.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestTransactor(t *testing.T) {
	db := setupDB(t)
	tx := NewTransactor(db)
	members := NewMemberDAO(db)
	ledger := NewLedgerDAO(db)
	ctx := context.Background()

	m := insertMember(t, db, "l@example.com")
	errAbort := errors.New("abort")

	err := tx.Run(ctx, func(ctx context.Context) error {
		locked, err := members.FindByIDForUpdate(ctx, m.ID)
		if err != nil {
			return err
		}
		if err = members.UpdateBalance(ctx, locked.ID, 10); err != nil {
			return err
		}
		if _, err = ledger.Insert(ctx, LedgerEntry{MemberID: m.ID, Delta: 10, SourceType: "manual", CreatedAt: begin}); err != nil {
			return err
		}
		// A nested run joins the outer transaction.
		return tx.Run(ctx, func(context.Context) error { return errAbort })
	})
	require.ErrorIs(t, err, errAbort)

	got, err := members.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Balance)
	entries, err := ledger.FindByMember(ctx, m.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)

	err = tx.Run(ctx, func(ctx context.Context) error {
		if _, err := ledger.Insert(ctx, LedgerEntry{MemberID: m.ID, Delta: -3, SourceType: "penalty", CreatedAt: begin.Add(time.Hour)}); err != nil {
			return err
		}
		_, err := ledger.Insert(ctx, LedgerEntry{MemberID: m.ID, Delta: 5, SourceType: "manual", CreatedAt: begin})
		return err
	})
	require.NoError(t, err)

	entries, err = ledger.FindByMember(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 5, entries[0].Delta)
	assert.Equal(t, -3, entries[1].Delta)
}

func TestTransactor_ConcurrentRegistrationsOfOneMember(t *testing.T) {
	db := setupDB(t)
	tx := NewTransactor(db)
	members := NewMemberDAO(db)
	participants := NewParticipantDAO(db)
	ledger := NewLedgerDAO(db)

	m := insertMember(t, db, "c@example.com")
	activities := []Activity{
		insertActivity(t, db, &EventDetails{}),
		insertActivity(t, db, &EventDetails{}),
	}

	// Each registration inserts its participant row before any of them locks
	// the member, so the foreign key checks overlap with the member locks.
	var inserted, done sync.WaitGroup
	inserted.Add(len(activities))
	errs := make([]error, len(activities))
	for i, a := range activities {
		done.Add(1)
		go func(i int, a Activity) {
			defer done.Done()
			errs[i] = tx.Run(context.Background(), func(ctx context.Context) error {
				_, err := participants.Insert(ctx, Participant{ActivityID: a.ID, MemberID: m.ID, RegisteredAt: begin})
				inserted.Done()
				if err != nil {
					return err
				}
				inserted.Wait()

				locked, err := members.FindByIDForUpdate(ctx, m.ID)
				if err != nil {
					return err
				}
				if err = members.UpdateBalance(ctx, locked.ID, locked.Balance+a.Points); err != nil {
					return err
				}
				_, err = ledger.Insert(ctx, LedgerEntry{MemberID: m.ID, Delta: a.Points, SourceType: "activity", ActivityID: &a.ID, CreatedAt: begin})
				return err
			})
		}(i, a)
	}
	done.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	got, err := members.FindByID(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, got.Balance)

	entries, err := ledger.FindByMember(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
