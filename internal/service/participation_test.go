package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/activities-api/internal/domain"
)

func seedActivity(f *fixture, points int) domain.Activity {
	begin := time.Date(2024, time.March, 1, 18, 0, 0, 0, time.UTC)
	return f.store.addActivity(domain.Activity{
		Type:    domain.ActivityEvent,
		Name:    "Spring gala",
		BeginAt: begin,
		EndAt:   begin.Add(2 * time.Hour),
		Points:  points,
	})
}

func seedMembers(f *fixture, n int) []uint {
	ids := make([]uint, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, f.store.addMember(domain.Member{}).ID)
	}
	return ids
}

func TestParticipationService_AddParticipants_AwardsPoints(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	activity := seedActivity(f, 50)
	members := seedMembers(f, 3)

	result, err := f.participation.AddParticipants(ctx, activity.ID, domain.AddParticipantsInput{MemberIDs: members})
	require.NoError(t, err)
	require.NoError(t, result.Err())

	assert.Equal(t, 3, result.SuccessCount)
	assert.Equal(t, 0, result.FailCount)
	require.Len(t, result.Added, 3)
	for _, id := range members {
		assert.Equal(t, 50, f.store.balance(id))
		entries := f.store.ledger(id)
		require.Len(t, entries, 1)
		assert.Equal(t, domain.SourceActivity, entries[0].SourceType)
		assert.Equal(t, activity.ID, *entries[0].ActivityID)
	}
	for _, p := range result.Added {
		assert.Equal(t, 50, p.AwardedPoints)
	}
}

func TestParticipationService_AddParticipants_InterestOnlyAwardsNothing(t *testing.T) {
	f := newFixture()
	activity := seedActivity(f, 50)
	members := seedMembers(f, 2)

	result, err := f.participation.AddParticipants(context.Background(), activity.ID, domain.AddParticipantsInput{
		MemberIDs:    members,
		IsInterested: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.SuccessCount)
	for _, id := range members {
		assert.Equal(t, 0, f.store.balance(id))
		assert.Empty(t, f.store.ledger(id))
	}
	for _, p := range result.Added {
		assert.Equal(t, 0, p.AwardedPoints)
		assert.Equal(t, domain.StateInterested, p.State())
	}
}

func TestParticipationService_AddParticipants_ExistingMemberIsRejected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	activity := seedActivity(f, 10)
	members := seedMembers(f, 3)

	_, err := f.participation.AddParticipants(ctx, activity.ID, domain.AddParticipantsInput{MemberIDs: members[:1]})
	require.NoError(t, err)

	result, err := f.participation.AddParticipants(ctx, activity.ID, domain.AddParticipantsInput{MemberIDs: members})
	require.NoError(t, err)

	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.FailCount)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, members[0], result.Failures[0].MemberID)
	assert.ErrorIs(t, result.Failures[0].Err, domain.ErrConflict)
	assert.ErrorIs(t, result.Err(), domain.ErrPartialFailure)

	assert.Equal(t, 10, f.store.balance(members[0]), "existing registration is not awarded twice")
	assert.Equal(t, 10, f.store.balance(members[1]))
	assert.Equal(t, 10, f.store.balance(members[2]))
}

func TestParticipationService_AddParticipants_DuplicateInRequest(t *testing.T) {
	f := newFixture()
	activity := seedActivity(f, 10)
	members := seedMembers(f, 1)

	result, err := f.participation.AddParticipants(context.Background(), activity.ID, domain.AddParticipantsInput{
		MemberIDs: []uint{members[0], members[0]},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 1, result.FailCount)
	require.Len(t, result.Failures, 1)
	assert.ErrorIs(t, result.Failures[0].Err, ErrDuplicateMember)
	assert.Equal(t, 10, f.store.balance(members[0]))
}

func TestParticipationService_AddParticipants_DuplicateOfFailedMember(t *testing.T) {
	f := newFixture()
	activity := seedActivity(f, 10)
	const unknownMember = 9999

	result, err := f.participation.AddParticipants(context.Background(), activity.ID, domain.AddParticipantsInput{
		MemberIDs: []uint{unknownMember, unknownMember},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 2, result.FailCount)
	require.Len(t, result.Failures, result.FailCount)
	for _, failure := range result.Failures {
		assert.Equal(t, uint(unknownMember), failure.MemberID)
	}
	assert.ErrorIs(t, result.Failures[0].Err, ErrDuplicateMember)
	assert.ErrorIs(t, result.Failures[1].Err, domain.ErrNotFound)
}

func TestParticipationService_AddParticipants_FailedAwardRollsBackRegistration(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	activity := seedActivity(f, 10)
	members := seedMembers(f, 1)
	const unknownMember = 9999

	result, err := f.participation.AddParticipants(ctx, activity.ID, domain.AddParticipantsInput{
		MemberIDs: []uint{members[0], unknownMember},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.SuccessCount)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, uint(unknownMember), result.Failures[0].MemberID)
	assert.ErrorIs(t, result.Failures[0].Err, domain.ErrNotFound)

	participants, err := f.participation.List(ctx, activity.ID)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, members[0], participants[0].MemberID)
}

func TestParticipationService_AddParticipants_AllFailed(t *testing.T) {
	f := newFixture()
	activity := seedActivity(f, 10)

	result, err := f.participation.AddParticipants(context.Background(), activity.ID, domain.AddParticipantsInput{
		MemberIDs: []uint{9998, 9999},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 2, result.FailCount)
	assert.Len(t, result.Failures, 2)
	assert.ErrorIs(t, result.Err(), domain.ErrNotFound)
	assert.NotErrorIs(t, result.Err(), domain.ErrPartialFailure)
}

func TestParticipationService_AddParticipants_Validation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	activity := seedActivity(f, 10)

	_, err := f.participation.AddParticipants(ctx, activity.ID, domain.AddParticipantsInput{})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.participation.AddParticipants(ctx, activity.ID, domain.AddParticipantsInput{MemberIDs: []uint{1}, Rate: ptr(6)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.participation.AddParticipants(ctx, 12345, domain.AddParticipantsInput{MemberIDs: []uint{1}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParticipationService_Remove_ReversesAwardedPoints(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	activity := seedActivity(f, 50)
	members := seedMembers(f, 1)

	result, err := f.participation.AddParticipants(ctx, activity.ID, domain.AddParticipantsInput{MemberIDs: members})
	require.NoError(t, err)
	require.Len(t, result.Added, 1)

	require.NoError(t, f.participation.Remove(ctx, result.Added[0].ID))

	entries := f.store.ledger(members[0])
	require.Len(t, entries, 2)
	assert.Equal(t, 50, entries[0].Delta)
	assert.Equal(t, -50, entries[1].Delta)
	assert.Equal(t, domain.SourceActivity, entries[1].SourceType)
	assert.Equal(t, 0, f.store.balance(members[0]))

	err = f.participation.Remove(ctx, result.Added[0].ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, f.store.ledger(members[0]), 2)
}

func TestParticipationService_Remove_TentativeHasNoLedgerEffect(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	activity := seedActivity(f, 50)
	members := seedMembers(f, 1)

	result, err := f.participation.AddParticipants(ctx, activity.ID, domain.AddParticipantsInput{MemberIDs: members, IsTemp: true})
	require.NoError(t, err)

	require.NoError(t, f.participation.Remove(ctx, result.Added[0].ID))

	assert.Empty(t, f.store.ledger(members[0]))
}

func TestParticipationService_MarkAttendance(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	activity := seedActivity(f, 50)
	members := seedMembers(f, 2)

	result, err := f.participation.AddParticipants(ctx, activity.ID, domain.AddParticipantsInput{MemberIDs: members, IsTemp: true})
	require.NoError(t, err)
	require.Len(t, result.Added, 2)

	present, err := f.participation.MarkAttendance(ctx, result.Added[0].ID, domain.AttendancePresent)
	require.NoError(t, err)
	assert.Equal(t, domain.StateConfirmed, present.State())
	assert.Empty(t, f.store.ledger(present.MemberID))

	absent, err := f.participation.MarkAttendance(ctx, result.Added[1].ID, domain.AttendanceAbsent)
	require.NoError(t, err)
	assert.Empty(t, f.store.ledger(absent.MemberID))

	_, err = f.participation.MarkAttendance(ctx, result.Added[1].ID, domain.AttendanceAbsent)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.participation.MarkAttendance(ctx, result.Added[0].ID, "late")
	assert.ErrorIs(t, err, domain.ErrValidation)

	participants, err := f.participation.List(ctx, activity.ID)
	require.NoError(t, err)
	assert.Len(t, participants, 1)
}

func TestParticipationService_Update(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	activity := seedActivity(f, 5)
	members := seedMembers(f, 1)

	result, err := f.participation.AddParticipants(ctx, activity.ID, domain.AddParticipantsInput{MemberIDs: members})
	require.NoError(t, err)
	id := result.Added[0].ID

	updated, err := f.participation.Update(ctx, id, domain.ParticipantPatch{Rate: ptr(4), Notes: ptr("great")})
	require.NoError(t, err)
	require.NotNil(t, updated.Rate)
	assert.Equal(t, 4, *updated.Rate)
	assert.Equal(t, "great", updated.Notes)
	assert.Len(t, f.store.ledger(members[0]), 1)

	_, err = f.participation.Update(ctx, id, domain.ParticipantPatch{Rate: ptr(0)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.participation.Update(ctx, 4242, domain.ParticipantPatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
