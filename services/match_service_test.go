package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashasvi9199/MatchFind/models"
	"github.com/yashasvi9199/MatchFind/services"
)

func seedProfile(t *testing.T, store *services.MemoryStore, userID, name, gender string, complete bool) {
	t.Helper()
	draft := models.NewProfileDraft(userID)
	draft.Name = name
	draft.Gender = gender
	draft.IsCompleteProfile = complete
	require.NoError(t, store.UpsertProfile(context.Background(), draft))
}

func candidateIDs(candidates []models.CandidateProfile) []string {
	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.UserID)
	}
	return ids
}

func TestRecordInteractionRejectsBadInput(t *testing.T) {
	store := services.NewMemoryStore()
	ms := services.NewMatchService(store, store)

	_, err := ms.RecordInteraction(context.Background(), "a", "b", "MAYBE")
	assert.Error(t, err)
	_, err = ms.RecordInteraction(context.Background(), "a", "a", models.InteractionInterested)
	assert.Error(t, err)
}

func TestRecordInteractionUpsertsByPair(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemoryStore()
	ms := services.NewMatchService(store, store)

	_, err := ms.RecordInteraction(ctx, "a", "b", models.InteractionInterested)
	require.NoError(t, err)
	_, err = ms.RecordInteraction(ctx, "a", "b", models.InteractionInterested)
	require.NoError(t, err)

	out, err := store.InteractionsFrom(ctx, "a")
	require.NoError(t, err)
	require.Len(t, out, 1, "repeat decisions collapse into one entry per pair")
	assert.Equal(t, models.InteractionInterested, out[0].Kind)

	// A later REMOVED supersedes the earlier INTERESTED.
	_, err = ms.RecordInteraction(ctx, "a", "b", models.InteractionRemoved)
	require.NoError(t, err)
	out, err = store.InteractionsFrom(ctx, "a")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, models.InteractionRemoved, out[0].Kind)
}

func TestRecordInteractionMutualDetection(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemoryStore()
	ms := services.NewMatchService(store, store)

	mutual, err := ms.RecordInteraction(ctx, "a", "b", models.InteractionInterested)
	require.NoError(t, err)
	assert.False(t, mutual, "one-sided interest is not a match")

	mutual, err = ms.RecordInteraction(ctx, "b", "a", models.InteractionInterested)
	require.NoError(t, err)
	assert.True(t, mutual, "second half of the pair completes the match")

	// A REMOVED write never reports mutual, even against standing interest.
	mutual, err = ms.RecordInteraction(ctx, "b", "a", models.InteractionRemoved)
	require.NoError(t, err)
	assert.False(t, mutual)
}

func TestPotentialMatchesExcludesDecidedAndSameGender(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemoryStore()
	ms := services.NewMatchService(store, store)

	seedProfile(t, store, "me", "Rahul", models.GenderMale, true)
	seedProfile(t, store, "f1", "Priya", models.GenderFemale, true)
	seedProfile(t, store, "f2", "Anita", models.GenderFemale, true)
	seedProfile(t, store, "f3", "Kavita", models.GenderFemale, true)
	seedProfile(t, store, "f4", "Meena", models.GenderFemale, false)
	seedProfile(t, store, "m1", "Amit", models.GenderMale, true)

	_, err := ms.RecordInteraction(ctx, "me", "f1", models.InteractionInterested)
	require.NoError(t, err)
	_, err = ms.RecordInteraction(ctx, "me", "f2", models.InteractionRemoved)
	require.NoError(t, err)

	out, err := ms.PotentialMatches(ctx, "me", models.GenderMale)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"f3"}, candidateIDs(out),
		"liked, rejected, incomplete, same-gender and self all stay out")
}

func TestMatchViews(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemoryStore()
	ms := services.NewMatchService(store, store)

	seedProfile(t, store, "me", "Rahul", models.GenderMale, true)
	seedProfile(t, store, "f1", "Priya", models.GenderFemale, true)
	seedProfile(t, store, "f2", "Anita", models.GenderFemale, true)
	seedProfile(t, store, "f3", "Kavita", models.GenderFemale, true)

	_, err := ms.RecordInteraction(ctx, "me", "f1", models.InteractionInterested)
	require.NoError(t, err)
	_, err = ms.RecordInteraction(ctx, "me", "f2", models.InteractionInterested)
	require.NoError(t, err)
	_, err = ms.RecordInteraction(ctx, "me", "f3", models.InteractionRemoved)
	require.NoError(t, err)
	_, err = ms.RecordInteraction(ctx, "f1", "me", models.InteractionInterested)
	require.NoError(t, err)
	_, err = ms.RecordInteraction(ctx, "f3", "me", models.InteractionInterested)
	require.NoError(t, err)

	liked, err := ms.Liked(ctx, "me")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"f1", "f2"}, candidateIDs(liked))

	likedBy, err := ms.LikedBy(ctx, "me")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"f1", "f3"}, candidateIDs(likedBy))

	mutual, err := ms.Mutual(ctx, "me")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"f1"}, candidateIDs(mutual))

	rejected, err := ms.Rejected(ctx, "me")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"f3"}, candidateIDs(rejected))
}

func TestMutualSymmetry(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemoryStore()
	ms := services.NewMatchService(store, store)

	seedProfile(t, store, "a", "Rahul", models.GenderMale, true)
	seedProfile(t, store, "b", "Priya", models.GenderFemale, true)

	_, err := ms.RecordInteraction(ctx, "a", "b", models.InteractionInterested)
	require.NoError(t, err)
	_, err = ms.RecordInteraction(ctx, "b", "a", models.InteractionInterested)
	require.NoError(t, err)

	fromA, err := ms.Mutual(ctx, "a")
	require.NoError(t, err)
	fromB, err := ms.Mutual(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, candidateIDs(fromA))
	assert.Equal(t, []string{"a"}, candidateIDs(fromB))
}
