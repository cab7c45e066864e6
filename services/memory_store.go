package services

import (
	"context"
	"sync"
	"time"

	"github.com/yashasvi9199/MatchFind/models"
)

// MemoryStore is the in-memory ProfileStore and InteractionStore, selected
// with STORE_BACKEND=memory. It mirrors the DynamoDB keying: profiles by
// userId, interactions by the ordered (from,to) pair so that a later write
// supersedes the earlier one.
type MemoryStore struct {
	mu           sync.RWMutex
	profiles     map[string]models.ProfileDraft
	interactions map[string]map[string]models.Interaction // from -> to -> current
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles:     make(map[string]models.ProfileDraft),
		interactions: make(map[string]map[string]models.Interaction),
	}
}

func (ms *MemoryStore) FetchProfile(_ context.Context, userID string) (*models.ProfileDraft, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	p, ok := ms.profiles[userID]
	if !ok {
		return nil, nil
	}
	return p.Clone(), nil
}

func (ms *MemoryStore) UpsertProfile(_ context.Context, draft *models.ProfileDraft) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	draft.UpdatedAt = time.Now().Format(time.RFC3339)
	// Stored copies must not share slices with the caller's draft.
	ms.profiles[draft.UserID] = *draft.Clone()
	return nil
}

func (ms *MemoryStore) ListCompleted(_ context.Context, excludeUserID string) ([]models.ProfileDraft, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	var out []models.ProfileDraft
	for id, p := range ms.profiles {
		if id == excludeUserID || !p.IsCompleteProfile {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (ms *MemoryStore) PutInteraction(_ context.Context, interaction models.Interaction) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	byTo, ok := ms.interactions[interaction.FromUserID]
	if !ok {
		byTo = make(map[string]models.Interaction)
		ms.interactions[interaction.FromUserID] = byTo
	}
	byTo[interaction.ToUserID] = interaction
	return nil
}

func (ms *MemoryStore) InteractionsFrom(_ context.Context, userID string) ([]models.Interaction, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	var out []models.Interaction
	for _, in := range ms.interactions[userID] {
		out = append(out, in)
	}
	return out, nil
}

func (ms *MemoryStore) InteractionsTo(_ context.Context, userID string) ([]models.Interaction, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	var out []models.Interaction
	for _, byTo := range ms.interactions {
		if in, ok := byTo[userID]; ok {
			out = append(out, in)
		}
	}
	return out, nil
}
