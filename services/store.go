package services

import (
	"context"

	"github.com/yashasvi9199/MatchFind/models"
)

// ProfileStore is the profile persistence contract. There are two
// implementations: the DynamoDB-backed ProfileService and the in-memory
// MemoryStore, selected at startup.
type ProfileStore interface {
	// FetchProfile returns (nil, nil) when no profile exists; absence is
	// meaningful (it triggers first-time onboarding), not an error.
	FetchProfile(ctx context.Context, userID string) (*models.ProfileDraft, error)
	UpsertProfile(ctx context.Context, draft *models.ProfileDraft) error
	// ListCompleted returns every completed profile except excludeUserID's.
	ListCompleted(ctx context.Context, excludeUserID string) ([]models.ProfileDraft, error)
}

// InteractionStore is the ledger contract. PutInteraction upserts by the
// ordered (from,to) pair: a later write supersedes the earlier one.
type InteractionStore interface {
	PutInteraction(ctx context.Context, interaction models.Interaction) error
	InteractionsFrom(ctx context.Context, userID string) ([]models.Interaction, error)
	InteractionsTo(ctx context.Context, userID string) ([]models.Interaction, error)
}
