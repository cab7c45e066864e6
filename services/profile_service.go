package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/yashasvi9199/MatchFind/models"
)

// ProfileService is the DynamoDB-backed ProfileStore. Profiles live in a
// single table keyed by userId.
type ProfileService struct {
	Dynamo *DynamoService
	Table  string
}

func NewProfileService(dynamo *DynamoService, table string) *ProfileService {
	if table == "" {
		table = models.ProfilesTable
	}
	return &ProfileService{Dynamo: dynamo, Table: table}
}

// FetchProfile retrieves a profile draft by user id. A missing profile is
// reported as (nil, nil).
func (ps *ProfileService) FetchProfile(ctx context.Context, userID string) (*models.ProfileDraft, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ps.Dynamo.GetItem(ctx, ps.Table, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile for %s: %w", userID, err)
	}

	var draft models.ProfileDraft
	if err := attributevalue.UnmarshalMap(item, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile for %s: %w", userID, err)
	}
	return &draft, nil
}

// UpsertProfile writes the whole draft, stamping updatedAt.
func (ps *ProfileService) UpsertProfile(ctx context.Context, draft *models.ProfileDraft) error {
	draft.UpdatedAt = time.Now().Format(time.RFC3339)
	if err := ps.Dynamo.PutItem(ctx, ps.Table, draft); err != nil {
		return err
	}
	log.Printf("✅ Profile saved for %s", draft.UserID)
	return nil
}

// ListCompleted scans for every completed profile except the caller's own.
func (ps *ProfileService) ListCompleted(ctx context.Context, excludeUserID string) ([]models.ProfileDraft, error) {
	var profiles []models.ProfileDraft
	err := ps.Dynamo.ScanWithFilter(ctx, ps.Table, func(item map[string]types.AttributeValue) bool {
		if id, ok := item["userId"].(*types.AttributeValueMemberS); ok && id.Value == excludeUserID {
			return false
		}
		complete, ok := item["isCompleteProfile"].(*types.AttributeValueMemberBOOL)
		return ok && complete.Value
	}, &profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}
