package services

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/yashasvi9199/MatchFind/models"
)

// InteractionService is the DynamoDB-backed InteractionStore. The table is
// keyed (fromUserId, toUserId), so PutItem naturally replaces any earlier
// interaction for the same ordered pair. A toUserId GSI serves the
// reverse-direction queries.
type InteractionService struct {
	Dynamo  *DynamoService
	Table   string
	ToIndex string
}

func NewInteractionService(dynamo *DynamoService, table string) *InteractionService {
	if table == "" {
		table = models.InteractionsTable
	}
	return &InteractionService{Dynamo: dynamo, Table: table, ToIndex: models.ToUserIndex}
}

// PutInteraction upserts the current interaction for (from,to).
func (is *InteractionService) PutInteraction(ctx context.Context, interaction models.Interaction) error {
	if err := is.Dynamo.PutItem(ctx, is.Table, interaction); err != nil {
		log.Printf("❌ Failed to save interaction: %v", err)
		return err
	}
	log.Printf("✅ Interaction saved: %s -> %s (%s)", interaction.FromUserID, interaction.ToUserID, interaction.Kind)
	return nil
}

// InteractionsFrom fetches every current interaction the user initiated.
func (is *InteractionService) InteractionsFrom(ctx context.Context, userID string) ([]models.Interaction, error) {
	keyCondition := "fromUserId = :from"
	expressionValues := map[string]types.AttributeValue{
		":from": &types.AttributeValueMemberS{Value: userID},
	}

	items, err := is.Dynamo.QueryItems(ctx, is.Table, keyCondition, expressionValues, nil, 500)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch interactions from %s: %w", userID, err)
	}

	var interactions []models.Interaction
	if err := attributevalue.UnmarshalListOfMaps(items, &interactions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal interactions: %w", err)
	}
	return interactions, nil
}

// InteractionsTo fetches every current interaction aimed at the user,
// via the toUserId GSI.
func (is *InteractionService) InteractionsTo(ctx context.Context, userID string) ([]models.Interaction, error) {
	keyCondition := "toUserId = :to"
	expressionValues := map[string]types.AttributeValue{
		":to": &types.AttributeValueMemberS{Value: userID},
	}

	items, err := is.Dynamo.QueryItemsWithIndex(ctx, is.Table, is.ToIndex, keyCondition, expressionValues, nil, 500)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch interactions to %s: %w", userID, err)
	}

	var interactions []models.Interaction
	if err := attributevalue.UnmarshalListOfMaps(items, &interactions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal interactions: %w", err)
	}
	return interactions, nil
}
