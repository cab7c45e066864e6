package models

// InteractionsTable is the DynamoDB table holding the interaction ledger,
// keyed by (fromUserId, toUserId) so a later decision replaces the
// earlier one for the same pair.
const InteractionsTable = "Interactions"

// ToUserIndex is the GSI used to answer "who decided on me".
const ToUserIndex = "toUserId-index"

// Interaction is one user's current decision toward another.
type Interaction struct {
	FromUserID string `json:"fromUserId" dynamodbav:"fromUserId"`
	ToUserID   string `json:"toUserId" dynamodbav:"toUserId"`
	Kind       string `json:"kind" dynamodbav:"kind"`
	Timestamp  int64  `json:"timestamp" dynamodbav:"timestamp"`
}
