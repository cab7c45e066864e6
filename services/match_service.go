package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/yashasvi9199/MatchFind/models"
)

// MatchService derives the discovery and match views from the interaction
// ledger and the profile pool. All five queries are pure read projections.
type MatchService struct {
	Profiles     ProfileStore
	Interactions InteractionStore
}

func NewMatchService(profiles ProfileStore, interactions InteractionStore) *MatchService {
	return &MatchService{Profiles: profiles, Interactions: interactions}
}

// RecordInteraction upserts the caller's current decision toward a target
// and reports whether an INTERESTED write completed a mutual pair.
func (ms *MatchService) RecordInteraction(ctx context.Context, fromUserID, toUserID, kind string) (bool, error) {
	if kind != models.InteractionInterested && kind != models.InteractionRemoved {
		return false, fmt.Errorf("unknown interaction kind %q", kind)
	}
	if fromUserID == toUserID {
		return false, fmt.Errorf("cannot record an interaction toward yourself")
	}

	err := ms.Interactions.PutInteraction(ctx, models.Interaction{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Kind:       kind,
		Timestamp:  time.Now().UnixMilli(),
	})
	if err != nil {
		return false, err
	}

	if kind != models.InteractionInterested {
		return false, nil
	}

	// Mutual when the target independently marked the caller INTERESTED.
	reverse, err := ms.Interactions.InteractionsFrom(ctx, toUserID)
	if err != nil {
		log.Printf("❌ Failed to check reverse interaction %s -> %s: %v", toUserID, fromUserID, err)
		return false, nil
	}
	for _, in := range reverse {
		if in.ToUserID == fromUserID && in.Kind == models.InteractionInterested {
			log.Printf("🎉 Mutual match: %s and %s", fromUserID, toUserID)
			return true, nil
		}
	}
	return false, nil
}

// PotentialMatches returns completed profiles of the opposite gender the
// caller has not yet decided on. Any prior interaction, INTERESTED or
// REMOVED, keeps a candidate out of discovery.
func (ms *MatchService) PotentialMatches(ctx context.Context, userID, gender string) ([]models.CandidateProfile, error) {
	pool, err := ms.Profiles.ListCompleted(ctx, userID)
	if err != nil {
		return nil, err
	}

	decided, err := ms.decidedUpon(ctx, userID)
	if err != nil {
		return nil, err
	}

	opposite := models.OppositeGender(gender)
	out := []models.CandidateProfile{}
	for i := range pool {
		p := &pool[i]
		if p.Gender != opposite || decided[p.UserID] {
			continue
		}
		out = append(out, p.Candidate())
	}
	return out, nil
}

// Liked returns the profiles the caller marked INTERESTED.
func (ms *MatchService) Liked(ctx context.Context, userID string) ([]models.CandidateProfile, error) {
	ids, err := ms.outgoing(ctx, userID, models.InteractionInterested)
	if err != nil {
		return nil, err
	}
	return ms.project(ctx, userID, ids)
}

// LikedBy returns the profiles that marked the caller INTERESTED.
func (ms *MatchService) LikedBy(ctx context.Context, userID string) ([]models.CandidateProfile, error) {
	ids, err := ms.incoming(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ms.project(ctx, userID, ids)
}

// Mutual returns the profiles where both directions are INTERESTED.
func (ms *MatchService) Mutual(ctx context.Context, userID string) ([]models.CandidateProfile, error) {
	liked, err := ms.outgoing(ctx, userID, models.InteractionInterested)
	if err != nil {
		return nil, err
	}
	likedBy, err := ms.incoming(ctx, userID)
	if err != nil {
		return nil, err
	}

	mutual := make(map[string]bool)
	for id := range liked {
		if likedBy[id] {
			mutual[id] = true
		}
	}
	return ms.project(ctx, userID, mutual)
}

// Rejected returns the profiles the caller marked REMOVED.
func (ms *MatchService) Rejected(ctx context.Context, userID string) ([]models.CandidateProfile, error) {
	ids, err := ms.outgoing(ctx, userID, models.InteractionRemoved)
	if err != nil {
		return nil, err
	}
	return ms.project(ctx, userID, ids)
}

// decidedUpon is the set of users the caller recorded any interaction toward.
func (ms *MatchService) decidedUpon(ctx context.Context, userID string) (map[string]bool, error) {
	interactions, err := ms.Interactions.InteractionsFrom(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(interactions))
	for _, in := range interactions {
		ids[in.ToUserID] = true
	}
	return ids, nil
}

// outgoing is the set of users the caller marked with kind.
func (ms *MatchService) outgoing(ctx context.Context, userID, kind string) (map[string]bool, error) {
	interactions, err := ms.Interactions.InteractionsFrom(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool)
	for _, in := range interactions {
		if in.Kind == kind {
			ids[in.ToUserID] = true
		}
	}
	return ids, nil
}

// incoming is the set of users that marked the caller INTERESTED.
func (ms *MatchService) incoming(ctx context.Context, userID string) (map[string]bool, error) {
	interactions, err := ms.Interactions.InteractionsTo(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool)
	for _, in := range interactions {
		if in.Kind == models.InteractionInterested {
			ids[in.FromUserID] = true
		}
	}
	return ids, nil
}

// project maps a user-id set onto candidate projections from the pool.
func (ms *MatchService) project(ctx context.Context, userID string, ids map[string]bool) ([]models.CandidateProfile, error) {
	if len(ids) == 0 {
		return []models.CandidateProfile{}, nil
	}
	pool, err := ms.Profiles.ListCompleted(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := []models.CandidateProfile{}
	for i := range pool {
		if ids[pool[i].UserID] {
			out = append(out, pool[i].Candidate())
		}
	}
	return out, nil
}
