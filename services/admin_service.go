package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"peerfinder_server/models"
	"peerfinder_server/utils"
)

var (
	// ErrAlreadyMatched indicates a pairing target that already belongs to
	// a group. Expected, recoverable-by-caller behavior, not a fault.
	ErrAlreadyMatched = errors.New("participant already matched")

	// ErrManualPairTooFew indicates a manual pair request with fewer than
	// two participant ids
	ErrManualPairTooFew = errors.New("manual pairing requires at least two participants")
)

// DatasetStats summarizes the dataset for the admin dashboard
type DatasetStats struct {
	Total     int    `json:"total"`
	Matched   int    `json:"matched"`
	Pending   int    `json:"pending"`
	MatchRate string `json:"match_rate"`
	Offer     int    `json:"offer"`
	Need      int    `json:"need"`
}

// AdminService implements the administrative overrides: forced random
// pairing and explicit manual pairing. Both bypass normal compatibility
// filtering but share the match engine's commit and notification contract.
type AdminService struct {
	Match *MatchService
	Rand  *rand.Rand
}

// ForceRandomPair pairs the target with randomly chosen unmatched
// participants from the same program and group size, ignoring cohort,
// country, topic and availability. Insufficient candidates is a non-fatal
// outcome with no mutation.
func (as *AdminService) ForceRandomPair(ctx context.Context, participantID string) (*MatchResult, error) {
	var result MatchResult
	var members []models.Participant

	err := as.Match.Dataset.Update(ctx, func(dataset []models.Participant) ([]models.Participant, bool, error) {
		idx := findParticipant(dataset, participantID)
		if idx < 0 {
			return dataset, false, ErrParticipantNotFound
		}
		requester := dataset[idx]
		if requester.Matched {
			return dataset, false, ErrAlreadyMatched
		}

		pool := BuildRelaxedPool(dataset, requester)
		needed := requester.EffectiveGroupSize() - 1
		peers := SelectRandomPeers(pool, needed, as.Rand)
		if peers == nil {
			return dataset, false, nil
		}

		groupID := "group-random-" + uuid.NewString()
		memberIDs := append([]string{requester.ID}, idsOf(peers)...)
		assignGroup(dataset, memberIDs, groupID)

		result.Matched = true
		result.GroupID = groupID
		members = membersOf(dataset, groupID)
		return dataset, true, nil
	})
	if err != nil {
		return nil, err
	}

	if len(members) > 0 {
		as.Match.notifyMatch(members, "New Match!")
	}
	return &result, nil
}

// ManualPair groups an explicitly named set of participants. Repeated ids
// collapse to one member. Fails without mutation if fewer than two
// distinct ids remain, any id is unknown, or any named participant is
// already matched.
func (as *AdminService) ManualPair(ctx context.Context, participantIDs []string) (*MatchResult, error) {
	ids := dedupeIDs(participantIDs)
	if len(ids) < 2 {
		return nil, ErrManualPairTooFew
	}

	var result MatchResult
	var members []models.Participant

	err := as.Match.Dataset.Update(ctx, func(dataset []models.Participant) ([]models.Participant, bool, error) {
		for _, id := range ids {
			idx := findParticipant(dataset, id)
			if idx < 0 {
				return dataset, false, fmt.Errorf("%w: %s", ErrParticipantNotFound, id)
			}
			if dataset[idx].Matched {
				return dataset, false, fmt.Errorf("%w: %s", ErrAlreadyMatched, id)
			}
		}

		groupID := "group-manual-" + uuid.NewString()
		assignGroup(dataset, ids, groupID)

		result.Matched = true
		result.GroupID = groupID
		members = membersOf(dataset, groupID)
		return dataset, true, nil
	})
	if err != nil {
		return nil, err
	}

	if len(members) > 0 {
		as.Match.notifyMatch(members, "Manual Match!")
	}
	return &result, nil
}

// Snapshot returns the latest persisted dataset and its stats. Read-only,
// no write lock.
func (as *AdminService) Snapshot(ctx context.Context) ([]models.Participant, DatasetStats, error) {
	dataset, err := as.Match.Dataset.Load(ctx)
	if err != nil {
		return nil, DatasetStats{}, err
	}
	return dataset, computeStats(dataset), nil
}

// ExportCSV renders the latest persisted dataset as CSV for download
func (as *AdminService) ExportCSV(ctx context.Context) ([]byte, error) {
	dataset, err := as.Match.Dataset.Load(ctx)
	if err != nil {
		return nil, err
	}
	data, err := utils.EncodeParticipantsCSV(dataset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return data, nil
}

// dedupeIDs drops repeated ids, preserving first-seen order
func dedupeIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func computeStats(dataset []models.Participant) DatasetStats {
	stats := DatasetStats{Total: len(dataset), MatchRate: "0.0%"}
	for _, p := range dataset {
		if p.Matched {
			stats.Matched++
		}
		switch p.ConnectionType {
		case models.ConnectionOffer:
			stats.Offer++
		case models.ConnectionNeed:
			stats.Need++
		}
	}
	stats.Pending = stats.Total - stats.Matched
	if stats.Total > 0 {
		stats.MatchRate = fmt.Sprintf("%.1f%%", float64(stats.Matched)/float64(stats.Total)*100)
	}
	return stats
}
