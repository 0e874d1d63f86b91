package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"peerfinder_server/models"
)

// ErrParticipantNotFound indicates an unknown participant id
var ErrParticipantNotFound = errors.New("participant not found")

// MatchResult is the outcome of a matching attempt. Matched=false is a
// normal "no match yet" outcome, not an error.
type MatchResult struct {
	Matched bool
	GroupID string
}

// StatusResult is the read-only view of a participant's match state
type StatusResult struct {
	Participant models.Participant
	Matched     bool
	Group       []models.Participant
}

// MatchService orchestrates matching attempts: build the candidate pool,
// select members, commit the state transition, notify the group.
type MatchService struct {
	Dataset       *DatasetService
	Notifier      Notifier
	StatusBaseURL string

	// CascadeUnpair makes Unpair dissolve the leaver's whole group instead
	// of leaving former group-mates in a stale matched state.
	CascadeUnpair bool
}

// RequestMatch runs one matching attempt for the participant. The attempt
// is recorded on the participant regardless of outcome. Calling it for an
// already-matched participant is idempotent and returns the existing group.
func (ms *MatchService) RequestMatch(ctx context.Context, participantID string) (*MatchResult, error) {
	var result MatchResult
	var members []models.Participant

	err := ms.Dataset.Update(ctx, func(dataset []models.Participant) ([]models.Participant, bool, error) {
		idx := findParticipant(dataset, participantID)
		if idx < 0 {
			return dataset, false, ErrParticipantNotFound
		}
		dataset[idx].MatchAttempted = true
		requester := dataset[idx]

		if requester.Matched {
			result.Matched = true
			result.GroupID = requester.GroupID
			return dataset, true, nil
		}

		pool := BuildPool(dataset, requester)
		peers := SelectPeers(pool, requester)
		if peers == nil {
			// Persist anyway so the attempt flag survives a failed attempt.
			return dataset, true, nil
		}

		groupID := "group-" + uuid.NewString()
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
		ms.notifyMatch(members, "It's a Match!")
	}
	return &result, nil
}

// GetStatus returns the participant's match state and, when matched, the
// roster of co-members. Read-only: no write lock taken.
func (ms *MatchService) GetStatus(ctx context.Context, participantID string) (*StatusResult, error) {
	dataset, err := ms.Dataset.Load(ctx)
	if err != nil {
		return nil, err
	}
	idx := findParticipant(dataset, participantID)
	if idx < 0 {
		return nil, ErrParticipantNotFound
	}
	p := dataset[idx]
	status := &StatusResult{Participant: p, Matched: p.Matched}
	if p.Matched && p.GroupID != "" {
		status.Group = membersOf(dataset, p.GroupID)
	}
	return status, nil
}

// Unpair returns the participant to the unmatched state and records the
// reason. By default the rest of the former group keeps its matched state
// (matching the legacy behavior); with CascadeUnpair the whole group is
// dissolved.
func (ms *MatchService) Unpair(ctx context.Context, participantID, reason string) error {
	return ms.Dataset.Update(ctx, func(dataset []models.Participant) ([]models.Participant, bool, error) {
		idx := findParticipant(dataset, participantID)
		if idx < 0 {
			return dataset, false, ErrParticipantNotFound
		}
		formerGroupID := dataset[idx].GroupID

		dataset[idx].Matched = false
		dataset[idx].GroupID = ""
		dataset[idx].MatchedTimestamp = ""
		dataset[idx].UnpairReason = reason

		if ms.CascadeUnpair && formerGroupID != "" {
			for i := range dataset {
				if dataset[i].GroupID == formerGroupID {
					dataset[i].Matched = false
					dataset[i].GroupID = ""
					dataset[i].MatchedTimestamp = ""
				}
			}
		}
		return dataset, true, nil
	})
}

// notifyMatch informs every member of a committed match. Runs after the
// dataset write, outside the lock; failures are logged by the notifier and
// never affect the committed match.
func (ms *MatchService) notifyMatch(members []models.Participant, subject string) {
	if ms.Notifier == nil {
		return
	}
	for _, m := range members {
		body := fmt.Sprintf("Hi %s,\n\nYou have been matched in %s!", m.Name, m.Program)
		link := ""
		if ms.StatusBaseURL != "" {
			link = ms.StatusBaseURL + "/status/" + m.ID
		}
		if !ms.Notifier.Notify(m, subject, body, link) {
			log.Printf("Notification delivery failed for participant %s", m.ID)
		}
	}
}

// findParticipant returns the dataset index for an id, or -1
func findParticipant(dataset []models.Participant, id string) int {
	for i := range dataset {
		if dataset[i].ID == id {
			return i
		}
	}
	return -1
}

// assignGroup transitions every named member to matched with one shared
// group id and one shared timestamp, in the same in-memory update
func assignGroup(dataset []models.Participant, memberIDs []string, groupID string) {
	matchedAt := time.Now().UTC().Format(time.RFC3339)
	ids := map[string]bool{}
	for _, id := range memberIDs {
		ids[id] = true
	}
	for i := range dataset {
		if ids[dataset[i].ID] {
			dataset[i].Matched = true
			dataset[i].GroupID = groupID
			dataset[i].MatchedTimestamp = matchedAt
		}
	}
}

// membersOf returns every participant sharing a group id, in dataset order
func membersOf(dataset []models.Participant, groupID string) []models.Participant {
	var members []models.Participant
	for _, p := range dataset {
		if p.GroupID == groupID {
			members = append(members, p)
		}
	}
	return members
}

func idsOf(participants []models.Participant) []string {
	ids := make([]string, 0, len(participants))
	for _, p := range participants {
		ids = append(ids, p.ID)
	}
	return ids
}
