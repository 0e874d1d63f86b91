package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"peerfinder_server/models"
	"peerfinder_server/utils"
)

// ValidationError carries every problem found in a registration payload
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// RegistrationResult reports either the new participant id or the existing
// participant the payload duplicates
type RegistrationResult struct {
	ParticipantID  string
	Duplicate      bool
	AlreadyMatched bool
}

// RegistrationService creates participants in the unmatched state
type RegistrationService struct {
	Dataset  *DatasetService
	Notifier Notifier
}

// Register validates the payload, rejects duplicate email/phone, and
// appends a new unmatched participant to the dataset
func (rs *RegistrationService) Register(ctx context.Context, req models.RegistrationRequest) (*RegistrationResult, error) {
	if problems := utils.ValidateRegistration(req); len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	email := utils.NormalizeEmail(req.Email)
	phone := utils.NormalizePhone(req.Phone)

	var result RegistrationResult
	var created models.Participant

	err := rs.Dataset.Update(ctx, func(dataset []models.Participant) ([]models.Participant, bool, error) {
		for _, p := range dataset {
			if p.Email == email || p.Phone == phone {
				result.Duplicate = true
				result.ParticipantID = p.ID
				result.AlreadyMatched = p.Matched
				return dataset, false, nil
			}
		}

		created = models.Participant{
			ID:                  uuid.NewString(),
			Name:                req.Name,
			Phone:               phone,
			Email:               email,
			Country:             req.Country,
			Language:            req.Language,
			Program:             req.Program,
			Cohort:              req.Cohort,
			TopicModule:         req.TopicModule,
			LearningPreferences: req.LearningPreferences,
			Availability:        req.Availability,
			PreferredGroupSize:  utils.ParseGroupSize(req.PreferredGroupSize),
			KindOfSupport:       req.KindOfSupport,
			ConnectionType:      req.ConnectionType,
			OpenToGlobalPairing: utils.ParseYesNo(req.OpenToGlobalPairing),
			RegisteredAt:        time.Now().UTC().Format(time.RFC3339),
		}
		result.ParticipantID = created.ID
		return append(dataset, created), true, nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Duplicate && rs.Notifier != nil {
		body := fmt.Sprintf("Hi %s,\n\nYou're in the matching queue.\nYour ID: %s", created.Name, created.ID)
		rs.Notifier.Notify(created, "You're in Queue!", body, "")
	}
	return &result, nil
}
