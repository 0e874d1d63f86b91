package models

// Participant defines one registered learner in the matching dataset
type Participant struct {
	ID                  string `json:"id" dynamodbav:"id"`
	Name                string `json:"name" dynamodbav:"name"`
	Phone               string `json:"phone" dynamodbav:"phone"`
	Email               string `json:"email" dynamodbav:"email"`
	Country             string `json:"country" dynamodbav:"country"`
	Language            string `json:"language" dynamodbav:"language"`
	Program             string `json:"program" dynamodbav:"program"`
	Cohort              string `json:"cohort" dynamodbav:"cohort"`
	TopicModule         string `json:"topic_module" dynamodbav:"topicModule"`
	LearningPreferences string `json:"learning_preferences" dynamodbav:"learningPreferences"`
	Availability        string `json:"availability" dynamodbav:"availability"`
	PreferredGroupSize  int    `json:"preferred_study_setup" dynamodbav:"preferredStudySetup"`
	KindOfSupport       string `json:"kind_of_support" dynamodbav:"kindOfSupport"`
	ConnectionType      string `json:"connection_type" dynamodbav:"connectionType"`
	OpenToGlobalPairing bool   `json:"open_to_global_pairing" dynamodbav:"openToGlobalPairing"`
	RegisteredAt        string `json:"timestamp" dynamodbav:"registeredAt"`
	Matched             bool   `json:"matched" dynamodbav:"matched"`
	GroupID             string `json:"group_id" dynamodbav:"groupId,omitempty"`
	UnpairReason        string `json:"unpair_reason" dynamodbav:"unpairReason,omitempty"`
	MatchedTimestamp    string `json:"matched_timestamp" dynamodbav:"matchedTimestamp,omitempty"`
	MatchAttempted      bool   `json:"match_attempted" dynamodbav:"matchAttempted"`
}

// EffectiveGroupSize returns the target group size for a "find" participant.
// The size is parsed and bounded at the system boundary; anything that
// slipped through falls back to the default pair size.
func (p Participant) EffectiveGroupSize() int {
	if p.PreferredGroupSize < MinGroupSize || p.PreferredGroupSize > MaxGroupSize {
		return DefaultGroupSize
	}
	return p.PreferredGroupSize
}

// ParticipantsTable is the DynamoDB table name for the participant dataset
const ParticipantsTable = "PeerFinderParticipants"
