package models

// RegistrationRequest carries the raw registration payload. Loose fields
// (group size, global pairing flag) stay strings here and are parsed once
// during validation.
type RegistrationRequest struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Program             string `json:"program"`
	Cohort              string `json:"cohort"`
	Country             string `json:"country"`
	Language            string `json:"language"`
	TopicModule         string `json:"topic_module"`
	LearningPreferences string `json:"learning_preferences"`
	Availability        string `json:"availability"`
	PreferredGroupSize  string `json:"preferred_study_setup"`
	KindOfSupport       string `json:"kind_of_support"`
	ConnectionType      string `json:"connection_type"`
	OpenToGlobalPairing string `json:"open_to_global_pairing"`
}
