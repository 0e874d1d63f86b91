package utils

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"peerfinder_server/models"
)

// participantColumns is the canonical column order of the dataset object.
// Kept stable so exports stay compatible with spreadsheets built on the
// legacy file.
var participantColumns = []string{
	"id", "name", "phone", "email", "country", "language", "program", "cohort",
	"topic_module", "learning_preferences", "availability",
	"preferred_study_setup", "kind_of_support", "connection_type",
	"open_to_global_pairing", "timestamp", "matched", "group_id",
	"unpair_reason", "matched_timestamp", "match_attempted",
}

var feedbackColumns = []string{"id", "rating", "comment", "timestamp"}

// EncodeParticipantsCSV renders the dataset in canonical column order,
// preserving row (insertion) order
func EncodeParticipantsCSV(participants []models.Participant) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(participantColumns); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, p := range participants {
		record := []string{
			p.ID, p.Name, p.Phone, p.Email, p.Country, p.Language, p.Program,
			p.Cohort, p.TopicModule, p.LearningPreferences, p.Availability,
			strconv.Itoa(p.PreferredGroupSize), p.KindOfSupport,
			p.ConnectionType, encodeYesNo(p.OpenToGlobalPairing),
			p.RegisteredAt, encodeBool(p.Matched), p.GroupID, p.UnpairReason,
			p.MatchedTimestamp, encodeBool(p.MatchAttempted),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeParticipantsCSV parses a dataset object. Columns are located by
// header name, so files missing newer columns still decode with zero
// values (schema-complete dataset contract).
func DecodeParticipantsCSV(data []byte) ([]models.Participant, error) {
	if len(data) == 0 {
		return []models.Participant{}, nil
	}
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse participants CSV: %w", err)
	}
	if len(rows) == 0 {
		return []models.Participant{}, nil
	}

	col := map[string]int{}
	for i, name := range rows[0] {
		col[name] = i
	}
	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	participants := make([]models.Participant, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		p := models.Participant{
			ID:                  field(row, "id"),
			Name:                field(row, "name"),
			Phone:               normalizeStoredPhone(field(row, "phone")),
			Email:               NormalizeEmail(field(row, "email")),
			Country:             field(row, "country"),
			Language:            field(row, "language"),
			Program:             field(row, "program"),
			Cohort:              field(row, "cohort"),
			TopicModule:         field(row, "topic_module"),
			LearningPreferences: field(row, "learning_preferences"),
			Availability:        field(row, "availability"),
			PreferredGroupSize:  parseStoredGroupSize(field(row, "preferred_study_setup")),
			KindOfSupport:       field(row, "kind_of_support"),
			ConnectionType:      field(row, "connection_type"),
			OpenToGlobalPairing: ParseYesNo(field(row, "open_to_global_pairing")),
			RegisteredAt:        field(row, "timestamp"),
			Matched:             ParseYesNo(field(row, "matched")),
			GroupID:             field(row, "group_id"),
			UnpairReason:        field(row, "unpair_reason"),
			MatchedTimestamp:    field(row, "matched_timestamp"),
			MatchAttempted:      ParseYesNo(field(row, "match_attempted")),
		}
		participants = append(participants, p)
	}
	return participants, nil
}

// EncodeFeedbackCSV renders feedback entries as CSV
func EncodeFeedbackCSV(entries []models.FeedbackEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(feedbackColumns); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, e := range entries {
		record := []string{e.ID, strconv.Itoa(e.Rating), e.Comment, e.Timestamp}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeFeedbackCSV parses a feedback object
func DecodeFeedbackCSV(data []byte) ([]models.FeedbackEntry, error) {
	if len(data) == 0 {
		return []models.FeedbackEntry{}, nil
	}
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse feedback CSV: %w", err)
	}
	if len(rows) == 0 {
		return []models.FeedbackEntry{}, nil
	}
	col := map[string]int{}
	for i, name := range rows[0] {
		col[name] = i
	}
	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}
	entries := make([]models.FeedbackEntry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		rating, _ := strconv.Atoi(field(row, "rating"))
		entries = append(entries, models.FeedbackEntry{
			ID:        field(row, "id"),
			Rating:    rating,
			Comment:   field(row, "comment"),
			Timestamp: field(row, "timestamp"),
		})
	}
	return entries, nil
}

// normalizeStoredPhone brings legacy rows (spaces, missing plus) onto the
// same form the registration boundary writes, so duplicate-phone checks
// compare like with like. Absent phones stay absent.
func normalizeStoredPhone(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	return NormalizePhone(raw)
}

// parseStoredGroupSize keeps whatever numeric size the row carries, even
// out of range; EffectiveGroupSize applies the default at comparison time.
// Non-numeric values fall back to the default pair size.
func parseStoredGroupSize(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return models.DefaultGroupSize
	}
	return n
}

func encodeBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func encodeYesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
