package utils

import (
	"regexp"
	"strconv"
	"strings"

	"peerfinder_server/models"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

// ValidateRegistration checks a registration payload and returns every
// problem found, or an empty slice when the payload is acceptable
func ValidateRegistration(req models.RegistrationRequest) []string {
	var errs []string

	name := strings.TrimSpace(req.Name)
	if len(name) < 2 || len(req.Name) > 100 {
		errs = append(errs, "Name must be between 2 and 100 characters")
	}

	if !emailPattern.MatchString(req.Email) {
		errs = append(errs, "Invalid email address format")
	}

	phone := strings.ReplaceAll(req.Phone, " ", "")
	if !phonePattern.MatchString(phone) {
		errs = append(errs, "Invalid phone number. Use format +1234567890")
	}

	if !models.IsValidProgram(req.Program) {
		errs = append(errs, "Invalid program selected")
	}

	if !models.IsValidConnectionType(req.ConnectionType) {
		errs = append(errs, "Invalid connection type")
	}

	return errs
}

// NormalizePhone strips spaces and forces a single leading plus sign
func NormalizePhone(phone string) string {
	phone = strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
	return "+" + strings.TrimLeft(phone, "+")
}

// NormalizeEmail lowercases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ParseGroupSize converts the free-text group size collected at
// registration into a bounded int. Empty, non-numeric, and out-of-range
// values fall back to the default pair size.
func ParseGroupSize(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < models.MinGroupSize || n > models.MaxGroupSize {
		return models.DefaultGroupSize
	}
	return n
}

// ParseYesNo interprets the loose affirmative values the registration form
// and legacy CSV rows use for flags
func ParseYesNo(raw string) bool {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "YES", "TRUE", "1", "T", "Y":
		return true
	}
	return false
}
