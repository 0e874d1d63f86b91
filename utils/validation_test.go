package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"peerfinder_server/models"
)

func validRequest() models.RegistrationRequest {
	return models.RegistrationRequest{
		Name:           "Amina Yusuf",
		Email:          "amina@example.com",
		Phone:          "+254700123456",
		Program:        "PF",
		ConnectionType: models.ConnectionFind,
	}
}

func TestValidateRegistration_AcceptsValidPayload(t *testing.T) {
	assert.Empty(t, ValidateRegistration(validRequest()))
}

func TestValidateRegistration_FlagsEachProblem(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.RegistrationRequest)
		want   string
	}{
		{"short name", func(r *models.RegistrationRequest) { r.Name = "x" }, "Name must be between 2 and 100 characters"},
		{"bad email", func(r *models.RegistrationRequest) { r.Email = "nope" }, "Invalid email address format"},
		{"bad phone", func(r *models.RegistrationRequest) { r.Phone = "0123" }, "Invalid phone number. Use format +1234567890"},
		{"unknown program", func(r *models.RegistrationRequest) { r.Program = "XY" }, "Invalid program selected"},
		{"unknown connection type", func(r *models.RegistrationRequest) { r.ConnectionType = "befriend" }, "Invalid connection type"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			assert.Contains(t, ValidateRegistration(req), tc.want)
		})
	}
}

func TestValidateRegistration_PhoneWithSpaces(t *testing.T) {
	req := validRequest()
	req.Phone = "254 700 123 456"
	assert.Empty(t, ValidateRegistration(req), "spaces are stripped before the phone check")
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+254700123456", NormalizePhone("254 700 123 456"))
	assert.Equal(t, "+254700123456", NormalizePhone("+254700123456"))
	assert.Equal(t, "+254700123456", NormalizePhone("++254700123456"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "amina@example.com", NormalizeEmail("  Amina@Example.COM "))
}

func TestParseGroupSize(t *testing.T) {
	assert.Equal(t, 3, ParseGroupSize("3"))
	assert.Equal(t, 4, ParseGroupSize(" 4 "))
	assert.Equal(t, models.DefaultGroupSize, ParseGroupSize(""))
	assert.Equal(t, models.DefaultGroupSize, ParseGroupSize("a few"))
	assert.Equal(t, models.DefaultGroupSize, ParseGroupSize("1"), "groups smaller than a pair make no sense")
	assert.Equal(t, models.DefaultGroupSize, ParseGroupSize("50"))
}

func TestParseYesNo(t *testing.T) {
	for _, v := range []string{"Yes", "YES", "yes", "true", "TRUE", "1", "T", "y"} {
		assert.True(t, ParseYesNo(v), "%q should parse as affirmative", v)
	}
	for _, v := range []string{"", "No", "no", "false", "0", "maybe"} {
		assert.False(t, ParseYesNo(v), "%q should parse as negative", v)
	}
}
