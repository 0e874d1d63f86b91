package models

// Connection intents a participant can register with
const (
	ConnectionFind  = "find"
	ConnectionOffer = "offer"
	ConnectionNeed  = "need"
)

// Group size bounds for "find" study groups
const (
	DefaultGroupSize = 2
	MinGroupSize     = 2
	MaxGroupSize     = 10
)

// AvailabilityFlexible is the sentinel availability value that matches any other
const AvailabilityFlexible = "Flexible"

// Programs lists the programs participants can register under
var Programs = []string{"VA", "AiCE", "PF"}

// IsValidProgram checks a program code against the known program list
func IsValidProgram(program string) bool {
	for _, p := range Programs {
		if p == program {
			return true
		}
	}
	return false
}

// IsValidConnectionType checks a connection intent value
func IsValidConnectionType(ct string) bool {
	return ct == ConnectionFind || ct == ConnectionOffer || ct == ConnectionNeed
}
