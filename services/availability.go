package services

import "peerfinder_server/models"

// AvailabilityCompatible reports whether two availability values can study
// together. "Flexible" matches anything, equal values match, an absent
// value never matches. This is the only fuzzy rule in pool filtering;
// every other constraint is exact equality.
func AvailabilityCompatible(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return a == models.AvailabilityFlexible || b == models.AvailabilityFlexible || a == b
}
