package services

import "peerfinder_server/models"

// BuildPool returns the candidates eligible to join the requester's group,
// in dataset (insertion) order. This is a first-fit policy: the pool is
// not ranked or scored, so no stable/optimal matching is guaranteed and no
// attempt is made to maximize total matches.
func BuildPool(dataset []models.Participant, requester models.Participant) []models.Participant {
	var pool []models.Participant
	for _, candidate := range dataset {
		if candidate.Matched || candidate.ID == requester.ID || candidate.Program != requester.Program {
			continue
		}
		switch requester.ConnectionType {
		case models.ConnectionFind:
			if candidate.ConnectionType != models.ConnectionFind {
				continue
			}
			if candidate.EffectiveGroupSize() != requester.EffectiveGroupSize() {
				continue
			}
		case models.ConnectionOffer, models.ConnectionNeed:
			if candidate.ConnectionType != OppositeConnectionType(requester.ConnectionType) {
				continue
			}
		default:
			continue
		}
		if !localityCompatible(candidate, requester) {
			continue
		}
		pool = append(pool, candidate)
	}
	return pool
}

// BuildRelaxedPool returns candidates for administrative forced pairing:
// program and group size only, all other compatibility constraints are
// bypassed.
func BuildRelaxedPool(dataset []models.Participant, requester models.Participant) []models.Participant {
	var pool []models.Participant
	for _, candidate := range dataset {
		if candidate.Matched || candidate.ID == requester.ID || candidate.Program != requester.Program {
			continue
		}
		if candidate.EffectiveGroupSize() != requester.EffectiveGroupSize() {
			continue
		}
		pool = append(pool, candidate)
	}
	return pool
}

// OppositeConnectionType maps offer to need and need to offer
func OppositeConnectionType(ct string) string {
	switch ct {
	case models.ConnectionOffer:
		return models.ConnectionNeed
	case models.ConnectionNeed:
		return models.ConnectionOffer
	}
	return ""
}

// localityCompatible applies the requester's global-pairing choice: when
// opted in, only the cohort must match; otherwise cohort, country, topic
// and availability all constrain the pool.
func localityCompatible(candidate, requester models.Participant) bool {
	if candidate.Cohort != requester.Cohort {
		return false
	}
	if requester.OpenToGlobalPairing {
		return true
	}
	return candidate.Country == requester.Country &&
		candidate.TopicModule == requester.TopicModule &&
		AvailabilityCompatible(candidate.Availability, requester.Availability)
}
