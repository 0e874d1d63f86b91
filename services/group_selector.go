package services

import (
	"math/rand"

	"peerfinder_server/models"
)

// SelectPeers picks the members that complete the requester's group from a
// filtered pool, or nil when the pool cannot complete one. "find" takes
// the first size-1 entries (stable prefix, no shuffling); offer/need pairs
// take the first entry.
func SelectPeers(pool []models.Participant, requester models.Participant) []models.Participant {
	switch requester.ConnectionType {
	case models.ConnectionFind:
		needed := requester.EffectiveGroupSize() - 1
		if len(pool) < needed {
			return nil
		}
		return pool[:needed]
	case models.ConnectionOffer, models.ConnectionNeed:
		if len(pool) < 1 {
			return nil
		}
		return pool[:1]
	}
	return nil
}

// SelectRandomPeers picks needed members uniformly without replacement,
// for administrative forced pairing. The random source is injected so
// forced pairs are reproducible in tests.
func SelectRandomPeers(pool []models.Participant, needed int, rng *rand.Rand) []models.Participant {
	if needed < 1 || len(pool) < needed {
		return nil
	}
	peers := make([]models.Participant, 0, needed)
	for _, i := range rng.Perm(len(pool))[:needed] {
		peers = append(peers, pool[i])
	}
	return peers
}
