package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peerfinder_server/models"
)

func TestSelectPeers_FindTakesStablePrefix(t *testing.T) {
	requester := makeFind("a")
	requester.PreferredGroupSize = 3
	pool := []models.Participant{makeFind("b"), makeFind("c"), makeFind("d")}

	peers := SelectPeers(pool, requester)
	require.Len(t, peers, 2)
	assert.Equal(t, "b", peers[0].ID)
	assert.Equal(t, "c", peers[1].ID)
}

func TestSelectPeers_FindFailsOnShortPool(t *testing.T) {
	requester := makeFind("a")
	requester.PreferredGroupSize = 3
	pool := []models.Participant{makeFind("b")}

	assert.Nil(t, SelectPeers(pool, requester))
}

func TestSelectPeers_OfferNeedTakesFirstEntry(t *testing.T) {
	offer := makeOffer("a")
	pool := []models.Participant{makeNeed("b"), makeNeed("c")}

	peers := SelectPeers(pool, offer)
	require.Len(t, peers, 1, "pair size is always 2 for offer/need")
	assert.Equal(t, "b", peers[0].ID)

	assert.Nil(t, SelectPeers(nil, offer))
}

func TestSelectRandomPeers_SeededAndWithoutReplacement(t *testing.T) {
	pool := []models.Participant{makeFind("b"), makeFind("c"), makeFind("d"), makeFind("e")}

	first := SelectRandomPeers(pool, 3, rand.New(rand.NewSource(42)))
	second := SelectRandomPeers(pool, 3, rand.New(rand.NewSource(42)))
	require.Len(t, first, 3)
	assert.Equal(t, poolIDs(first), poolIDs(second), "same seed must give the same selection")

	seen := map[string]bool{}
	for _, p := range first {
		assert.False(t, seen[p.ID], "selection must be without replacement")
		seen[p.ID] = true
	}
}

func TestSelectRandomPeers_InsufficientPool(t *testing.T) {
	pool := []models.Participant{makeFind("b")}
	assert.Nil(t, SelectRandomPeers(pool, 2, rand.New(rand.NewSource(1))))
	assert.Nil(t, SelectRandomPeers(pool, 0, rand.New(rand.NewSource(1))))
}
