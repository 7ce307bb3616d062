package checksum

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashKnownValues(t *testing.T) {
	// h("a") = 97, h("ab") = 97*31 + 98 = 3105
	assert.Equal(t, "61", Hash("a"))
	assert.Equal(t, "c21", Hash("ab"))

	// parts are joined with "-" before hashing
	assert.Equal(t, Hash("a-b"), Hash("a", "b"))
}

func TestHashDeterministic(t *testing.T) {
	first := Hash("tkt_123", "evt_1", "guest")
	second := Hash("tkt_123", "evt_1", "guest")
	assert.Equal(t, first, second)
}

func TestHashOrderSensitive(t *testing.T) {
	assert.NotEqual(t, Hash("a", "b"), Hash("b", "a"))
}

func TestHashChangesWithAnyInput(t *testing.T) {
	base := Hash("tkt_123", "evt_1", "guest")
	assert.NotEqual(t, base, Hash("tkt_124", "evt_1", "guest"))
	assert.NotEqual(t, base, Hash("tkt_123", "evt_2", "guest"))
	assert.NotEqual(t, base, Hash("tkt_123", "evt_1", "user@example.com"))
}

func TestHashIsLowercaseHex(t *testing.T) {
	hexRe := regexp.MustCompile(`^[0-9a-f]+$`)
	for _, in := range []string{"", "x", "tkt_999", "проверка"} {
		require.Regexp(t, hexRe, Hash(in))
	}
}

// Adjacent sequential ids must not collide. This is a statistical sanity
// check on the hash quality, not a cryptographic guarantee.
func TestHashAdjacentIDsDistinct(t *testing.T) {
	prev := ""
	for i := 0; i < 1000; i++ {
		cur := Hash(fmt.Sprintf("tkt_%d", i), "evt_1", "guest")
		require.NotEqual(t, prev, cur, "collision between ids %d and %d", i-1, i)
		prev = cur
	}
}
