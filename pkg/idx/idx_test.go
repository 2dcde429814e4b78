package idx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/rollcall/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.NotEmpty(t, id.String())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
	require.False(t, id.IsZero())
	require.True(t, idx.Valid(id.String()))
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "   ", "not-a-ulid", "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3Z"} {
		_, err := idx.Parse(s)
		require.ErrorIs(t, err, idx.ErrInvalid, "input %q", s)
	}
}

func TestOrdering(t *testing.T) {
	a := idx.NewAt(time.Unix(1, 0).UTC())
	b := idx.NewAt(time.Unix(2, 0).UTC())

	require.Equal(t, -1, idx.Compare(a, b))
	require.Equal(t, 1, idx.Compare(b, a))
	require.Equal(t, 0, idx.Compare(a, a))
}

// Audit records appended within the same millisecond must still sort in
// insertion order.
func TestMonotonicWithinMillisecond(t *testing.T) {
	at := time.Unix(1700000000, 0).UTC()
	prev := idx.NewAt(at)
	for range 100 {
		next := idx.NewAt(at)
		require.Equal(t, -1, idx.Compare(prev, next))
		prev = next
	}
}

func TestTimeExtraction(t *testing.T) {
	tm := time.Unix(1700000000, 0).UTC()
	id := idx.NewAt(tm)
	require.WithinDuration(t, tm, id.Time(), time.Millisecond)
}

// mustParse is for hard-coded IDs in tests.
func mustParse(t *testing.T, s string) idx.ID {
	t.Helper()
	id, err := idx.Parse(s)
	require.NoError(t, err)
	return id
}

func TestParseFixedIDs(t *testing.T) {
	id := mustParse(t, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV")
	require.Equal(t, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", id.String())
	require.False(t, id.Time().IsZero())

	_, err := idx.Parse("nope")
	require.ErrorIs(t, err, idx.ErrInvalid)
}
