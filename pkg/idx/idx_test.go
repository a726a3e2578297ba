package idx_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/aussiebroadwan/signup/pkg/idx"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	id := idx.New()

	_, err := ulid.ParseStrict(id.String())
	require.NoError(t, err)
	require.Len(t, id.String(), 26)
}

func TestOrderedByTime(t *testing.T) {
	a := idx.NewAt(time.Unix(1, 0))
	b := idx.NewAt(time.Unix(2, 0))

	require.Less(t, a.String(), b.String())
}

func TestSameMillisecondStaysOrdered(t *testing.T) {
	g := idx.NewGenerator(bytes.NewReader(bytes.Repeat([]byte{0x01}, 64)))
	at := time.UnixMilli(1700000000000)

	first := g.NewAt(at)
	second := g.NewAt(at)

	require.NotEqual(t, first, second)
	require.Less(t, first.String(), second.String())
}

func TestTime(t *testing.T) {
	at := time.UnixMilli(1700000000123).UTC()
	require.Equal(t, at, idx.NewAt(at).Time())

	require.True(t, idx.ID("").Time().IsZero())
	require.True(t, idx.ID("not-a-ulid").Time().IsZero())
}
