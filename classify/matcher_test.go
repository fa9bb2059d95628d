package classify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatcher_AnyAndFirst(t *testing.T) {
	req := require.New(t)
	m, err := NewMatcher([]string{"voice call", "video call", "missed voice call"})
	req.NoError(err)

	req.True(m.Any("MISSED VOICE CALL"))
	req.False(m.Any("a call"))

	pos, ok := m.First("video call then voice call")
	req.True(ok)
	req.Equal(0, pos)

	pos, ok = m.First("Missed video call")
	req.True(ok)
	req.Equal(1, pos)

	_, ok = m.First("")
	req.False(ok)

	req.Equal([]string{"voice call", "video call", "missed voice call"}, m.Patterns())
}

func TestMatcher_UTF8(t *testing.T) {
	req := require.New(t)
	m, err := NewMatcher([]string{"été"})
	req.NoError(err)
	req.True(m.Any("Un ÉTÉ avec un badger"))
	req.False(m.Any("Un hiver"))
}

func TestMatcher_EmptyTable(t *testing.T) {
	_, err := NewMatcher([]string{"", ""})
	require.Error(t, err)
}
