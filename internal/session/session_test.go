package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")

	s, err := NewStore(path)
	require.NoError(t, err)

	_, ok := s.Token()
	require.False(t, ok, "fresh store starts logged out")

	require.NoError(t, s.Save("abc.def.ghi"))

	// A second store reads the persisted token back.
	s2, err := NewStore(path)
	require.NoError(t, err)
	token, ok := s2.Token()
	require.True(t, ok)
	require.Equal(t, "abc.def.ghi", token)
}

func TestStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	s, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Save("abc"))
	require.NoError(t, s.Clear())

	_, ok := s.Token()
	require.False(t, ok)

	// Clearing twice is fine.
	require.NoError(t, s.Clear())

	s2, err := NewStore(path)
	require.NoError(t, err)
	_, ok = s2.Token()
	require.False(t, ok)
}
