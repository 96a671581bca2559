package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.json")

	s, err := LoadSession(path)
	require.NoError(t, err)
	assert.False(t, s.Authenticated())

	s.Credentials = Credentials{UserID: "alice", Password: "secret"}
	s.User = Participant{ID: "alice", Name: "Alice"}
	require.NoError(t, s.Save())

	restored, err := LoadSession(path)
	require.NoError(t, err)
	assert.True(t, restored.Authenticated())
	assert.Equal(t, "alice", restored.UserID)
	assert.Equal(t, "Alice", restored.User.Name)
}

func TestSession_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := LoadSession(path)
	require.NoError(t, err)
	s.Credentials = Credentials{UserID: "alice", Password: "secret"}
	require.NoError(t, s.Save())

	require.NoError(t, s.Clear())
	assert.False(t, s.Authenticated())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing twice tolerates the missing file.
	require.NoError(t, s.Clear())
}

func TestSession_MemoryOnly(t *testing.T) {
	s, err := LoadSession("")
	require.NoError(t, err)

	s.Credentials = Credentials{UserID: "alice", Password: "secret"}
	require.NoError(t, s.Save())
	require.NoError(t, s.Clear())
}
