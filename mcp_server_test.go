package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteCommand(t *testing.T) {
	s, _ := newTestGame(t)

	output, summary := ExecuteCommand(s, "look")

	assert.Contains(t, output, "Living Room")
	assert.Equal(t, 1, summary.RoomID)
	assert.True(t, summary.IsPlaying)
	assert.True(t, summary.MonsterAlive)
	assert.Contains(t, summary.LockedDoors, "OAK DOOR")
}

func TestExecuteCommandEmptyLooks(t *testing.T) {
	s, _ := newTestGame(t)

	output, _ := ExecuteCommand(s, "   ")

	assert.Contains(t, output, "Living Room")
}

func TestExecuteCommandRestoresWriter(t *testing.T) {
	s, buf := newTestGame(t)
	buf.Reset()

	_, _ = ExecuteCommand(s, "help")
	assert.Empty(t, buf.String(), "captured output must not leak to the game writer")

	outPrintln(s, "back on the main writer")
	assert.Contains(t, buf.String(), "back on the main writer")
}

func TestHandleCommandReset(t *testing.T) {
	seed := int64(1)
	server, err := NewMCPServer(&seed, "")
	require.NoError(t, err)

	_, out, err := server.HandleCommand(context.Background(), nil, &CommandInput{Command: "e"})
	require.NoError(t, err)
	assert.Equal(t, 3, out.State.RoomID)

	_, out, err = server.HandleCommand(context.Background(), nil, &CommandInput{Reset: true})
	require.NoError(t, err)
	assert.Equal(t, 1, out.State.RoomID, "reset starts a fresh session")
	assert.Zero(t, out.State.Turns)
	assert.Contains(t, out.Output, "Welcome to Hollow House!")
}

func TestHandleCommandNilInput(t *testing.T) {
	seed := int64(1)
	server, err := NewMCPServer(&seed, "")
	require.NoError(t, err)

	_, out, err := server.HandleCommand(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, out.State.RoomID)
}
