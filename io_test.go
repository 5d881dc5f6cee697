package main

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestWrapWriteLn(t *testing.T) {
	var buf bytes.Buffer
	s := &GameState{Out: &buf}

	long := strings.Repeat("the quilt rises and falls ", 10)
	wrapWriteLn(s, long)

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, utf8.RuneCountInString(line), 79, "line %q exceeds wrap width", line)
	}
	joined := strings.ReplaceAll(buf.String(), "\n", " ")
	assert.Contains(t, joined, "the quilt rises and falls")
}

func TestExitLineShowsDoorState(t *testing.T) {
	s, _ := newTestGame(t)

	exits := exitLine(s)

	assert.Contains(t, exits, "SOUTH (OAK DOOR, locked)")
	assert.Contains(t, exits, "EAST (METAL DOOR)")
	assert.NotContains(t, exits, "NORTH")
}

func TestLookDescribesRoomAndItems(t *testing.T) {
	s, buf := newTestGame(t)
	buf.Reset()

	look(s)

	out := buf.String()
	assert.Contains(t, out, "Living Room")
	assert.Contains(t, out, "a crooked painting")
	assert.Contains(t, out, "Exits: [")
}

func TestLookWarnsAboutMonster(t *testing.T) {
	s, buf := newTestGame(t)
	run(s, "e")
	buf.Reset()

	look(s)

	assert.Contains(t, buf.String(), "snoring under the quilt")
}
