package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWorldDefault(t *testing.T) {
	var s GameState
	initState(&s)
	newGameLogger(&s)

	require.NoError(t, loadWorld(&s, ""))

	living := s.RoomRegistry[1]
	dining := s.RoomRegistry[2]
	bedroom := s.RoomRegistry[3]
	require.NotNil(t, living)
	require.NotNil(t, dining)
	require.NotNil(t, bedroom)

	assert.Equal(t, "Living Room", living.Name)
	assert.Same(t, dining, living.South)
	assert.Same(t, living, dining.North)
	assert.Same(t, bedroom, living.East)
	assert.Same(t, living, bedroom.West)
	assert.Same(t, living, s.CurrentRoom)

	require.NotNil(t, living.DoorSouth)
	assert.Equal(t, "OAK DOOR", living.DoorSouth.Name)
	assert.True(t, living.DoorSouth.Locked, "oak door starts locked from the living room side")
	require.NotNil(t, dining.DoorNorth)
	assert.False(t, dining.DoorNorth.Locked, "dining side of the oak door is open")
	require.NotNil(t, living.DoorEast)
	assert.False(t, living.DoorEast.Locked)

	keyID := findItemAny("BRASS KEY", &s)
	require.NotZero(t, keyID)
	assert.Equal(t, GoneLocation, s.Items[keyID].Location)
	assert.Equal(t, "OAK DOOR", s.Items[keyID].Unlocks)
	assert.True(t, s.Items[keyID].IsTakeable)

	monsterID := findItemAny("MONSTER", &s)
	require.NotZero(t, monsterID)
	assert.Equal(t, 3, s.Items[monsterID].Location)
	assert.Equal(t, "SWORD", s.Items[monsterID].BreakKey)
	assert.Equal(t, "GOLD BAR", s.Items[monsterID].Reveals)

	goldID := findItemAny("GOLD BAR", &s)
	require.NotZero(t, goldID)
	assert.True(t, s.Items[goldID].IsWinning)
	assert.Equal(t, GoneLocation, s.Items[goldID].Location)
}

func TestLoadWorldFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.ini")
	world := `[World]
Start=2

[Room1]
Name=Cellar
Description=A damp cellar.
East=2

[Room2]
Name=Hall
Description=A drafty hall.
West=1

[Item1]
Name=LANTERN
Description=a dented lantern
Location=2
IsTakeable=1
`
	require.NoError(t, os.WriteFile(path, []byte(world), 0o644))

	var s GameState
	initState(&s)
	newGameLogger(&s)
	require.NoError(t, loadWorld(&s, path))

	assert.Equal(t, "Hall", s.CurrentRoom.Name)
	assert.Same(t, s.RoomRegistry[2], s.RoomRegistry[1].East)
	assert.NotZero(t, findItem("LANTERN", 2, &s))
}

func TestLoadWorldMissingFile(t *testing.T) {
	var s GameState
	initState(&s)
	newGameLogger(&s)

	err := loadWorld(&s, filepath.Join(t.TempDir(), "nope.ini"))
	assert.Error(t, err)
}

func TestLoadWorldBadItemLocation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stranded.ini")
	world := `[Room1]
Name=Cellar
Description=A damp cellar.

[Item1]
Name=LANTERN
Description=a dented lantern
Location=7
`
	require.NoError(t, os.WriteFile(path, []byte(world), 0o644))

	var s GameState
	initState(&s)
	newGameLogger(&s)
	err := loadWorld(&s, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing room 7")
}

func TestLoadWorldBadDoor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ini")
	world := `[Room1]
Name=Cellar
Description=A damp cellar.

[Door1]
Room=5
Direction=North
Name=PHANTOM DOOR
`
	require.NoError(t, os.WriteFile(path, []byte(world), 0o644))

	var s GameState
	initState(&s)
	newGameLogger(&s)
	assert.Error(t, loadWorld(&s, path))
}
