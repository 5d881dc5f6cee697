package main

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

//go:embed data/world.ini
var defaultWorld []byte

// loadWorld reads the room, door, and item definitions from an INI file.
// An empty path selects the world compiled into the binary.
func loadWorld(s *GameState, path string) error {
	var (
		cfg *ini.File
		err error
	)
	if path == "" {
		cfg, err = ini.Load(defaultWorld)
	} else {
		cfg, err = ini.Load(path)
	}
	if err != nil {
		return fmt.Errorf("loading world: %w", err)
	}

	// First pass: create rooms
	for i := 1; i <= MaxRooms; i++ {
		sectionName := fmt.Sprintf("Room%d", i)
		if !cfg.HasSection(sectionName) {
			continue
		}
		sec := cfg.Section(sectionName)
		s.RoomRegistry[i] = &Room{
			ID:          i,
			Name:        sec.Key("Name").String(),
			Description: sec.Key("Description").String(),
		}
	}

	// Second pass: link exits
	for i := 1; i <= MaxRooms; i++ {
		if s.RoomRegistry[i] == nil {
			continue
		}
		sec := cfg.Section(fmt.Sprintf("Room%d", i))

		n := sec.Key("North").MustInt(0)
		so := sec.Key("South").MustInt(0)
		e := sec.Key("East").MustInt(0)
		w := sec.Key("West").MustInt(0)

		if n > 0 && n <= MaxRooms {
			s.RoomRegistry[i].North = s.RoomRegistry[n]
		}
		if so > 0 && so <= MaxRooms {
			s.RoomRegistry[i].South = s.RoomRegistry[so]
		}
		if e > 0 && e <= MaxRooms {
			s.RoomRegistry[i].East = s.RoomRegistry[e]
		}
		if w > 0 && w <= MaxRooms {
			s.RoomRegistry[i].West = s.RoomRegistry[w]
		}
	}

	// Attach doors to room exits
	for i := 1; i <= MaxRooms*4; i++ {
		sectionName := fmt.Sprintf("Door%d", i)
		if !cfg.HasSection(sectionName) {
			continue
		}
		sec := cfg.Section(sectionName)
		roomID := sec.Key("Room").MustInt(0)
		if roomID < 1 || roomID > MaxRooms || s.RoomRegistry[roomID] == nil {
			return fmt.Errorf("loading world: %s references missing room %d", sectionName, roomID)
		}
		d := &Door{
			Name:        strings.ToUpper(sec.Key("Name").String()),
			Description: sec.Key("Description").String(),
			Locked:      sec.Key("Locked").MustInt(0) == 1,
		}
		room := s.RoomRegistry[roomID]
		switch strings.ToUpper(sec.Key("Direction").String()) {
		case "NORTH", "N":
			room.DoorNorth = d
		case "SOUTH", "S":
			room.DoorSouth = d
		case "EAST", "E":
			room.DoorEast = d
		case "WEST", "W":
			room.DoorWest = d
		default:
			return fmt.Errorf("loading world: %s has invalid direction %q", sectionName, sec.Key("Direction").String())
		}
	}

	// Load items
	for i := 1; i <= MaxItems; i++ {
		sectionName := fmt.Sprintf("Item%d", i)
		if !cfg.HasSection(sectionName) {
			continue
		}
		sec := cfg.Section(sectionName)
		s.Items[i].Name = strings.ToUpper(sec.Key("Name").String())
		s.Items[i].Description = sec.Key("Description").String()
		s.Items[i].Details = sec.Key("Details").String()
		loc := sec.Key("Location").MustInt(0)
		if loc != GoneLocation && loc != InvLocation &&
			(loc < 1 || loc > MaxRooms || s.RoomRegistry[loc] == nil) {
			return fmt.Errorf("loading world: %s placed in missing room %d", sectionName, loc)
		}
		s.Items[i].Location = loc
		s.Items[i].IsTakeable = sec.Key("IsTakeable").MustInt(0) == 1
		s.Items[i].IsBreakable = sec.Key("IsBreakable").MustInt(0) == 1
		s.Items[i].BreakKey = strings.ToUpper(sec.Key("BreakKey").String())
		s.Items[i].Reveals = strings.ToUpper(sec.Key("Reveals").String())
		s.Items[i].Unlocks = strings.ToUpper(sec.Key("Unlocks").String())
		s.Items[i].UseText = sec.Key("UseText").String()
		s.Items[i].IsWinning = sec.Key("IsWinning").MustInt(0) == 1
	}

	start := cfg.Section("World").Key("Start").MustInt(StartRoomID)
	if start < 1 || start > MaxRooms || s.RoomRegistry[start] == nil {
		return fmt.Errorf("loading world: start room %d does not exist", start)
	}
	s.CurrentRoom = s.RoomRegistry[start]
	return nil
}
