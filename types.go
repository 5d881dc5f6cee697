package main

const (
	MaxRooms     = 12
	MaxItems     = 16
	InvLocation  = -1
	GoneLocation = 0
	MaxHistory   = 10
	MaxCarry     = 3

	ScoreRoomVisit    = 5
	ScoreItemPickup   = 3
	ScoreKeyFound     = 5
	ScoreCrateBreak   = 10
	ScoreMonsterSlain = 15
	ScoreWin          = 25

	StartRoomID = 1
)

// Door gates one direction of one room. The matching door on the far side
// is a separate object, so a door can be locked from one side only.
type Door struct {
	Name        string
	Description string
	Locked      bool
}

type Room struct {
	ID          int
	Name        string
	Description string
	North       *Room
	South       *Room
	East        *Room
	West        *Room
	DoorNorth   *Door
	DoorSouth   *Door
	DoorEast    *Door
	DoorWest    *Door
}

// Exit returns the adjacent room and the door gating it for a single-letter
// direction (N, S, E, W). Both may be nil.
func (r *Room) Exit(dir string) (*Room, *Door) {
	switch dir {
	case "N":
		return r.North, r.DoorNorth
	case "S":
		return r.South, r.DoorSouth
	case "E":
		return r.East, r.DoorEast
	case "W":
		return r.West, r.DoorWest
	}
	return nil, nil
}

// Item.Location holds a room ID, InvLocation for the inventory, or
// GoneLocation for items that are out of play or not yet revealed.
type Item struct {
	Name        string
	Description string
	Details     string
	Location    int
	IsTakeable  bool
	IsBreakable bool
	BreakKey    string // item required in inventory to destroy this one
	Reveals     string // item placed in the room when this one is destroyed (or examined, for fixtures)
	Unlocks     string // door this item opens when used
	UseText     string
	IsWinning   bool
}
