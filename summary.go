package main

type GameSummary struct {
	RoomID       int      `json:"room_id" jsonschema:"Current room ID"`
	RoomName     string   `json:"room_name" jsonschema:"Current room name"`
	Turns        int      `json:"turns" jsonschema:"Number of turns taken"`
	Score        int      `json:"score" jsonschema:"Current score"`
	IsPlaying    bool     `json:"is_playing" jsonschema:"Whether the game is still active"`
	HasWon       bool     `json:"has_won" jsonschema:"Whether the winning item has been used"`
	IsDebug      bool     `json:"is_debug" jsonschema:"Whether debug mode is on"`
	MonsterAlive bool     `json:"monster_alive" jsonschema:"Whether the monster is still in play"`
	LockedDoors  []string `json:"locked_doors" jsonschema:"Names of doors still locked in the current room"`
	Inventory    []string `json:"inventory" jsonschema:"Inventory item descriptions"`
}

func SummarizeState(s *GameState) GameSummary {
	summary := GameSummary{
		Turns:     s.Turns,
		Score:     s.Score,
		IsPlaying: s.IsPlaying,
		HasWon:    s.HasWon,
		IsDebug:   s.IsDebug,
	}
	if s.CurrentRoom != nil {
		summary.RoomID = s.CurrentRoom.ID
		summary.RoomName = s.CurrentRoom.Name
		for _, dir := range []string{"N", "S", "E", "W"} {
			if _, door := s.CurrentRoom.Exit(dir); door != nil && door.Locked {
				summary.LockedDoors = append(summary.LockedDoors, door.Name)
			}
		}
	}
	if monsterID := findItemAny("MONSTER", s); monsterID > 0 {
		summary.MonsterAlive = s.Items[monsterID].Location > 0
	}
	for i := 1; i <= MaxItems; i++ {
		if s.Items[i].Location == InvLocation {
			summary.Inventory = append(summary.Inventory, s.Items[i].Description)
		}
	}
	return summary
}
