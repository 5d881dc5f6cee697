package main

import (
	"io"
	"log/slog"
)

type GameState struct {
	RoomRegistry [MaxRooms + 1]*Room
	Items        [MaxItems + 1]Item
	CurrentRoom  *Room

	IsPlaying  bool
	HasWon     bool
	IsDebug    bool
	IsHeadless bool

	Turns int
	Score int

	RoomVisited    [MaxRooms + 1]bool
	ItemScored     [MaxItems + 1]bool
	ScoredKeyFound bool

	History      [MaxHistory + 1]string
	HistoryCount int

	Out      io.Writer
	Logger   *slog.Logger
	LogLevel *slog.LevelVar
}

func initState(s *GameState) {
	for i := 1; i <= MaxRooms; i++ {
		s.RoomRegistry[i] = nil
		s.RoomVisited[i] = false
	}
	for i := 1; i <= MaxItems; i++ {
		s.Items[i] = Item{}
		s.ItemScored[i] = false
	}
	s.CurrentRoom = nil
	s.IsPlaying = true
	s.HasWon = false
	s.IsDebug = false
	s.Turns = 0
	s.Score = 0
	s.ScoredKeyFound = false
	for i := 0; i <= MaxHistory; i++ {
		s.History[i] = ""
	}
	s.HistoryCount = 0
}
