package main

import (
	"io"
	"math/rand"
	"time"
)

func NewGame(seed *int64, worldPath string, out io.Writer) (*GameState, error) {
	var s GameState
	initState(&s)
	if out != nil {
		s.Out = out
	}
	newGameLogger(&s)
	if err := loadWorld(&s, worldPath); err != nil {
		return nil, err
	}
	if seed != nil {
		rand.Seed(*seed) //nolint:staticcheck
	} else {
		rand.Seed(time.Now().UnixNano()) //nolint:staticcheck
	}
	s.RoomVisited[s.CurrentRoom.ID] = true
	s.IsPlaying = true

	outPrintln(&s, "Welcome to Hollow House!")
	wrapWriteLn(&s, "Type commands at the prompt to move around, handle what you find, and, with luck, uncover the secret gold bar.")
	outPrintln(&s, "You should start by looking around the room you're in.")
	look(&s)
	return &s, nil
}
