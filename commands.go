package main

import (
	"math/rand"
	"strings"
)

type commandHandler func(s *GameState, noun string, consumeTurn *bool)

type commandEntry struct {
	verb    string
	handler commandHandler
}

func splitCommand(cmd string) (verb, noun string) {
	trimmed := strings.TrimSpace(cmd)
	spacePos := strings.Index(trimmed, " ")
	if spacePos >= 0 {
		verb = strings.ToUpper(trimmed[:spacePos])
		noun = strings.TrimSpace(trimmed[spacePos+1:])
	} else {
		verb = strings.ToUpper(trimmed)
		noun = ""
	}
	return
}

// findItem matches by exact name first, then by substring, so "KEY" still
// finds the BRASS KEY.
func findItem(name string, loc int, s *GameState) int {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if upper == "" {
		return 0
	}
	for i := 1; i <= MaxItems; i++ {
		if s.Items[i].Location == loc && s.Items[i].Name == upper {
			return i
		}
	}
	for i := 1; i <= MaxItems; i++ {
		if s.Items[i].Location == loc && strings.Contains(s.Items[i].Name, upper) {
			return i
		}
	}
	return 0
}

func findItemAny(name string, s *GameState) int {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i := 1; i <= MaxItems; i++ {
		if s.Items[i].Name == upper {
			return i
		}
	}
	return 0
}

// findItemNearby prefers the inventory over the current room.
func findItemNearby(name string, s *GameState) int {
	if id := findItem(name, InvLocation, s); id > 0 {
		return id
	}
	return findItem(name, s.CurrentRoom.ID, s)
}

func findDoor(noun string, s *GameState) *Door {
	upper := strings.ToUpper(strings.TrimSpace(noun))
	if upper == "" {
		return nil
	}
	for _, dir := range []string{"N", "S", "E", "W"} {
		if _, door := s.CurrentRoom.Exit(dir); door != nil {
			if door.Name == upper || strings.Contains(door.Name, upper) {
				return door
			}
		}
	}
	return nil
}

func doorInRoomByName(name string, s *GameState) *Door {
	for _, dir := range []string{"N", "S", "E", "W"} {
		if _, door := s.CurrentRoom.Exit(dir); door != nil && door.Name == name {
			return door
		}
	}
	return nil
}

func parseDirection(tok string) string {
	switch strings.ToUpper(strings.TrimSpace(tok)) {
	case "N", "NORTH":
		return "N"
	case "S", "SOUTH":
		return "S"
	case "E", "EAST":
		return "E"
	case "W", "WEST":
		return "W"
	}
	return ""
}

func directionWord(dir string) string {
	switch dir {
	case "N":
		return "NORTH"
	case "S":
		return "SOUTH"
	case "E":
		return "EAST"
	case "W":
		return "WEST"
	}
	return dir
}

func printMovement(s *GameState, direction string) {
	var msg string
	switch rand.Intn(4) {
	case 0:
		msg = "You walk " + direction + "."
	case 1:
		msg = "You pad " + direction + " across the floorboards."
	case 2:
		msg = "You head " + direction + "."
	case 3:
		msg = "You make your way " + direction + "."
	}
	outPrintln(s, "🚶 "+msg)
}

func attemptMove(s *GameState, dir string) {
	newRoom, door := s.CurrentRoom.Exit(dir)
	if newRoom == nil {
		outPrintln(s, "You cannot go that way.")
		return
	}
	if door != nil && door.Locked {
		s.Logger.Debug("exit blocked", "direction", directionWord(dir), "door", door.Name)
		outPrintf(s, "🚪 The %s is locked.\n", door.Name)
		return
	}
	if door != nil {
		outPrintf(s, "🚪 You move through the %s.\n", door.Name)
	} else {
		printMovement(s, directionWord(dir))
	}
	moveTo(s, newRoom)
}

func moveTo(s *GameState, newRoom *Room) {
	s.CurrentRoom = newRoom
	if !s.RoomVisited[newRoom.ID] {
		s.RoomVisited[newRoom.ID] = true
		s.Score += ScoreRoomVisit
	}
	look(s)
}

func updateWorld(s *GameState) {
	s.Turns++
	if monsterID := findItemAny("MONSTER", s); monsterID > 0 {
		loc := s.Items[monsterID].Location
		if loc > 0 && loc != s.CurrentRoom.ID && rand.Intn(100) < 10 {
			outPrintln(s, "From somewhere deeper in the house comes a low, rattling snore.")
		}
	}
}

// revealHidden moves the item hidden behind holder into the current room.
func revealHidden(s *GameState, holderID int) {
	revID := findItemAny(s.Items[holderID].Reveals, s)
	if revID == 0 || s.Items[revID].Location != GoneLocation {
		return
	}
	s.Items[revID].Location = s.CurrentRoom.ID
	outPrintln(s)
	outPrintf(s, "Something was hidden there! You spot %s.\n", s.Items[revID].Description)
	if s.Items[revID].Unlocks != "" && !s.ScoredKeyFound {
		s.ScoredKeyFound = true
		s.Score += ScoreKeyFound
	}
}

func cmdShowHelp(s *GameState, noun string, consumeTurn *bool) {
	outPrintln(s)
	outPrintln(s, "Available Commands:")
	outPrintln(s, "  🚶 MOVE <dir>, N, S, E, W  - Move North, South, East, West")
	outPrintln(s, "  👀 LOOK (L)                - Look around, or LOOK <item>")
	outPrintln(s, "  🔍 EXAMINE (X)             - Look closely at an item")
	outPrintln(s, "  🖐️  GRAB (TAKE, GET)        - Pick up an item")
	outPrintln(s, "  ✋ DROP                    - Leave an item here")
	outPrintln(s, "  🎒 INVENTORY (I)           - Check what you are carrying")
	outPrintln(s, "  ⚙️  USE <item>              - Use an item you can reach")
	outPrintln(s, "  🔓 UNLOCK <door>           - Unlock a door with the right key")
	outPrintln(s, "  💥 DESTROY (BREAK) <item>  - Break something breakable")
	outPrintln(s, "  🏆 SCORE                   - Show current score")
	outPrintln(s, "  🔧 DEBUG                   - Toggle diagnostic output")
	outPrintln(s, "  ❓ HELP (H)                - Show this list")
	outPrintln(s, "  🚪 QUIT (Q)                - Exit")
	outPrintln(s)
	*consumeTurn = false
}

func cmdExamineItem(s *GameState, targetNoun string, consumeTurn *bool) {
	*consumeTurn = false
	noun := strings.TrimSpace(targetNoun)
	if len(noun) >= 3 && strings.EqualFold(noun[:3], "at ") {
		noun = strings.TrimSpace(noun[3:])
	}
	if noun == "" {
		look(s)
		return
	}
	itemID := findItemNearby(noun, s)
	if itemID == 0 {
		if door := findDoor(noun, s); door != nil {
			wrapWriteLn(s, door.Description)
			if door.Locked {
				outPrintln(s, "It is locked.")
			}
			return
		}
		outPrintln(s, "You don't see that here.")
		return
	}
	wrapWriteLn(s, s.Items[itemID].Details)
	if !s.Items[itemID].IsBreakable && s.Items[itemID].Reveals != "" {
		revealHidden(s, itemID)
	}
}

func cmdHandleLook(s *GameState, noun string, consumeTurn *bool) {
	cmdExamineItem(s, noun, consumeTurn)
	*consumeTurn = false
}

func cmdHandleInventory(s *GameState, noun string, consumeTurn *bool) {
	*consumeTurn = false
	carrying := false
	for i := 1; i <= MaxItems; i++ {
		if s.Items[i].Location == InvLocation {
			if !carrying {
				outPrintln(s, "🎒 You are carrying:")
				carrying = true
			}
			outPrintf(s, "  - %s\n", s.Items[i].Description)
		}
	}
	if !carrying {
		outPrintln(s, "🎒 You are carrying nothing.")
	}
}

func cmdHandleScore(s *GameState, noun string, consumeTurn *bool) {
	outPrintf(s, "🏆 Score: %d\n", s.Score)
	*consumeTurn = false
}

func cmdHandleDebug(s *GameState, noun string, consumeTurn *bool) {
	*consumeTurn = false
	setDebug(s, !s.IsDebug)
	if s.IsDebug {
		outPrintln(s, "🔧 Debug mode on.")
		s.Logger.Debug("debug enabled",
			"room_id", s.CurrentRoom.ID,
			"turns", s.Turns,
			"score", s.Score)
	} else {
		outPrintln(s, "🔧 Debug mode off.")
	}
}

func cmdHandleTake(s *GameState, noun string, consumeTurn *bool) {
	if strings.TrimSpace(noun) == "" {
		outPrintln(s, "Take what?")
		*consumeTurn = false
		return
	}
	itemID := findItem(noun, s.CurrentRoom.ID, s)
	if itemID == 0 {
		outPrintln(s, "Not here.")
		return
	}
	if !s.Items[itemID].IsTakeable {
		switch s.Items[itemID].Name {
		case "PAINTING":
			outPrintln(s, "It's bolted to the wall.")
		case "CRATE":
			outPrintln(s, "It's far too heavy to carry.")
		case "BED":
			outPrintln(s, "It's far too big. And occupied.")
		case "MONSTER":
			outPrintln(s, "Absolutely not.")
		default:
			outPrintln(s, "You can't take that.")
		}
		return
	}
	carryCount := 0
	for i := 1; i <= MaxItems; i++ {
		if s.Items[i].Location == InvLocation {
			carryCount++
		}
	}
	if carryCount >= MaxCarry {
		outPrintln(s, "You can't carry any more. Drop something first.")
		return
	}
	s.Items[itemID].Location = InvLocation
	outPrintf(s, "🎒 Taken: %s.\n", s.Items[itemID].Description)
	if !s.ItemScored[itemID] {
		s.ItemScored[itemID] = true
		s.Score += ScoreItemPickup
	}
}

func cmdHandleDrop(s *GameState, noun string, consumeTurn *bool) {
	if strings.TrimSpace(noun) == "" {
		outPrintln(s, "Drop what?")
		*consumeTurn = false
		return
	}
	itemID := findItem(noun, InvLocation, s)
	if itemID == 0 {
		outPrintln(s, "You aren't carrying that.")
		return
	}
	s.Items[itemID].Location = s.CurrentRoom.ID
	outPrintf(s, "✋ Dropped: %s.\n", s.Items[itemID].Description)
}

func unlockDoor(s *GameState, door *Door, keyName string) {
	door.Locked = false
	s.Logger.Debug("door unlocked", "door", door.Name, "key", keyName)
	outPrintf(s, "🔓 You unlock the %s with the %s.\n", door.Name, keyName)
}

func cmdHandleUnlock(s *GameState, noun string, consumeTurn *bool) {
	if strings.TrimSpace(noun) == "" {
		outPrintln(s, "Unlock what?")
		*consumeTurn = false
		return
	}
	door := findDoor(noun, s)
	if door == nil {
		outPrintln(s, "There is no door like that here.")
		return
	}
	if !door.Locked {
		outPrintf(s, "The %s is already unlocked.\n", door.Name)
		return
	}
	keyID := 0
	for i := 1; i <= MaxItems; i++ {
		if s.Items[i].Location == InvLocation && s.Items[i].Unlocks == door.Name {
			keyID = i
			break
		}
	}
	if keyID == 0 {
		s.Logger.Debug("unlock refused", "door", door.Name, "reason", "key not carried")
		outPrintf(s, "The %s stays shut. You need the key that fits it.\n", door.Name)
		return
	}
	unlockDoor(s, door, strings.ToLower(s.Items[keyID].Name))
}

func winGame(s *GameState, itemID int) {
	s.Score += ScoreWin
	s.HasWon = true
	s.IsPlaying = false
	outPrintln(s)
	wrapWriteLn(s, s.Items[itemID].UseText)
	wrapWriteLn(s, "🏆 You found the secret of the house. Your adventure is over.")
}

func cmdHandleUse(s *GameState, noun string, consumeTurn *bool) {
	if strings.TrimSpace(noun) == "" {
		outPrintln(s, "Use what?")
		*consumeTurn = false
		return
	}
	itemID := findItemNearby(noun, s)
	if itemID == 0 {
		outPrintln(s, "You don't see that here.")
		return
	}
	item := &s.Items[itemID]
	lower := strings.ToLower(item.Name)
	if item.IsTakeable && item.Location != InvLocation {
		outPrintf(s, "You need to pick up the %s first.\n", lower)
		return
	}
	if item.IsWinning {
		winGame(s, itemID)
		return
	}
	if item.Unlocks != "" {
		door := doorInRoomByName(item.Unlocks, s)
		if door == nil {
			outPrintf(s, "You can't unlock anything here with the %s.\n", lower)
			return
		}
		if !door.Locked {
			outPrintf(s, "The %s is already unlocked.\n", door.Name)
			return
		}
		unlockDoor(s, door, lower)
		return
	}
	if item.UseText != "" {
		wrapWriteLn(s, item.UseText)
		return
	}
	outPrintf(s, "You can't interact with the %s.\n", lower)
}

func cmdHandleDestroy(s *GameState, noun string, consumeTurn *bool) {
	if strings.TrimSpace(noun) == "" {
		outPrintln(s, "Destroy what?")
		*consumeTurn = false
		return
	}
	itemID := findItemNearby(noun, s)
	if itemID == 0 {
		outPrintln(s, "You don't see that here.")
		return
	}
	item := &s.Items[itemID]
	lower := strings.ToLower(item.Name)
	if !item.IsBreakable {
		outPrintf(s, "You can't break the %s.\n", lower)
		return
	}
	if item.BreakKey != "" && findItem(item.BreakKey, InvLocation, s) == 0 {
		outPrintf(s, "You need the %s to destroy the %s.\n", strings.ToLower(item.BreakKey), lower)
		return
	}
	item.Location = GoneLocation
	switch item.Name {
	case "MONSTER":
		s.Score += ScoreMonsterSlain
	case "CRATE":
		s.Score += ScoreCrateBreak
	}
	if item.Reveals != "" {
		if revID := findItemAny(item.Reveals, s); revID > 0 && s.Items[revID].Location == GoneLocation {
			s.Items[revID].Location = s.CurrentRoom.ID
			if item.BreakKey != "" {
				outPrintf(s, "💥 You destroy the %s with the %s, leaving behind %s.\n",
					lower, strings.ToLower(item.BreakKey), s.Items[revID].Description)
			} else {
				outPrintf(s, "💥 You destroy the %s, leaving behind %s.\n",
					lower, s.Items[revID].Description)
			}
			return
		}
	}
	outPrintf(s, "💥 You destroy the %s.\n", lower)
}

func cmdHandleQuit(s *GameState, noun string, consumeTurn *bool) {
	s.IsPlaying = false
	*consumeTurn = false
}

// provokeVerbs are the actions that can wake the monster when aimed at it
// or at the bed it sleeps in.
var provokeVerbs = map[string]bool{
	"GRAB": true, "TAKE": true, "GET": true, "USE": true,
}

func checkHazards(s *GameState, verb, noun string) bool {
	if !provokeVerbs[verb] {
		return true
	}
	itemID := findItem(noun, s.CurrentRoom.ID, s)
	if itemID == 0 {
		return true
	}
	name := s.Items[itemID].Name
	if name != "MONSTER" && name != "BED" {
		return true
	}
	if findItem("SWORD", InvLocation, s) > 0 {
		// Armed, it only cracks one eye open.
		return true
	}
	outPrintln(s)
	wrapWriteLn(s, "👹 The quilt heaves. The monster wakes with a roar, and you have nothing to fight it with.")
	outPrintln(s)
	wrapWriteLn(s, "💀 Everything goes dark. GAME OVER.")
	s.IsPlaying = false
	return false
}

var commands = []commandEntry{
	{"LOOK", cmdHandleLook},
	{"L", cmdHandleLook},
	{"EXAMINE", cmdExamineItem},
	{"X", cmdExamineItem},
	{"HELP", cmdShowHelp},
	{"?", cmdShowHelp},
	{"H", cmdShowHelp},
	{"INVENTORY", cmdHandleInventory},
	{"I", cmdHandleInventory},
	{"INV", cmdHandleInventory},
	{"GRAB", cmdHandleTake},
	{"TAKE", cmdHandleTake},
	{"GET", cmdHandleTake},
	{"DROP", cmdHandleDrop},
	{"USE", cmdHandleUse},
	{"UNLOCK", cmdHandleUnlock},
	{"DESTROY", cmdHandleDestroy},
	{"BREAK", cmdHandleDestroy},
	{"SCORE", cmdHandleScore},
	{"DEBUG", cmdHandleDebug},
	{"QUIT", cmdHandleQuit},
	{"Q", cmdHandleQuit},
	{"EXIT", cmdHandleQuit},
}

func processCommand(s *GameState, cmd string) {
	verb, noun := splitCommand(cmd)
	if verb == "" {
		return
	}
	consumeTurn := true
	s.Logger.Debug("command parsed", "verb", verb, "noun", noun)

	if !checkHazards(s, verb, noun) {
		return
	}

	if dir := parseDirection(verb); dir != "" {
		attemptMove(s, dir)
	} else if verb == "MOVE" || verb == "GO" {
		if dir := parseDirection(noun); dir != "" {
			attemptMove(s, dir)
		} else {
			outPrintln(s, "You can't move that way.")
		}
	} else {
		handled := false
		for _, entry := range commands {
			if verb == entry.verb {
				entry.handler(s, noun, &consumeTurn)
				handled = true
				break
			}
		}
		if !handled {
			outPrintln(s, "🤷 I don't know how to do that. Type HELP for the list of commands.")
			consumeTurn = false
		}
	}

	if s.IsPlaying && consumeTurn {
		updateWorld(s)
	}
}
