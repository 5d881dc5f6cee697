package main

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// headlessReader is created once so buffered data isn't lost between calls.
var headlessReader *bufio.Reader

func wrapWriteLn(s *GameState, text string) {
	const maxWidth = 79
	for utf8.RuneCountInString(text) > maxWidth {
		// Find last space at or before maxWidth
		runes := []rune(text)
		spacePos := maxWidth
		for spacePos > 0 && runes[spacePos] != ' ' {
			spacePos--
		}
		if spacePos == 0 {
			spacePos = maxWidth
		}
		outPrintln(s, string(runes[:spacePos]))
		text = strings.TrimLeft(string(runes[spacePos:]), " ")
	}
	outPrintln(s, text)
}

func exitLine(s *GameState) string {
	exits := ""
	for _, dir := range []struct {
		letter, word string
	}{{"N", "NORTH"}, {"S", "SOUTH"}, {"E", "EAST"}, {"W", "WEST"}} {
		room, door := s.CurrentRoom.Exit(dir.letter)
		if room == nil {
			continue
		}
		if door != nil && door.Locked {
			exits += dir.word + " (" + door.Name + ", locked), "
		} else if door != nil {
			exits += dir.word + " (" + door.Name + "), "
		} else {
			exits += dir.word + ", "
		}
	}
	return strings.TrimSuffix(exits, ", ")
}

func look(s *GameState) {
	outPrintln(s)
	outPrintf(s, "📍 === %s ===\n", s.CurrentRoom.Name)
	wrapWriteLn(s, s.CurrentRoom.Description)

	if exits := exitLine(s); exits != "" {
		outPrintf(s, "Exits: [%s]\n", exits)
	}

	if monsterID := findItem("MONSTER", s.CurrentRoom.ID, s); monsterID > 0 {
		outPrintln(s)
		outPrintln(s, "!!! Something large is snoring under the quilt !!!")
		outPrintln(s, "It would be very unwise to disturb it bare-handed.")
	}

	foundItems := false
	for i := 1; i <= MaxItems; i++ {
		if s.Items[i].Location == s.CurrentRoom.ID {
			if !foundItems {
				outPrintln(s)
				outPrintln(s, "📦 You see the following here:")
				foundItems = true
			}
			outPrintf(s, "  - %s\n", s.Items[i].Description)
		}
	}
	outPrintln(s)

	s.Logger.Debug("room state",
		"room_id", s.CurrentRoom.ID,
		"room", s.CurrentRoom.Name,
		"exits", exitLine(s))
}

func customReadLn(s *GameState, prompt string) string {
	if s.IsHeadless {
		if headlessReader == nil {
			headlessReader = bufio.NewReader(os.Stdin)
		}
		outPrint(s, prompt)
		line, err := headlessReader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if err == io.EOF {
			return "QUIT"
		}
		return line
	}

	outPrint(s, prompt)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		// Fallback to simple readline
		reader := bufio.NewReader(os.Stdin)
		line, _ := reader.ReadString('\n')
		return strings.TrimRight(line, "\r\n")
	}

	var lineRunes []rune
	histIdx := s.HistoryCount

	for {
		buf := make([]byte, 4)
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			term.Restore(fd, oldState)
			outPrint(s, "\r\n")
			return string(lineRunes)
		}
		b := buf[0]

		switch {
		case b == '\r' || b == '\n':
			term.Restore(fd, oldState)
			outPrint(s, "\r\n")
			line := string(lineRunes)
			if line != "" {
				prev := ""
				if s.HistoryCount > 0 {
					prev = s.History[(s.HistoryCount-1)%MaxHistory]
				}
				if line != prev {
					s.History[s.HistoryCount%MaxHistory] = line
					s.HistoryCount++
				}
			}
			return line

		case b == '\x04': // Ctrl-D
			term.Restore(fd, oldState)
			outPrint(s, "QUIT\r\n")
			return "QUIT"

		case b == '\x7f' || b == '\x08': // Backspace / DEL
			if len(lineRunes) > 0 {
				lineRunes = lineRunes[:len(lineRunes)-1]
				outPrint(s, "\b \b")
			}

		case b == '\x1b': // ESC — read 2 more bytes for arrow keys
			buf2 := make([]byte, 2)
			n2, _ := os.Stdin.Read(buf2)
			if n2 == 2 && buf2[0] == '[' {
				switch buf2[1] {
				case 'A': // Up arrow
					if histIdx > 0 {
						for range lineRunes {
							outPrint(s, "\b \b")
						}
						histIdx--
						lineRunes = []rune(s.History[histIdx%MaxHistory])
						outPrint(s, string(lineRunes))
					}
				case 'B': // Down arrow
					if histIdx < s.HistoryCount {
						for range lineRunes {
							outPrint(s, "\b \b")
						}
						histIdx++
						if histIdx < s.HistoryCount {
							lineRunes = []rune(s.History[histIdx%MaxHistory])
						} else {
							lineRunes = nil
						}
						outPrint(s, string(lineRunes))
					}
				}
			}

		default:
			if b >= ' ' {
				r, _ := utf8.DecodeRune(buf[:n])
				if r != utf8.RuneError {
					lineRunes = append(lineRunes, r)
					outPrint(s, string(r))
				}
			}
		}
	}
}
