package main

import "log/slog"

// stateWriter forwards handler output through outWriter so debug lines land
// on whatever writer the game currently prints to, including the MCP
// capture buffer.
type stateWriter struct {
	s *GameState
}

func (w stateWriter) Write(p []byte) (int, error) {
	return outWriter(w.s).Write(p)
}

// newGameLogger builds the diagnostic logger for the DEBUG verb. It starts
// at Info so debug lines stay hidden until the player toggles the mode.
func newGameLogger(s *GameState) {
	s.LogLevel = new(slog.LevelVar)
	s.LogLevel.Set(slog.LevelInfo)
	opts := &slog.HandlerOptions{
		Level: s.LogLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Timestamps are noise in game output.
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}
	s.Logger = slog.New(slog.NewTextHandler(stateWriter{s: s}, opts))
}

func setDebug(s *GameState, on bool) {
	s.IsDebug = on
	if on {
		s.LogLevel.Set(slog.LevelDebug)
	} else {
		s.LogLevel.Set(slog.LevelInfo)
	}
}
