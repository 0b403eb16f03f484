package core

import (
	"log/slog"
)

// LevelTrace sits between info and warn. Phase boundaries are logged at this
// level.
const LevelTrace slog.Level = slog.LevelInfo + 1
