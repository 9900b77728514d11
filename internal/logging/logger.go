package logging

import (
	"log/slog"
	"os"
)

// Setup points the default slog logger at a JSON handler on stdout. Once
// the database is up, main swaps in a MultiHandler that also persists
// errors through PGHandler.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
