package testutil

import (
	"io"
	"log/slog"

	"github.com/BrahmVanH/uw-pantry-service/internal/logger"
)

// MakeNoopLogger returns a logger that discards all records, for tests.
func MakeNoopLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))}
}
