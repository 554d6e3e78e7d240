package gpu

import (
	"log/slog"

	"github.com/tathyagarg/harbor"
)

// slogger returns the logger configured through harbor.SetLogger.
// All logging in internal/gpu goes through this function.
func slogger() *slog.Logger {
	return harbor.Logger()
}
