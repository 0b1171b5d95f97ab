package assert

import (
	"log/slog"
	"os"
)

// Success unwraps v, exiting the process if err is set. Meant for writes to
// stdout where there is no better place to report the failure.
func Success[T any](v T, err error) T {
	if err != nil {
		slog.Error("unrecoverable write failure", "error", err)
		os.Exit(1)
	}
	return v
}
