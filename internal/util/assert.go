package assert

import (
	"log/slog"
	"os"
)

// Success unwraps v and exits the process when err is set. Only for writes
// whose failure leaves nothing to recover, like a closed stdout.
func Success[T any](v T, err error) T {
	if err != nil {
		slog.Error("unrecoverable write failure", "error", err)
		os.Exit(1)
	}
	return v
}
