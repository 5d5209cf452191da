//go:build linux || darwin

package main

import (
	"context"
	"runtime/debug"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/bnema/burrow/internal/logging"
)

func coreLimit() (unix.Rlimit, error) {
	var lim unix.Rlimit
	err := unix.Getrlimit(unix.RLIMIT_CORE, &lim)
	return lim, err
}

// enableCrashForensics lets a crash in the web process leave a core file
// and makes the Go runtime dump all goroutines on fatal errors.
func enableCrashForensics() {
	debug.SetTraceback("crash")

	lim, err := coreLimit()
	if err != nil || lim.Cur >= lim.Max {
		return
	}
	_ = unix.Setrlimit(unix.RLIMIT_CORE, &unix.Rlimit{Cur: lim.Max, Max: lim.Max})
}

func logCoreDumpLimits(ctx context.Context) {
	log := logging.FromContext(ctx)
	lim, err := coreLimit()
	if err != nil {
		log.Debug().Err(err).Msg("core limit unavailable")
		return
	}
	log.Debug().
		Str("core_soft", formatRlimit(lim.Cur)).
		Str("core_hard", formatRlimit(lim.Max)).
		Msg("crash forensics")
}

func formatRlimit(v uint64) string {
	if v == unix.RLIM_INFINITY {
		return "unlimited"
	}
	return strconv.FormatUint(v, 10)
}
