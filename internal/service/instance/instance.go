package instance

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-ps"

	"github.com/oshokin/sunrise-alarm/internal/logger"
)

// ErrAlreadyRunning is returned when another process with the same executable is alive.
var ErrAlreadyRunning = errors.New("another alarm instance is already running")

// errSelfNotFound is returned when the current process is missing from the process table.
var errSelfNotFound = errors.New("current process not found in process table")

// lister enumerates running processes.
type lister func() ([]ps.Process, error)

// EnsureSingle fails with ErrAlreadyRunning if another process runs the same executable.
// Two schedulers writing to one strip would fight over its brightness.
func EnsureSingle(ctx context.Context) error {
	self, err := ps.FindProcess(os.Getpid())
	if err != nil {
		return fmt.Errorf("inspect current process: %w", err)
	}

	if self == nil {
		return errSelfNotFound
	}

	return ensureSingle(ctx, ps.Processes, self.Pid(), self.Executable())
}

func ensureSingle(ctx context.Context, list lister, selfPID int, executable string) error {
	processList, err := list()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	for _, process := range processList {
		if process.Pid() == selfPID {
			continue
		}

		if process.Executable() != executable {
			continue
		}

		logger.WarnKV(ctx, "Found another alarm process", "pid", process.Pid(), "executable", executable)

		return fmt.Errorf("%w: pid %d", ErrAlreadyRunning, process.Pid())
	}

	logger.DebugKV(ctx, "No other alarm process found", "executable", executable)

	return nil
}
