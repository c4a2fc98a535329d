package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
)

const (
	// DefaultMaxSizeMB is the size at which the active log file is rotated.
	DefaultMaxSizeMB = 10
	// DefaultBackups is how many log files are kept, the active one included.
	DefaultBackups = 5

	// bytesInMegabyte converts MaxSizeMB to bytes.
	bytesInMegabyte = 1 << 20
	// rotationTime also starts a fresh file every day.
	rotationTime = 24 * time.Hour
	// logDirPermissions is applied when creating the log directory.
	logDirPermissions = 0o750
)

// errLogPathRequired is returned when a rotating file is requested without a path.
var errLogPathRequired = errors.New("log path must be provided")

// FileOptions bounds the rotating log file.
type FileOptions struct {
	// Path is the log file name; rotated files get a numeric suffix.
	Path string
	// MaxSizeMB rotates the file once it grows past this size.
	MaxSizeMB int
	// Backups is the number of files retained.
	Backups int
}

// NewRotatingFile opens a writer that rotates by size and keeps a fixed number of files.
// Files are named Path.YYYYMMDD[.N]; the active one is also reachable
// under Path through a symlink.
func NewRotatingFile(opts FileOptions) (io.WriteCloser, error) {
	if opts.Path == "" {
		return nil, errLogPathRequired
	}

	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = DefaultMaxSizeMB
	}

	if opts.Backups <= 0 {
		opts.Backups = DefaultBackups
	}

	path := filepath.Clean(opts.Path)
	if err := os.MkdirAll(filepath.Dir(path), logDirPermissions); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	writer, err := rotatelogs.New(
		path+".%Y%m%d",
		rotatelogs.WithLinkName(path),
		rotatelogs.WithRotationSize(int64(opts.MaxSizeMB)*bytesInMegabyte),
		rotatelogs.WithRotationCount(uint(opts.Backups)),
		rotatelogs.WithMaxAge(-1),
		rotatelogs.WithRotationTime(rotationTime),
	)
	if err != nil {
		return nil, fmt.Errorf("open rotating log %s: %w", path, err)
	}

	return writer, nil
}
