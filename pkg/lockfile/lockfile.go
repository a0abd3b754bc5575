// Package lockfile serializes runs that share an output directory.
//
// The lock is an advisory flock taken beside the report file. It guards
// the collision-suffix bookkeeping, which is only correct when a single
// process writes the output directory. A held lock is a fatal setup
// error; runs never queue behind each other.
package lockfile

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
	"github.com/sheetpick/sheetpick/pkg/errors"
	"github.com/sheetpick/sheetpick/pkg/logging"
)

// Lock is the run lock, held from setup until process exit.
type Lock struct {
	flock  *flock.Flock
	logger zerolog.Logger
	path   string
}

// Acquire takes the run lock without blocking. flock needs a real file
// descriptor, so this always works on the host filesystem.
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrOutputAccess,
			"cannot create lock directory %s", filepath.Dir(path))
	}

	l := &Lock{
		flock:  flock.New(path),
		logger: logging.GetLogger("lockfile"),
		path:   path,
	}

	acquired, err := l.flock.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrOutputAccess,
			"cannot lock %s", path)
	}
	if !acquired {
		return nil, errors.Newf(errors.ErrLockHeld,
			"another run holds %s", path)
	}

	l.logger.Debug().Str("path", path).Msg("Run lock acquired")
	return l, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Release drops the lock. The lock file itself stays behind; flock
// state, not file existence, is what blocks other runs.
func (l *Lock) Release() {
	if err := l.flock.Unlock(); err != nil {
		l.logger.Warn().Err(err).Str("path", l.path).Msg("Run lock release failed")
		return
	}
	l.logger.Debug().Str("path", l.path).Msg("Run lock released")
}
