package fsutil

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/conn-castle/topic-manager/internal/messages"
)

const (
	// DefaultLockTimeout bounds how long a writer waits for a concurrent run to finish.
	DefaultLockTimeout = 30 * time.Second
	// DefaultLockPoll is the interval between lock attempts.
	DefaultLockPoll = 100 * time.Millisecond
)

// Locker serializes writers through an exclusive flock(2) on a lock file.
// The lock file is created when missing and left in place afterwards.
type Locker struct {
	Timeout time.Duration
	Poll    time.Duration

	flock func(fd int, how int) error
	sleep func(time.Duration)
	now   func() time.Time
}

// NewLocker returns a Locker using DefaultLockTimeout and DefaultLockPoll.
func NewLocker() *Locker {
	return &Locker{
		Timeout: DefaultLockTimeout,
		Poll:    DefaultLockPoll,
		flock:   unix.Flock,
		sleep:   time.Sleep,
		now:     time.Now,
	}
}

var defaultLocker = NewLocker()

// WithFileLock runs fn while holding the lock on path, using the default Locker.
func WithFileLock(path string, fn func() error) error {
	return defaultLocker.With(path, fn)
}

// With runs fn while holding the lock on path. fn does not run when the lock cannot be
// taken. A failure to unlock is reported only when fn itself succeeded.
func (l *Locker) With(path string, fn func() error) (err error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf(messages.LockOpenFmt, path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	fd := int(file.Fd())
	if err := l.acquire(fd); err != nil {
		return fmt.Errorf(messages.LockFmt, path, err)
	}
	defer func() {
		if unlockErr := l.flock(fd, unix.LOCK_UN); unlockErr != nil && err == nil {
			err = fmt.Errorf(messages.LockFmt, path, unlockErr)
		}
	}()
	return fn()
}

// acquire retries a non-blocking exclusive lock every Poll until Timeout has passed.
func (l *Locker) acquire(fd int) error {
	deadline := l.now().Add(l.Timeout)
	for {
		err := l.flock(fd, unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			return nil
		}
		if !errors.Is(err, unix.EWOULDBLOCK) && !errors.Is(err, unix.EAGAIN) {
			return err
		}
		if !l.now().Before(deadline) {
			return fmt.Errorf(messages.LockTimeoutFmt, l.Timeout)
		}
		l.sleep(l.Poll)
	}
}
