// Package lock provides the single-instance guard: an exclusive, non-blocking
// lock on a well-known file, held for the lifetime of a run.
package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	log "github.com/sirupsen/logrus"
)

const DefaultPath = "worklog-report.lock"

type Lock struct {
	path string
	file *os.File
}

// TryAcquire takes the lock without waiting. It returns false when another
// process already holds it.
func TryAcquire(path string) (*Lock, bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, false, fmt.Errorf("creating lock directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, false, fmt.Errorf("opening lock file %s: %w", path, err)
	}

	if err := lockFile(file); err != nil {
		_ = file.Close()
		if isHeld(err) {
			log.Debugf("Lock %s is held by another process", path)
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("locking %s: %w", path, err)
	}

	if err := file.Truncate(0); err == nil {
		_, _ = file.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0)
	}
	return &Lock{path: path, file: file}, true, nil
}

// Release unlocks and closes the lock file. The file itself stays in place so
// that every run locks the same inode.
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	unlockErr := unlockFile(l.file)
	closeErr := l.file.Close()
	l.file = nil
	if unlockErr != nil {
		return fmt.Errorf("unlocking %s: %w", l.path, unlockErr)
	}
	return closeErr
}
