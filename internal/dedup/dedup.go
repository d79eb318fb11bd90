package dedup

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gofrs/flock"
)

// ErrLocked means another run holds the cache store. The store assumes a
// single writer; running twice concurrently would double-append.
var ErrLocked = errors.New("dedup cache is locked by another run")

// Cache is the persistent set of job ids accepted in prior runs. The store
// is a flat text file, one id per line, append-only. An id present in the
// cache is never re-accepted.
type Cache struct {
	mu   sync.Mutex
	file *os.File
	lock *flock.Flock
	seen mapset.Set[string]
}

// Open loads the store at path into memory, creating an empty store if it
// does not exist. It takes an exclusive advisory lock for the lifetime of
// the cache; a second concurrent run fails with ErrLocked.
func Open(path string) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	fl := flock.New(path + ".lock")
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("locking cache store: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0644)
	if err != nil {
		fl.Unlock()
		return nil, fmt.Errorf("opening cache store: %w", err)
	}

	seen := mapset.NewThreadUnsafeSet[string]()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			seen.Add(line)
		}
	}
	if err := scanner.Err(); err != nil {
		file.Close()
		fl.Unlock()
		return nil, fmt.Errorf("reading cache store: %w", err)
	}

	return &Cache{file: file, lock: fl, seen: seen}, nil
}

// Contains reports whether id was accepted in this or a prior run.
func (c *Cache) Contains(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seen.Contains(id)
}

// Record appends id to the store and the in-memory set. The append is
// synced to disk before returning so a crash mid-run cannot lose an
// already-recorded acceptance.
func (c *Cache) Record(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.file.WriteString(id + "\n"); err != nil {
		return fmt.Errorf("appending to cache store: %w", err)
	}
	if err := c.file.Sync(); err != nil {
		return fmt.Errorf("syncing cache store: %w", err)
	}

	c.seen.Add(id)
	return nil
}

// Len is the number of ids currently known.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seen.Cardinality()
}

// Close releases the store and its lock.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.file.Close()
	if unlockErr := c.lock.Unlock(); err == nil {
		err = unlockErr
	}
	return err
}
