package rawlog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"acrtelemetry/internal/logging"
)

// physicsSuffix names the primary file a recording groups around; every
// other file sharing its stem (graphics raw log, sidecars, exports,
// compressed mirror) is swept alongside it.
const physicsSuffix = ".physics.rawlog"

// RetentionPolicy bounds how many recordings, and how old a recording, a
// raw log directory is allowed to keep.
type RetentionPolicy struct {
	MaxRecordings int
	MaxAge        time.Duration
}

// StorageStats summarises the on-disk footprint of a raw log directory as
// of its last sweep.
type StorageStats struct {
	Recordings int
	Bytes      int64
	LastSweep  time.Time
}

// Cleaner periodically prunes recordings (a physics raw log and every
// sibling file sharing its stem: graphics raw log, schema/statics/notes
// sidecars, CSV, LD, and compressed mirror) from a raw log directory
// according to a RetentionPolicy.
type Cleaner struct {
	mu     sync.RWMutex
	dir    string
	policy RetentionPolicy
	log    *logging.Logger
	now    func() time.Time
	stats  StorageStats
}

// NewCleaner constructs a cleaner for the given raw log directory.
func NewCleaner(dir string, policy RetentionPolicy, logger *logging.Logger) *Cleaner {
	if logger == nil {
		logger = logging.L()
	}
	return &Cleaner{dir: dir, policy: policy, log: logger, now: time.Now}
}

// Run executes retention sweeps on interval until ctx is cancelled,
// sweeping once immediately on entry.
func (c *Cleaner) Run(ctx context.Context, interval time.Duration) {
	if c == nil || ctx == nil {
		return
	}
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c.sweep()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.sweep()
		}
	}
}

// RunOnce performs a single retention sweep, primarily for tests and for
// the aggregation glue to invoke after a batch export completes.
func (c *Cleaner) RunOnce() {
	if c == nil {
		return
	}
	c.sweep()
}

// Stats returns the storage statistics recorded by the last sweep.
func (c *Cleaner) Stats() StorageStats {
	if c == nil {
		return StorageStats{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

type recording struct {
	stem    string
	files   []string
	size    int64
	modTime time.Time
}

func (c *Cleaner) sweep() {
	if c == nil || strings.TrimSpace(c.dir) == "" {
		return
	}
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		c.log.Warn("raw log retention scan failed", logging.Error(err), logging.String("directory", c.dir))
		return
	}

	recordings := c.collect(entries)
	now := c.now()
	kept := 0
	stats := StorageStats{LastSweep: now}

	for _, r := range recordings {
		if shouldRemove, reason := c.shouldRemove(r, now, kept); shouldRemove {
			if err := c.remove(r); err != nil {
				c.log.Warn("raw log retention removal failed", logging.Error(err), logging.String("recording", r.stem))
				kept++
				stats.Recordings++
				stats.Bytes += r.size
				continue
			}
			c.log.Info("raw log retention removed recording", logging.String("recording", r.stem), logging.String("reason", reason))
			continue
		}
		kept++
		stats.Recordings++
		stats.Bytes += r.size
	}

	c.mu.Lock()
	c.stats = stats
	c.mu.Unlock()
}

// collect groups every file in the directory by the stem of its
// *.physics.rawlog sibling, so a recording's schema/statics/notes
// sidecars, CSV/LD exports, and compressed mirror are pruned together.
// Files with no matching *.physics.rawlog in the directory are left
// untouched.
func (c *Cleaner) collect(entries []fs.DirEntry) []*recording {
	stems := make(map[string]struct{})
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), physicsSuffix) {
			stems[strings.TrimSuffix(e.Name(), physicsSuffix)] = struct{}{}
		}
	}

	byStem := make(map[string]*recording, len(stems))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		var stem string
		for s := range stems {
			if name == s+physicsSuffix || strings.HasPrefix(name, s+".") {
				stem = s
				break
			}
		}
		if stem == "" {
			continue
		}

		path := filepath.Join(c.dir, name)
		info, err := e.Info()
		if err != nil {
			c.log.Warn("raw log retention stat failed", logging.Error(err), logging.String("path", path))
			continue
		}

		r := byStem[stem]
		if r == nil {
			r = &recording{stem: stem, modTime: info.ModTime()}
			byStem[stem] = r
		}
		if info.ModTime().After(r.modTime) {
			r.modTime = info.ModTime()
		}
		r.files = append(r.files, path)
		r.size += info.Size()
	}

	list := make([]*recording, 0, len(byStem))
	for _, r := range byStem {
		list = append(list, r)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].modTime.After(list[j].modTime) })
	return list
}

func (c *Cleaner) shouldRemove(r *recording, now time.Time, kept int) (bool, string) {
	var reasons []string
	if c.policy.MaxAge > 0 && now.Sub(r.modTime) > c.policy.MaxAge {
		reasons = append(reasons, fmt.Sprintf("age>%s", c.policy.MaxAge))
	}
	if c.policy.MaxRecordings > 0 && kept >= c.policy.MaxRecordings {
		reasons = append(reasons, fmt.Sprintf(">=%d recordings", c.policy.MaxRecordings))
	}
	return len(reasons) > 0, strings.Join(reasons, ", ")
}

func (c *Cleaner) remove(r *recording) error {
	var errs error
	for _, path := range r.files {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}
