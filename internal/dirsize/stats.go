package dirsize

import (
	"sort"
	"sync"
	"time"
)

// UsageEntry is the aggregated size of one direct child of the analyzed root.
type UsageEntry struct {
	// Name is the child's base name.
	Name string `json:"name"`
	// IsDir reports whether the child is a directory.
	IsDir bool `json:"is_dir"`
	// Size is the cumulative size in bytes of the regular files it contains
	// (or its own size, for a file).
	Size int64 `json:"size"`
	// Files is the number of regular files counted.
	Files int64 `json:"files"`
}

// Report holds the result of a Usage run.
type Report struct {
	// Root is the analyzed directory.
	Root string `json:"root"`
	// Entries contains the N largest children, largest first.
	Entries []UsageEntry `json:"entries"`
	// FileCount is the total number of regular files counted.
	FileCount int64 `json:"file_count"`
	// TotalBytes is the cumulative size of all counted files.
	TotalBytes int64 `json:"total_bytes"`
	// ErrorCount is the number of entries that could not be read.
	ErrorCount int64 `json:"error_count"`
	// Elapsed is the total time taken.
	Elapsed time.Duration `json:"elapsed"`
	// TopN is the number of entries kept.
	TopN int `json:"top_n"`
}

// collector aggregates sizes per child of the root. fastwalk invokes the walk
// callback from its worker goroutine while the progress reporter reads the
// counters, so all access goes through the mutex.
type collector struct {
	mu         sync.Mutex
	topN       int
	children   map[string]*UsageEntry
	fileCount  int64
	totalBytes int64
	errorCount int64
}

func newCollector(topN int) *collector {
	return &collector{
		topN:     topN,
		children: make(map[string]*UsageEntry),
	}
}

func (c *collector) addError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorCount++
}

// register makes sure a child shows up in the report even if nothing is counted under it.
func (c *collector) register(name string, isDir bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.children[name]; !ok {
		c.children[name] = &UsageEntry{Name: name, IsDir: isDir}
	}
}

// add counts a regular file of the given size under child.
func (c *collector) add(child string, isDir bool, size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.children[child]
	if !ok {
		entry = &UsageEntry{Name: child, IsDir: isDir}
		c.children[child] = entry
	}

	entry.Size += size
	entry.Files++

	c.fileCount++
	c.totalBytes += size
}

// progress returns the running totals.
func (c *collector) progress() (files, bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fileCount, c.totalBytes
}

// finalize sorts children by size (largest first, ties by name) and trims to top N.
func (c *collector) finalize() *Report {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := make([]UsageEntry, 0, len(c.children))
	for _, entry := range c.children {
		entries = append(entries, *entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Size != entries[j].Size {
			return entries[i].Size > entries[j].Size
		}

		return entries[i].Name < entries[j].Name
	})

	if len(entries) > c.topN {
		entries = entries[:c.topN]
	}

	return &Report{
		Entries:    entries,
		FileCount:  c.fileCount,
		TotalBytes: c.totalBytes,
		ErrorCount: c.errorCount,
		TopN:       c.topN,
	}
}
