package dirsize

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/rs/zerolog"

	"github.com/idelchi/dirkit/internal/fserr"
	"github.com/idelchi/dirkit/internal/walk"
)

const (
	// DefaultProgressInterval is the default interval for progress updates.
	DefaultProgressInterval = 500 * time.Millisecond
	// DefaultTopN is the number of entries reported when TopN is not set.
	DefaultTopN = 20
)

// UsageOptions configures a Usage run.
type UsageOptions struct {
	// Path is the directory to analyze.
	Path string
	// Excludes contains directory names to prune.
	Excludes walk.Excludes
	// MinSize is the minimum file size in bytes; smaller files are ignored.
	MinSize int64
	// TopN is the number of entries to keep.
	TopN int
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Logger receives debug output. The zero value discards it.
	Logger *zerolog.Logger
}

// splitChild returns the root's direct child that path lives under, and
// whether path is that child itself. It returns "" for the root.
func splitChild(path, root string) (child string, direct bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return "", false
	}

	child, rest, found := strings.Cut(rel, string(filepath.Separator))

	return child, !found || rest == ""
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is
// done or stop is called. Once stop returns, hook is not called again.
func startProgressReporter(
	ctx context.Context,
	c *collector,
	hook func(int64, int64),
	interval time.Duration,
) (stop func()) {
	if hook == nil {
		return func() {}
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	ticker := time.NewTicker(interval)

	go func() {
		defer close(done)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if ctx.Err() != nil {
					return
				}

				hook(c.progress())
			case <-ctx.Done():
				return
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

// Usage walks opt.Path and attributes the size of every regular file to the
// direct child of opt.Path it lives under. Symbolic links are not followed.
//
// The walk can be cancelled via ctx. Progress updates are sent to
// progressHook if provided.
func Usage(ctx context.Context, opt UsageOptions, progressHook func(int64, int64)) (*Report, error) {
	log := zerolog.Nop()
	if opt.Logger != nil {
		log = *opt.Logger
	}

	if opt.Path == "" {
		opt.Path = "."
	}

	opt.Path = filepath.Clean(opt.Path)

	if info, err := os.Stat(opt.Path); err != nil {
		return nil, fserr.NotFound("usage", opt.Path, err)
	} else if !info.IsDir() {
		return nil, fserr.NotFound("usage", opt.Path, errors.New("not a directory"))
	}

	if opt.TopN <= 0 {
		opt.TopN = DefaultTopN
	}

	log.Debug().
		Str("path", opt.Path).
		Strs("exclude", opt.Excludes.Names()).
		Int64("min_size", opt.MinSize).
		Int("top", opt.TopN).
		Msg("analyzing usage")

	collector := newCollector(opt.TopN)

	stop := startProgressReporter(ctx, collector, progressHook, opt.ProgressInterval)
	defer stop()

	start := time.Now()

	conf := &fastwalk.Config{
		Follow:     false,
		NumWorkers: 1,
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, opt.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debug().Err(err).Str("path", filepath.ToSlash(path)).Msg("error accessing path")
			collector.addError()

			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		child, direct := splitChild(path, opt.Path)
		if child == "" {
			return nil
		}

		if d.IsDir() {
			if opt.Excludes.Match(d.Name()) {
				log.Debug().Str("path", filepath.ToSlash(path)).Msg("excluding directory")

				return filepath.SkipDir
			}

			if direct {
				collector.register(child, true)
			}

			return nil
		}

		if !d.Type().IsRegular() {
			if direct {
				collector.register(child, false)
			}

			return nil
		}

		info, err := d.Info()
		if err != nil {
			collector.addError()

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		if info.Size() < opt.MinSize {
			return nil
		}

		collector.add(child, !direct, info.Size())

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	report := collector.finalize()
	report.Root = filepath.ToSlash(opt.Path)
	report.Elapsed = time.Since(start)

	return report, nil
}
