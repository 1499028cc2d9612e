package palette

import (
	"sync"

	"github.com/arthur-debert/richconsole/pkg/errors"
	"github.com/arthur-debert/richconsole/pkg/logging"
	"github.com/arthur-debert/richconsole/pkg/style"
	"go.uber.org/multierr"
)

// Source supplies named colours to register in the Fore and Back groups.
// Entries may be built on either plane; they are moved to the plane of the
// group they are added to.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	// Entries returns the colours in registration order. A source that is
	// not present on this system returns SOURCE_UNAVAILABLE.
	Entries() ([]style.Style, error)
}

// Import registers every colour of every source in both colour groups of
// the catalog. Sources are applied in order, so a later source redefines
// names set by an earlier one.
//
// Unavailable sources are skipped. Failures of the remaining sources are
// collected and returned together after all sources have been tried. The
// number of colours registered in both groups is returned in any case.
func Import(cat *style.Catalog, sources ...Source) (int, error) {
	logger := logging.GetLogger("palette")

	var errs error
	count := 0
	for _, src := range sources {
		entries, err := src.Entries()
		if err != nil {
			if errors.IsErrorCode(err, errors.ErrSourceUnavailable) {
				logger.Debug().Err(err).Str("source", src.Name()).Msg("Palette source unavailable, skipping")
				continue
			}
			errs = multierr.Append(errs, err)
			continue
		}

		for _, c := range entries {
			if c.Name() == style.ResetName {
				logger.Warn().Str("source", src.Name()).Msg("Palette entry may not be called reset, skipping")
				continue
			}
			registered := true
			for _, g := range []*style.Group{cat.Fore(), cat.Back()} {
				if _, err := g.Add(c); err != nil {
					errs = multierr.Append(errs, err)
					registered = false
				}
			}
			if registered {
				count++
			}
		}
		logger.Debug().Str("source", src.Name()).Int("colors", len(entries)).Msg("Palette source imported")
	}
	return count, errs
}

// Options selects the sources used by Sources.
type Options struct {
	Named  bool
	Gookit bool
	Basic  bool
	Files  []string
}

// DefaultOptions enables every built-in source.
func DefaultOptions() Options {
	return Options{Named: true, Gookit: true, Basic: true}
}

// Sources lists the enabled sources in import order: named web colours,
// palette files, then the 16 terminal colours. The terminal colours come
// last so that e.g. "red" resolves to SGR 31 rather than a true colour.
func Sources(opts Options) []Source {
	var sources []Source
	if opts.Named {
		sources = append(sources, Named())
	}
	for _, path := range opts.Files {
		sources = append(sources, File(path))
	}
	if opts.Gookit {
		sources = append(sources, Gookit())
	}
	if opts.Basic {
		sources = append(sources, Basic())
	}
	return sources
}

var (
	initOnce sync.Once
	initErr  error
)

// Init imports the selected sources into style.Default() exactly once per
// process. Later calls return the first call's result.
func Init(opts Options) error {
	initOnce.Do(func() {
		var n int
		n, initErr = Import(style.Default(), Sources(opts)...)
		logger := logging.GetLogger("palette")
		logger.Debug().Int("colors", n).Msg("Default palette initialized")
	})
	return initErr
}

// InitDefault is Init with DefaultOptions.
func InitDefault() error {
	return Init(DefaultOptions())
}
