package runner

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/synalter"
	"github.com/projectdiscovery/synalter/dictionary"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// Runner loads dictionaries and generates variants in batch or interactive mode
type Runner struct {
	options *Options
	config  synalter.Config
	lookup  synalter.WordLookup
	index   *dictionary.Index
	db      *dictionary.SQLiteStore
	seed    int64

	in  io.Reader
	out io.Writer
}

// New creates a runner, merging config with flags and loading dictionaries
func New(options *Options) (*Runner, error) {
	r := &Runner{
		options: options,
		in:      os.Stdin,
		out:     os.Stdout,
	}
	if options.SynalterConfig != "" {
		cfg, err := synalter.NewConfig(options.SynalterConfig)
		if err != nil {
			return nil, errorutil.NewWithTag("synalter", "failed to read %v file got: %v", options.SynalterConfig, err)
		}
		r.config = *cfg
	}
	r.config.Merge(&synalter.DefaultConfig)
	if options.PageSize > 0 {
		r.config.PageSize = options.PageSize
	}
	if options.MaxVariants > 0 {
		r.config.MaxVariants = options.MaxVariants
	}
	if r.config.StatusTemplate == "" {
		r.config.StatusTemplate = synalter.DefaultStatusTemplate
	}
	if err := synalter.ValidateTemplate(r.config.StatusTemplate, "shown", "total", "page"); err != nil {
		return nil, errorutil.NewWithTag("synalter", "invalid status template: %v", err)
	}

	r.seed = int64(options.Seed)
	if r.seed == 0 {
		r.seed = time.Now().UnixNano()
	}

	if err := r.loadDictionaries(); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

func (r *Runner) loadDictionaries() error {
	patterns := []string(r.options.Dictionaries)
	if len(patterns) == 0 {
		patterns = r.config.Dictionaries
	}
	if len(patterns) == 0 && r.options.Database == "" {
		if path, err := locateDefault(); err == nil {
			patterns = []string{path}
		} else {
			gologger.Warning().Msgf("%v, using config synonyms only", err)
		}
	}
	files, err := dictionary.Expand(patterns...)
	if err != nil {
		return errorutil.NewWithTag("synalter", "failed to load dictionary got %v", err)
	}
	idx, err := dictionary.NewIndex(&dictionary.IndexOptions{
		Disk:     r.options.Disk,
		SizeHint: dictionary.SizeOf(files...),
	})
	if err != nil {
		return errorutil.NewWithTag("synalter", "failed to create dictionary index got %v", err)
	}
	r.index = idx
	count, err := dictionary.LoadFiles(idx, files...)
	if err != nil {
		return errorutil.NewWithTag("synalter", "failed to load dictionary got %v", err)
	}
	idx.AddMap(r.config.Synonyms)
	gologger.Verbose().Msgf("loaded %v thesaurus entries, %v headwords", count, idx.Len())
	r.lookup = idx

	if r.options.Database == "" {
		return nil
	}
	db, err := dictionary.OpenSQLite(r.options.Database)
	if err != nil {
		return errorutil.NewWithTag("synalter", "failed to open %v got %v", r.options.Database, err)
	}
	r.db = db
	if len(files) == 0 {
		// reuse compiled thesaurus as is, inline synonyms only fill words it lacks
		gologger.Verbose().Msgf("no thesaurus files given, reading %v", r.options.Database)
		r.lookup = synalter.ChainLookup{db, idx}
		return nil
	}
	imported, err := db.Import(context.Background(), idx)
	if err != nil {
		return errorutil.NewWithTag("synalter", "failed to import dictionary into %v got %v", r.options.Database, err)
	}
	total, err := db.Count()
	if err != nil {
		return errorutil.NewWithTag("synalter", "failed to read %v got %v", r.options.Database, err)
	}
	gologger.Verbose().Msgf("imported %v headwords into %v (%v total)", imported, r.options.Database, total)
	r.lookup = db
	// everything is served by the database now
	r.index.Close()
	r.index = nil
	return nil
}

// locateDefault searches default thesaurus next to executable and in working directory
func locateDefault() (string, error) {
	var starts []string
	if exe, err := os.Executable(); err == nil {
		starts = append(starts, filepath.Dir(exe))
	}
	if wd, err := os.Getwd(); err == nil {
		starts = append(starts, wd)
	}
	var lastErr error
	for _, start := range starts {
		path, err := dictionary.Locate(synalter.DefaultThesaurus, start)
		if err == nil {
			return path, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = errorutil.NewWithTag("synalter", "could not find thesaurus file %v", synalter.DefaultThesaurus)
	}
	return "", lastErr
}

// Run generates variants of input phrases, or starts interactive mode when
// no phrase was given
func (r *Runner) Run() error {
	if len(r.options.Phrases) == 0 {
		return r.interactive(r.in, r.out)
	}
	return r.batch()
}

// Close releases dictionary storage
func (r *Runner) Close() {
	if r.index != nil {
		r.index.Close()
		r.index = nil
	}
	if r.db != nil {
		if err := r.db.Close(); err != nil {
			gologger.Verbose().Msgf("failed to close %v got %v", r.options.Database, err)
		}
		r.db = nil
	}
}

func (r *Runner) spaceOptions() *synalter.SpaceOptions {
	return &synalter.SpaceOptions{
		MaxVariants:   r.config.MaxVariants,
		KeepSelfEntry: r.options.KeepSelf,
	}
}
