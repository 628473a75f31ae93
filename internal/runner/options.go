package runner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/projectdiscovery/synalter"
	fileutil "github.com/projectdiscovery/utils/file"
	updateutils "github.com/projectdiscovery/utils/update"
)

type Options struct {
	Phrases            goflags.StringSlice // phrases to create variants of
	Dictionaries       goflags.StringSlice // thesaurus files or glob patterns
	Database           string              // sqlite thesaurus cache
	Disk               bool
	Output             string
	Config             string
	SynalterConfig     string
	GenerateConfig     string
	Estimate           bool
	Shuffle            bool
	KeepSelf           bool
	Seed               int
	Limit              int
	PageSize           int
	MaxVariants        int
	DisableUpdateCheck bool
	Verbose            bool
	Silent             bool
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Generate every synonym substitution variant of a phrase.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.Phrases, "phrase", "p", nil, "phrases to create variants of (stdin, file), interactive mode when empty", goflags.FileStringSliceOptions),
	)

	flagSet.CreateGroup("dictionary", "Dictionary",
		flagSet.StringSliceVarP(&opts.Dictionaries, "dictionary", "d", nil, fmt.Sprintf("thesaurus files or glob patterns (json, jsonl, yaml) (default '%v' in executable or working dir parents)", synalter.DefaultThesaurus), goflags.CommaSeparatedStringSliceOptions),
		flagSet.StringVar(&opts.Database, "db", "", "sqlite thesaurus cache to import into and lookup from"),
		flagSet.BoolVar(&opts.Disk, "disk", false, "keep loaded thesaurus on disk instead of memory"),
		flagSet.BoolVarP(&opts.KeepSelf, "keep-self", "ks", false, "keep headword self entries in candidate lists"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Estimate, "estimate", "es", false, "estimate variant count without generating them"),
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write variants"),
		flagSet.BoolVarP(&opts.Shuffle, "shuffle", "sh", false, "write variants in random order (interactive mode always shuffles)"),
		flagSet.IntVar(&opts.Seed, "seed", 0, "seed used for shuffling (default random)"),
		flagSet.IntVar(&opts.Limit, "limit", 0, "limit the number of results to return (default 0)"),
		flagSet.IntVarP(&opts.PageSize, "page-size", "ps", 0, fmt.Sprintf("results shown per page in interactive mode (default %v)", synalter.DefaultPageSize)),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display synalter version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `synalter cli config file (default '$HOME/.config/synalter/config.yaml')`),
		flagSet.StringVar(&opts.SynalterConfig, "sc", "", fmt.Sprintf(`synalter dictionary config file (default '$HOME/.config/synalter/config_%v.yaml')`, version)),
		flagSet.StringVarP(&opts.GenerateConfig, "generate-config", "gc", "", "write sample synalter dictionary config to file and exit"),
		flagSet.IntVarP(&opts.MaxVariants, "max-variants", "mv", 0, "max variants allowed per phrase (default from config)"),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update synalter to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic synalter update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if opts.GenerateConfig != "" {
		if err := synalter.GenerateSample(opts.GenerateConfig); err != nil {
			gologger.Fatal().Msgf("failed to write sample config got %v", err)
		}
		gologger.Info().Msgf("Sample config written to %v", opts.GenerateConfig)
		os.Exit(0)
	}

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("synalter")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("synalter version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current synalter version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	// read from stdin
	if fileutil.HasStdin() {
		bin, err := io.ReadAll(os.Stdin)
		if err != nil {
			gologger.Error().Msgf("failed to read input from stdin got %v", err)
		}
		opts.Phrases = append(opts.Phrases, readPhrases(string(bin))...)
	}
	return opts
}

// readPhrases returns non empty lines of data, one phrase per line
func readPhrases(data string) []string {
	phrases := []string{}
	for _, line := range strings.Split(data, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			phrases = append(phrases, line)
		}
	}
	return phrases
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
