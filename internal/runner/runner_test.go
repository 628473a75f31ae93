package runner

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/projectdiscovery/goflags"
	"github.com/stretchr/testify/require"
)

const thesaurus = `{"key": "swift_adj", "pos": "adj", "word": "swift", "synonyms": ["fleet", "rapid"]}
{"key": "car_noun", "pos": "noun", "word": "car", "synonyms": ["auto"]}
`

var swiftCar = []string{
	"swift car", "fleet car", "rapid car",
	"swift auto", "fleet auto", "rapid auto",
}

func writeThesaurus(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "thesaurus.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(thesaurus), 0o644))
	return path
}

func newRunner(t *testing.T, opts *Options) *Runner {
	t.Helper()
	r, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(r.Close)
	return r
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	bin, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(bin)), "\n")
}

func TestRunnerBatch(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.txt")
	r := newRunner(t, &Options{
		Phrases:      goflags.StringSlice{"swift car"},
		Dictionaries: goflags.StringSlice{writeThesaurus(t)},
		Output:       output,
	})
	require.NoError(t, r.Run())
	require.Equal(t, swiftCar, readLines(t, output))
}

func TestRunnerBatchShuffle(t *testing.T) {
	var buff bytes.Buffer
	r := newRunner(t, &Options{
		Phrases:      goflags.StringSlice{"swift car"},
		Dictionaries: goflags.StringSlice{writeThesaurus(t)},
		Shuffle:      true,
		Seed:         7,
	})
	r.out = &buff
	require.NoError(t, r.Run())
	got := strings.Split(strings.TrimSpace(buff.String()), "\n")
	require.ElementsMatch(t, swiftCar, got)

	buff.Reset()
	r.options.Limit = 3
	require.NoError(t, r.Run())
	got = strings.Split(strings.TrimSpace(buff.String()), "\n")
	require.Len(t, got, 3)
	require.Subset(t, swiftCar, got)
}

func TestRunnerEstimate(t *testing.T) {
	var buff bytes.Buffer
	r := newRunner(t, &Options{
		Phrases:      goflags.StringSlice{"swift car"},
		Dictionaries: goflags.StringSlice{writeThesaurus(t)},
		Estimate:     true,
	})
	r.out = &buff
	require.NoError(t, r.Run())
	require.Empty(t, buff.String())
}

func TestRunnerTooLarge(t *testing.T) {
	r := newRunner(t, &Options{
		Phrases:      goflags.StringSlice{"swift car"},
		Dictionaries: goflags.StringSlice{writeThesaurus(t)},
		MaxVariants:  5,
	})
	require.ErrorContains(t, r.Run(), "variant space too large")
}

func TestRunnerInteractive(t *testing.T) {
	r := newRunner(t, &Options{
		Dictionaries: goflags.StringSlice{writeThesaurus(t)},
		PageSize:     2,
		Seed:         3,
	})
	var out bytes.Buffer
	in := strings.NewReader("swift car\n\n\n\nQUIT\n")
	require.NoError(t, r.interactive(in, &out))

	text := out.String()
	require.Contains(t, text, "Shown 2 of 6")
	require.Contains(t, text, "Shown 4 of 6")
	require.NotContains(t, text, "Shown 6 of 6")
	require.Contains(t, text, promptMore)

	var variants []string
	for _, line := range strings.Split(text, "\n") {
		for _, v := range swiftCar {
			if line == v {
				variants = append(variants, line)
			}
		}
	}
	require.ElementsMatch(t, swiftCar, variants)
}

func TestRunnerInteractiveEOF(t *testing.T) {
	r := newRunner(t, &Options{
		Dictionaries: goflags.StringSlice{writeThesaurus(t)},
	})
	var out bytes.Buffer
	require.NoError(t, r.interactive(strings.NewReader("Unknown Words"), &out))
	require.Contains(t, out.String(), "Unknown Words\n")
	require.NotContains(t, out.String(), "Shown")
}

func TestRunnerDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "thesaurus.db")
	r := newRunner(t, &Options{
		Dictionaries: goflags.StringSlice{writeThesaurus(t)},
		Database:     db,
	})
	got, ok := r.lookup.Lookup("swift")
	require.True(t, ok)
	require.Equal(t, []string{"swift", "fleet", "rapid"}, got)
	r.Close()

	// reuse database without reparsing thesaurus
	var buff bytes.Buffer
	r = newRunner(t, &Options{
		Phrases:  goflags.StringSlice{"swift car"},
		Database: db,
	})
	r.out = &buff
	require.NoError(t, r.Run())
	require.Equal(t, strings.Join(swiftCar, "\n")+"\n", buff.String())
}

func TestRunnerDatabaseKeepsCachedEntries(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "thesaurus.db")
	path := filepath.Join(dir, "big.jsonl")
	content := `{"word": "big", "synonyms": ["vast", "giant", "enormous"]}` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r := newRunner(t, &Options{
		Dictionaries: goflags.StringSlice{path},
		Database:     db,
	})
	compiled, ok := r.lookup.Lookup("big")
	require.True(t, ok)
	require.Equal(t, []string{"big", "vast", "giant", "enormous"}, compiled[:4])
	r.Close()

	// database only run must not overwrite cached headwords with inline config synonyms
	r = newRunner(t, &Options{Database: db})
	got, ok := r.lookup.Lookup("big")
	require.True(t, ok)
	require.Equal(t, compiled, got)

	// words missing from database are still served by inline config synonyms
	got, ok = r.lookup.Lookup("small")
	require.True(t, ok)
	require.Equal(t, []string{"small", "little", "tiny"}, got)
	r.Close()

	// cache survives a second database only run
	r = newRunner(t, &Options{Database: db})
	got, ok = r.lookup.Lookup("big")
	require.True(t, ok)
	require.Equal(t, compiled, got)
}

func TestRunnerMissingDictionary(t *testing.T) {
	_, err := New(&Options{
		Dictionaries: goflags.StringSlice{filepath.Join(t.TempDir(), "*.jsonl")},
	})
	require.ErrorContains(t, err, "no thesaurus found")
}

func TestReadPhrases(t *testing.T) {
	got := readPhrases("big house\n\n  The Quick Fox  \r\n")
	require.Equal(t, []string{"big house", "The Quick Fox"}, got)
}
