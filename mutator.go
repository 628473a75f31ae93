package synalter

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/bits"
	"strings"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

// Mutator Options
type Options struct {
	// list of phrases to create variants of
	Phrases []string
	// Lookup used to resolve synonyms of every word
	Lookup WordLookup
	// Limits output results (0 = no limit)
	Limit int
	// MaxVariants is max variants allowed per phrase (0 = no limit)
	// phrases exceeding it are skipped
	MaxVariants int
	// KeepSelfEntry keeps headword self entries in candidate lists
	KeepSelfEntry bool
}

// Mutator
type Mutator struct {
	Options      *Options
	payloadCount int
	spaces       []*VariantSpace // variant space of every usable phrase
}

// New creates and returns new mutator instance from options
func New(opts *Options) (*Mutator, error) {
	if len(opts.Phrases) == 0 {
		return nil, fmt.Errorf("no input provided to calculate variants")
	}
	if opts.Lookup == nil {
		return nil, fmt.Errorf("no dictionary provided to lookup synonyms")
	}
	// purge duplicates if any
	dedupe := sliceutil.Dedupe(opts.Phrases)
	if len(dedupe) != len(opts.Phrases) {
		gologger.Warning().Msgf("%v duplicate phrases found. purging them..", len(opts.Phrases)-len(dedupe))
		opts.Phrases = dedupe
	}
	m := &Mutator{
		Options: opts,
	}
	if err := m.prepareInputs(); err != nil {
		return nil, err
	}
	return m, nil
}

// Execute generates variants of all phrases and writes them to a string channel
func (m *Mutator) Execute(ctx context.Context) <-chan string {
	results := make(chan string, len(m.spaces))
	go func() {
		defer close(results)
		for _, space := range m.spaces {
			for variant := range space.All() {
				select {
				case <-ctx.Done():
					return
				case results <- variant:
				}
			}
		}
	}()
	return results
}

// ExecuteWithWriter executes Mutator and writes results directly to type that implements io.Writer interface
func (m *Mutator) ExecuteWithWriter(Writer io.Writer) error {
	if Writer == nil {
		return errorutil.NewWithTag("synalter", "writer destination cannot be nil")
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	resChan := m.Execute(ctx)
	counter := 0
	for value := range resChan {
		if m.Options.Limit > 0 && counter == m.Options.Limit {
			return nil
		}
		_, err := Writer.Write([]byte(value + "\n"))
		counter++
		if err != nil {
			return err
		}
	}
	return nil
}

// EstimateCount returns number of variants that will be created
// and saves to be used later on with `PayloadCount()` method.
// Unlike enumeration this is simply sum of all variant space sizes.
func (m *Mutator) EstimateCount() int {
	counter := 0
	for _, space := range m.spaces {
		counter = addSaturated(counter, space.Len())
	}
	if m.Options.Limit > 0 && counter > m.Options.Limit {
		counter = m.Options.Limit
	}
	m.payloadCount = counter
	return counter
}

// PayloadCount returns total estimated variants count
func (m *Mutator) PayloadCount() int {
	if m.payloadCount == 0 {
		m.EstimateCount()
	}
	return m.payloadCount
}

// addSaturated adds two non-negative counts, clamping at math.MaxInt
func addSaturated(a, b int) int {
	sum, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 || sum > math.MaxInt {
		return math.MaxInt
	}
	return int(sum)
}

// Spaces returns variant spaces of all usable phrases in input order
func (m *Mutator) Spaces() []*VariantSpace {
	return m.spaces
}

// prepares variant space of every phrase
func (m *Mutator) prepareInputs() error {
	errors := []string{}
	spaceOpts := &SpaceOptions{
		MaxVariants:   m.Options.MaxVariants,
		KeepSelfEntry: m.Options.KeepSelfEntry,
	}
	for _, phrase := range m.Options.Phrases {
		space, err := NewVariantSpace(phrase, m.Options.Lookup, spaceOpts)
		if err != nil {
			gologger.Warning().Msgf("skipping phrase `%v`: %v", phrase, err)
			errors = append(errors, err.Error())
			continue
		}
		if space.Len() == 0 {
			gologger.Verbose().Msgf("skipping empty phrase")
			continue
		}
		gologger.Verbose().Msgf("phrase `%v` has %v variants", space.Input.String(), space.Len())
		m.spaces = append(m.spaces, space)
	}
	if len(m.spaces) == 0 {
		if len(errors) > 0 {
			return errorutil.NewWithTag("synalter", "%v", strings.Join(errors, " : "))
		}
		return errorutil.NewWithTag("synalter", "no usable phrase found in input")
	}
	return nil
}
