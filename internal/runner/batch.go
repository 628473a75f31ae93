package runner

import (
	"io"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/synalter"
	"github.com/projectdiscovery/synalter/internal/pager"
	errorutil "github.com/projectdiscovery/utils/errors"
)

func (r *Runner) batch() error {
	m, err := synalter.New(&synalter.Options{
		Phrases:       r.options.Phrases,
		Lookup:        r.lookup,
		Limit:         r.options.Limit,
		MaxVariants:   r.config.MaxVariants,
		KeepSelfEntry: r.options.KeepSelf,
	})
	if err != nil {
		return err
	}

	if r.options.Estimate {
		gologger.Info().Msgf("Estimated variants (including duplicates): %v", m.EstimateCount())
		return nil
	}

	output, err := r.outputWriter()
	if err != nil {
		return err
	}
	defer r.closeOutput(output)

	if !r.options.Shuffle {
		return m.ExecuteWithWriter(output)
	}
	return r.writeShuffled(m, output)
}

// writeShuffled writes variants of every phrase in random order.
// phrases keep their input order.
func (r *Runner) writeShuffled(m *synalter.Mutator, w io.Writer) error {
	counter := 0
	for i, space := range m.Spaces() {
		p := pager.New(space, pager.Shuffled(space.Len(), r.seed+int64(i)), r.config.PageSize)
		for !p.Done() {
			for _, value := range p.Next() {
				if r.options.Limit > 0 && counter == r.options.Limit {
					return nil
				}
				if _, err := w.Write([]byte(value + "\n")); err != nil {
					return err
				}
				counter++
			}
		}
	}
	return nil
}

// outputWriter returns the appropriate output writer
func (r *Runner) outputWriter() (io.Writer, error) {
	if r.options.Output != "" {
		fs, err := os.OpenFile(r.options.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return nil, errorutil.NewWithTag("synalter", "failed to open output file %v got %v", r.options.Output, err)
		}
		return fs, nil
	}
	return r.out, nil
}

// closeOutput closes the output writer if it's a file
func (r *Runner) closeOutput(output io.Writer) {
	if r.options.Output != "" {
		if closer, ok := output.(io.Closer); ok {
			closer.Close()
		}
	}
}
