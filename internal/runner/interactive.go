package runner

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/projectdiscovery/synalter"
	"github.com/projectdiscovery/synalter/internal/pager"
)

const (
	promptNew  = `Enter title ("quit" to quit)`
	promptMore = `Enter title ("quit" to quit, or press enter to show more results)`
)

// interactive reads titles from in and writes shuffled variants to out
// a page at a time. An empty line shows next page of previous title.
func (r *Runner) interactive(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	var p *pager.Pager
	titles := 0
	for {
		if p != nil && !p.Done() {
			fmt.Fprintln(out, promptMore)
		} else {
			fmt.Fprintln(out, promptNew)
		}
		fmt.Fprint(out, "> ")

		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		title := strings.TrimSpace(sc.Text())
		switch {
		case title == "":
			if p == nil || p.Done() {
				continue
			}
		case strings.EqualFold(title, "quit"):
			return nil
		default:
			fmt.Fprintln(out)
			space, err := synalter.NewVariantSpace(title, r.lookup, r.spaceOptions())
			if err != nil {
				p = nil
				fmt.Fprintf(out, "Could not generate variants: %v\n\n", err)
				continue
			}
			p = pager.New(space, pager.Shuffled(space.Len(), r.seed+int64(titles)), r.config.PageSize)
			titles++
		}

		for _, value := range p.Next() {
			fmt.Fprintln(out, value)
		}
		if !p.Done() {
			fmt.Fprintln(out, p.Status(r.config.StatusTemplate))
		}
		fmt.Fprintln(out)
	}
}
