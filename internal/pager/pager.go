package pager

import "github.com/projectdiscovery/synalter"

// Source is a random access list of results
type Source interface {
	Len() int
	At(i int) string
}

// SliceSource adapts a string slice to Source
type SliceSource []string

func (s SliceSource) Len() int         { return len(s) }
func (s SliceSource) At(i int) string { return s[i] }

// Pager walks a Source page by page in given Order
type Pager struct {
	src   Source
	order Order
	size  int
	shown int
	page  int
}

// New returns a pager over src. size <= 0 uses synalter.DefaultPageSize
func New(src Source, order Order, size int) *Pager {
	if order == nil {
		order = Identity()
	}
	if size <= 0 {
		size = synalter.DefaultPageSize
	}
	return &Pager{src: src, order: order, size: size}
}

// Next returns next page of results (empty when done)
func (p *Pager) Next() []string {
	total := p.src.Len()
	end := p.shown + p.size
	if end > total {
		end = total
	}
	results := make([]string, 0, end-p.shown)
	for ; p.shown < end; p.shown++ {
		results = append(results, p.src.At(p.order.Index(p.shown)))
	}
	if len(results) > 0 {
		p.page++
	}
	return results
}

// Shown returns number of results returned so far
func (p *Pager) Shown() int {
	return p.shown
}

// Total returns number of results
func (p *Pager) Total() int {
	return p.src.Len()
}

// Done returns true if all results were returned
func (p *Pager) Done() bool {
	return p.shown >= p.src.Len()
}

// Status renders template with {{shown}}, {{total}} and {{page}}
func (p *Pager) Status(template string) string {
	return synalter.Replace(template, map[string]interface{}{
		"shown": p.shown,
		"total": p.Total(),
		"page":  p.page,
	})
}
