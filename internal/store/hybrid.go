package store

import (
	"strings"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/hmap/store/hybrid"
)

// values are joined with a separator that can't appear in a folded word
const separator = "\x00"

type HybridBackend struct {
	storage *hybrid.HybridMap
	count   int
}

func NewHybridBackend() (*HybridBackend, error) {
	db, err := hybrid.New(hybrid.DefaultDiskOptions)
	if err != nil {
		return nil, err
	}
	return &HybridBackend{storage: db}, nil
}

func (h *HybridBackend) Get(key string) ([]string, bool) {
	bin, ok := h.storage.Get(key)
	if !ok {
		return nil, false
	}
	return decode(bin), true
}

func (h *HybridBackend) Set(key string, values []string) error {
	if _, ok := h.storage.Get(key); !ok {
		h.count++
	}
	return h.storage.Set(key, encode(values))
}

func (h *HybridBackend) Len() int {
	return h.count
}

func (h *HybridBackend) IterCallback(callback func(key string, values []string)) {
	h.storage.Scan(func(k, v []byte) error {
		callback(string(k), decode(v))
		return nil
	})
}

func (h *HybridBackend) Cleanup() {
	if err := h.storage.Close(); err != nil {
		gologger.Verbose().Msgf("store: hybrid: failed to close: %v", err)
	}
}

func encode(values []string) []byte {
	return []byte(strings.Join(values, separator))
}

func decode(bin []byte) []string {
	if len(bin) == 0 {
		return []string{}
	}
	return strings.Split(string(bin), separator)
}
