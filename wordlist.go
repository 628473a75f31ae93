package synalter

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultThesaurus is file name searched for when no dictionary is given
	DefaultThesaurus = "en_thesaurus.jsonl"
	// DefaultPageSize is number of variants shown per page
	DefaultPageSize = 50
	// DefaultStatusTemplate is printed when more results are available
	DefaultStatusTemplate = "Shown {{shown}} of {{total}}"
)

//go:embed config.yaml
var DefaultConfigBin []byte

// DefaultConfig is parsed from DefaultConfigBin and may be replaced
// by the user config at startup
var DefaultConfig Config

func init() {
	if err := yaml.Unmarshal(DefaultConfigBin, &DefaultConfig); err != nil {
		panic(err)
	}
}
