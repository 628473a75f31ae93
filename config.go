package synalter

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Dictionaries are thesaurus files or glob patterns to load
	Dictionaries []string `yaml:"dictionaries,omitempty"`
	// Synonyms is an inline thesaurus merged into loaded dictionaries
	Synonyms map[string][]string `yaml:"synonyms,omitempty"`
	// PageSize is number of results shown per page in interactive mode
	PageSize int `yaml:"page-size,omitempty"`
	// MaxVariants caps variants generated per phrase
	MaxVariants int `yaml:"max-variants,omitempty"`
	// StatusTemplate is shown after a partial page ({{shown}}, {{total}}, {{page}})
	StatusTemplate string `yaml:"status-template,omitempty"`
}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Merge overrides zero fields of c with values of other.
// Synonyms of both configs are combined, c wins on conflicts.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if len(c.Dictionaries) == 0 {
		c.Dictionaries = other.Dictionaries
	}
	if c.PageSize <= 0 {
		c.PageSize = other.PageSize
	}
	if c.MaxVariants <= 0 {
		c.MaxVariants = other.MaxVariants
	}
	if c.StatusTemplate == "" {
		c.StatusTemplate = other.StatusTemplate
	}
	if len(other.Synonyms) > 0 {
		merged := make(map[string][]string, len(c.Synonyms)+len(other.Synonyms))
		for k, v := range other.Synonyms {
			merged[k] = v
		}
		for k, v := range c.Synonyms {
			merged[k] = v
		}
		c.Synonyms = merged
	}
}

// Generate Sample creates a sample yaml file with default/sample values
func GenerateSample(filePath string) error {
	bin, err := yaml.Marshal(DefaultConfig)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}
