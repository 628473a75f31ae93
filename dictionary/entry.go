package dictionary

// Entry is one thesaurus record. A headword may appear in many
// entries (one per part of speech), their synonyms are merged.
type Entry struct {
	Key      string   `json:"key" yaml:"key"`
	Pos      string   `json:"pos" yaml:"pos"`
	Word     string   `json:"word" yaml:"word"`
	Synonyms []string `json:"synonyms" yaml:"synonyms"`
}
