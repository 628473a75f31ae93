package dictionary

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/goccy/go-yaml"
	jsonc "github.com/muhammadmuzzammil1998/jsonc"
	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
)

// maxLineSize is max size of a single jsonl record
const maxLineSize = 4 * 1024 * 1024

// Load reads thesaurus file at path into idx and returns number of entries read.
// Format is picked by extension:
//
//	.json        array of entries, comments allowed
//	.jsonl       one entry per line, or a single json array
//	.yaml .yml   `word: [synonyms]` mapping or list of entries
func Load(idx *Index, path string) (int, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	var entries []Entry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		entries, err = parseJSON(bin)
	case ".jsonl", ".ndjson":
		entries, err = parseJSONLines(bin)
	case ".yaml", ".yml":
		entries, err = parseYAML(bin)
	default:
		return 0, fmt.Errorf("unsupported thesaurus format %s", path)
	}
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	return idx.AddEntries(entries), nil
}

// LoadFiles loads every file matching patterns (plain paths or
// doublestar globs such as `data/**/*.jsonl`) into idx
func LoadFiles(idx *Index, patterns ...string) (int, error) {
	files, err := Expand(patterns...)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, file := range files {
		count, err := Load(idx, file)
		if err != nil {
			return total, err
		}
		gologger.Verbose().Msgf("loaded %v entries from %v", count, file)
		total += count
	}
	return total, nil
}

// Expand resolves plain paths and glob patterns to files
func Expand(patterns ...string) ([]string, error) {
	files := []string{}
	for _, pattern := range patterns {
		matches, err := expand(pattern)
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	return files, nil
}

// SizeOf returns total size of files in bytes
func SizeOf(files ...string) int {
	size := 0
	for _, file := range files {
		if info, err := os.Stat(file); err == nil {
			size += int(info.Size())
		}
	}
	return size
}

func expand(pattern string) ([]string, error) {
	if fileutil.FileExists(pattern) {
		return []string{pattern}, nil
	}
	files, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no thesaurus found for %s", pattern)
	}
	return files, nil
}

func parseJSON(bin []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(jsonc.ToJSON(bin), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseJSONLines(bin []byte) ([]Entry, error) {
	trimmed := bytes.TrimSpace(bin)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		// some thesauri ship as a json array despite the extension
		return parseJSON(trimmed)
	}
	var entries []Entry
	sc := bufio.NewScanner(bytes.NewReader(bin))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for sc.Scan() {
		line++
		text := bytes.TrimSpace(sc.Bytes())
		if len(text) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(text, &e); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		entries = append(entries, e)
	}
	return entries, sc.Err()
}

func parseYAML(bin []byte) ([]Entry, error) {
	var probe interface{}
	if err := yaml.Unmarshal(bin, &probe); err != nil {
		return nil, err
	}
	var entries []Entry
	if _, ok := probe.([]interface{}); ok {
		if err := yaml.Unmarshal(bin, &entries); err != nil {
			return nil, err
		}
		return entries, nil
	}
	var m yaml.MapSlice
	if err := yaml.Unmarshal(bin, &m); err != nil {
		return nil, err
	}
	entries = make([]Entry, 0, len(m))
	for _, item := range m {
		word := fmt.Sprint(item.Key)
		var synonyms []string
		switch v := item.Value.(type) {
		case []interface{}:
			for _, s := range v {
				synonyms = append(synonyms, fmt.Sprint(s))
			}
		case string:
			synonyms = append(synonyms, v)
		case nil:
		default:
			return nil, fmt.Errorf("unexpected synonyms of %q: %v", word, v)
		}
		entries = append(entries, Entry{Word: word, Synonyms: synonyms})
	}
	return entries, nil
}
