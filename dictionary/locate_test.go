package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	root := t.TempDir()
	expected := writeFile(t, root, "en_thesaurus.jsonl", "")
	nested := filepath.Join(root, "bin", "release")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := Locate("en_thesaurus.jsonl", nested)
	require.NoError(t, err)
	require.Equal(t, expected, got)

	_, err = Locate("missing_thesaurus.jsonl", nested)
	require.ErrorContains(t, err, "could not find thesaurus file")
}
