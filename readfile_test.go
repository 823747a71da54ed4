package webprune

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{
			name: "plain utf-8",
			raw:  []byte("café"),
			want: "café",
		},
		{
			name: "utf-8 with BOM stripped",
			raw:  append([]byte{0xEF, 0xBB, 0xBF}, []byte("café")...),
			want: "café",
		},
		{
			name: "latin-1 fallback",
			raw:  []byte{'c', 'a', 'f', 0xE9},
			want: "café",
		},
		{
			name: "empty",
			raw:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DecodeText(tt.raw))
		})
	}
}

func TestReadFileSafe(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "styles.css")
	require.NoError(t, os.WriteFile(path, []byte(".card {}"), 0o644))

	content, err := ReadFileSafe(path)
	require.NoError(t, err)
	require.Equal(t, ".card {}", content)
}

func TestReadFileSafeMissingFile(t *testing.T) {
	content, err := ReadFileSafe(filepath.Join(t.TempDir(), "missing.css"))
	require.Error(t, err)
	require.Empty(t, content)
}
