package webprune

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readBack(t *testing.T, root, rel string) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(root, rel))
	require.NoError(t, err)
	return string(raw)
}

func fixtureProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeProjectFile(t, root, "index.html", `<div class="card"></div>`)
	writeProjectFile(t, root, "styles.css", ".card { color: red; }\n.ghost { color: blue; }")
	writeProjectFile(t, root, "app.js", "function used(){}\nfunction unused(){}\nused();")
	return root
}

func TestRun_RemovesUnusedDeclarations(t *testing.T) {
	root := fixtureProject(t)

	result, err := Run(Config{Root: root})
	require.NoError(t, err)

	require.Equal(t, 2, result.FilesChanged())

	wantCSS := ".card { color: red; }"
	wantJS := "function used(){}\nused();"
	assert.Equal(t, wantCSS, readBack(t, root, "styles.css"))
	assert.Equal(t, wantJS, readBack(t, root, "app.js"))
	assert.Equal(t, `<div class="card"></div>`, readBack(t, root, "index.html"))

	// CSS files are processed before JS files.
	records := result.Records
	require.Len(t, records, 2)
	assert.Equal(t, "styles.css", records[0].File)
	assert.Equal(t, FileTypeCSS, records[0].Type)
	assert.Equal(t, []string{".ghost"}, records[0].Removed)
	assert.Equal(t, "app.js", records[1].File)
	assert.Equal(t, FileTypeJS, records[1].Type)
	assert.Equal(t, []string{"unused"}, records[1].Removed)

	// Bytes-saved accounting is the literal byte-length delta.
	origCSS := ".card { color: red; }\n.ghost { color: blue; }"
	assert.Equal(t, len(origCSS)-len(wantCSS), records[0].BytesSaved())
	assert.Equal(t, records[0].BytesSaved()+records[1].BytesSaved(), result.BytesSaved())

	assert.Equal(t, wantCSS, result.NewContents["styles.css"])
	assert.Equal(t, wantJS, result.NewContents["app.js"])
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	root := fixtureProject(t)

	result, err := Run(Config{Root: root, DryRun: true})
	require.NoError(t, err)

	require.Equal(t, 2, result.FilesChanged())
	assert.Equal(t, ".card { color: red; }\n.ghost { color: blue; }", readBack(t, root, "styles.css"))
	assert.Equal(t, "function used(){}\nfunction unused(){}\nused();", readBack(t, root, "app.js"))

	// The rewritten text is still available for reporting.
	assert.Equal(t, ".card { color: red; }", result.NewContents["styles.css"])
}

func TestRun_SecondRunFindsNothing(t *testing.T) {
	root := fixtureProject(t)

	first, err := Run(Config{Root: root})
	require.NoError(t, err)
	require.Equal(t, 2, first.FilesChanged())

	second, err := Run(Config{Root: root})
	require.NoError(t, err)
	assert.Equal(t, 0, second.FilesChanged())
	assert.Empty(t, second.Records)
}

// Reference decisions are made against the corpus snapshot taken before any
// file is rewritten: a selector referenced only from a line that this same
// run deletes is still kept.
func TestRun_ReferencesUsePreEditSnapshot(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "styles.css", "#app { color: red; }")
	writeProjectFile(t, root, "main.js", `var stale = document.querySelector("#app");`)

	result, err := Run(Config{Root: root})
	require.NoError(t, err)

	// The stale variable is unused, so its line is deleted.
	assert.Equal(t, "", readBack(t, root, "main.js"))

	// #app was referenced in the pre-edit corpus, so the rule survives.
	assert.Equal(t, "#app { color: red; }", readBack(t, root, "styles.css"))

	require.Len(t, result.Records, 1)
	assert.Equal(t, "main.js", result.Records[0].File)
	assert.Equal(t, []string{"stale"}, result.Records[0].Removed)
}

func TestRun_VerifyWarnsAboutDamagedOutput(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "app.js", "function ghost() {\n  return 1;\n}")

	result, err := Run(Config{Root: root, Verify: true})
	require.NoError(t, err)

	require.Equal(t, 1, result.FilesChanged())
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "app.js")
}

func TestRun_EmptyProject(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "index.html", "<html></html>")

	_, err := Run(Config{Root: root})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNoFiles))
}

func TestRun_MissingRoot(t *testing.T) {
	_, err := Run(Config{Root: filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrRootNotFound))
}
