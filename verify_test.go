package webprune

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyCSS(t *testing.T) {
	t.Run("balanced", func(t *testing.T) {
		issues := VerifyCSS(".card {\n  color: red;\n}\n")
		assert.Empty(t, issues)
	})

	t.Run("missing closing brace", func(t *testing.T) {
		issues := VerifyCSS(".card {\n  color: red;\n")
		require.Len(t, issues, 1)
		assert.Contains(t, issues[0], "unbalanced braces")
	})

	t.Run("stray closing brace", func(t *testing.T) {
		issues := VerifyCSS(".card {\n  color: red;\n}\n}\n")
		require.NotEmpty(t, issues)
		assert.Contains(t, issues[0], "unbalanced braces")
	})
}

func TestVerifyJS(t *testing.T) {
	t.Run("balanced", func(t *testing.T) {
		issues := VerifyJS("function keep() {\n  return 1;\n}\nkeep();\n")
		assert.Empty(t, issues)
	})

	t.Run("orphaned closing brace", func(t *testing.T) {
		issues := VerifyJS("  return 1;\n}\n")
		require.NotEmpty(t, issues)
		assert.Contains(t, issues[0], "unbalanced braces")
	})
}

// The verify pass is what makes the line-scoped JS removal damage visible.
func TestVerifyJS_FlagsMultiLineRemovalDamage(t *testing.T) {
	input := "function ghost() {\n  return 1;\n}\nkeep();"
	rewritten := RemoveUnusedJSCode(input, identSet(Identifier{Name: "ghost", Form: DeclFunction}))

	issues := VerifyJS(rewritten)
	require.NotEmpty(t, issues)
}
