package webprune

import (
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/tdewolff/parse/v2/js"
)

// The verify pass lexes rewritten output and reports structural damage the
// line-scoped removers can introduce, most notably the orphaned closing
// braces left behind when a multi-line JS function loses only its
// declaration line. It never drives removal decisions.

// VerifyCSS lexes rewritten stylesheet text and returns human-readable
// issues: unbalanced braces or a lexer error.
func VerifyCSS(text string) []string {
	var issues []string

	lexer := css.NewLexer(parse.NewInputString(text))
	depth := 0
	for {
		tt, _ := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				issues = append(issues, fmt.Sprintf("rewritten CSS no longer lexes: %v", err))
			}
			break
		}

		switch tt {
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
		}
	}

	if depth != 0 {
		issues = append(issues, fmt.Sprintf("rewritten CSS has unbalanced braces (depth %+d)", depth))
	}

	return issues
}

// VerifyJS lexes rewritten script text and returns human-readable issues.
func VerifyJS(text string) []string {
	var issues []string

	lexer := js.NewLexer(parse.NewInputString(text))
	depth := 0
	for {
		tt, _ := lexer.Next()
		if tt == js.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				issues = append(issues, fmt.Sprintf("rewritten JS no longer lexes: %v", err))
			}
			break
		}

		switch tt {
		case js.OpenBraceToken:
			depth++
		case js.CloseBraceToken:
			depth--
		}
	}

	if depth != 0 {
		issues = append(issues, fmt.Sprintf("rewritten JS has unbalanced braces (depth %+d)", depth))
	}

	return issues
}
