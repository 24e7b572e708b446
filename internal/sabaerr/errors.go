// Package sabaerr formats lexical and parse errors with source context,
// in the style of the teacher's internal/errors package: a position, the
// offending source line, and a caret pointing at the column.
package sabaerr

import (
	"fmt"
	"strings"

	"github.com/cwbudde/saba/pkg/token"
)

// SourceError is a lexical or parse error tied to a position in the
// original source text (spec.md §7: both classes surface to the
// embedder before execution begins).
type SourceError struct {
	Pos     token.Position
	Message string
	Source  string
}

func (e *SourceError) Error() string {
	return e.Format()
}

// Format renders "line:col: message", the source line, and a caret.
func (e *SourceError) Format() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)

	line := sourceLine(e.Source, e.Pos.Line)
	if line != "" {
		sb.WriteString("\n")
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		col := e.Pos.Column
		if col < 1 {
			col = 1
		}
		sb.WriteString(strings.Repeat(" ", len(prefix)+col-1))
		sb.WriteString("^")
	}

	return sb.String()
}

func sourceLine(source string, line int) string {
	if line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}
