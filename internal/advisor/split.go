package advisor

import (
	"strings"

	"github.com/dolthub/vitess/go/vt/sqlparser"
)

// Statement is one statement of a SQL script and the one-based line it
// starts on.
type Statement struct {
	Text string
	Line int
}

// Split cuts script into statements. Empty statements are dropped.
func Split(script string) ([]Statement, error) {
	pieces, err := sqlparser.SplitStatementToPieces(script)
	if err != nil {
		return nil, err
	}
	stmts := make([]Statement, 0, len(pieces))
	cursor, line := 0, 1
	for _, piece := range pieces {
		text := strings.TrimSpace(piece)
		if text == "" {
			continue
		}
		if i := strings.Index(script[cursor:], text); i >= 0 {
			line += strings.Count(script[cursor:cursor+i], "\n")
			stmts = append(stmts, Statement{Text: text, Line: line})
			line += strings.Count(text, "\n")
			cursor += i + len(text)
			continue
		}
		stmts = append(stmts, Statement{Text: text, Line: line})
	}
	return stmts, nil
}
