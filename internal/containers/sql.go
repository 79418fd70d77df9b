package containers

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pkg/errors"
)

// executeSQL runs a script of semicolon terminated statements, skipping -- comments
func executeSQL(ctx context.Context, db *sql.DB, script string) error {
	for _, q := range splitStatements(script) {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return errors.Wrapf(err, "when executing > %s", q)
		}
	}
	return nil
}

// splitStatements strips comments and splits script on the semicolons that end statements
func splitStatements(script string) []string {
	lines := strings.Split(script, "\n")

	kept := make([]string, 0, len(lines))
	for _, l := range lines {
		kept = append(kept, excludeComment(l))
	}

	var statements []string
	for _, q := range strings.Split(strings.Join(kept, "\n"), ";") {
		if q = strings.TrimSpace(q); q != "" {
			statements = append(statements, q)
		}
	}
	return statements
}

// excludeComment drops a trailing -- comment from line, leaving quoted text alone
func excludeComment(line string) string {
	var out strings.Builder
	var quote rune

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == '-' && i+1 < len(runes) && runes[i+1] == '-':
			return out.String()
		}
		out.WriteRune(r)
	}
	return out.String()
}
