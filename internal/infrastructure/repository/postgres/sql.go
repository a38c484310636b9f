package postgres

import (
	"database/sql"
	"database/sql/driver"

	"github.com/lib/pq"
)

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

func pqStringArray(items []string) driver.Valuer {
	return pq.Array(items)
}

func stringSliceToAny(items []string) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}
