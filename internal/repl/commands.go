package repl

import "fmt"

// tablesSQL lists user tables, excluding SQLite's internal tables.
const tablesSQL = `SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name;`

// schemaSQL returns the CREATE TABLE text for one table, or for all user
// tables when table is empty. The table name is interpolated verbatim: a
// name containing a quote character produces a malformed query.
func schemaSQL(table string) string {
	if table == "" {
		return `SELECT sql FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name;`
	}
	return fmt.Sprintf(`SELECT sql FROM sqlite_master WHERE type='table' AND name='%s';`, table)
}
