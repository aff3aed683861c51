package dialect

import (
	"fmt"
	"strings"
)

// Names lists the supported dialects.
var Names = []string{"ansi", "postgres", "mysql", "mssql", "oracle"}

// GetDialect returns the Dialect for a name. An empty name selects ansi,
// which leaves identifiers exactly as written.
func GetDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ansi":
		return &AnsiDialect{}, nil
	case "postgres", "postgresql":
		return &PostgresDialect{}, nil
	case "mysql", "mariadb":
		return &MysqlDialect{}, nil
	case "sqlserver", "mssql":
		return &MSSQLDialect{}, nil
	case "oracle":
		return &OracleDialect{}, nil
	default:
		return nil, fmt.Errorf("unknown SQL dialect %q (expected one of %s)", name, strings.Join(Names, ", "))
	}
}

// Ensure interface implementation
var _ Dialect = (*AnsiDialect)(nil)
var _ Dialect = (*MysqlDialect)(nil)
var _ Dialect = (*PostgresDialect)(nil)
var _ Dialect = (*MSSQLDialect)(nil)
var _ Dialect = (*OracleDialect)(nil)
