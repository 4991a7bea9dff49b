// Package repository implements the data access layer for the application.
package repository

import "strings"

// isUniqueViolation checks if a DB error is a unique constraint violation.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

// isForeignKeyViolation checks if a DB error is a foreign key violation.
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL foreign key violation SQLSTATE 23503
	return strings.Contains(msg, "foreign key constraint") ||
		strings.Contains(msg, "23503")
}

// mentionsColumn reports whether a constraint error names the given column or
// its table. Postgres includes the violated constraint/index name in the
// message (e.g. idx_users_username), which is enough to key the field error.
func mentionsColumn(err error, column string) bool {
	return strings.Contains(strings.ToLower(err.Error()), column)
}
