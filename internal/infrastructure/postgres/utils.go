package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// nullableString devuelve "" si s es nil (columnas de un LEFT JOIN sin match).
func nullableString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// textArray evita enviar NULL a columnas TEXT[] NOT NULL.
func textArray(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
