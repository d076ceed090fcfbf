package postgres

import (
	"errors"

	"hrms-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapUniqueViolation translates postgres duplicate-key failures into the
// domain error the usecases branch on.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrDuplicateEmail
	}
	return err
}
