package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrProductNotFound       = errors.New("product not found")
	ErrOrderNotFound         = errors.New("order not found")
	ErrEmailTaken            = errors.New("email already registered")
	ErrUserHasOrders         = errors.New("user has existing orders")
	ErrProductInOrders       = errors.New("product belongs to existing orders")
	ErrDuplicateOrderProduct = errors.New("product already added to this order")
	ErrProductNotInOrder     = errors.New("product is not associated with this order")
	ErrInvalidOrderDate      = errors.New("invalid order date")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
