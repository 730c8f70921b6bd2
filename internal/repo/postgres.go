package repo

import (
	"context"
	"fmt"

	"github.com/vldmrch/storefront-orders/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateOrder inserts the order in a single statement and returns it with
// the database-assigned timestamps. This is the only operation the store
// exposes: no read, update or delete path exists.
func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	account, err := marshalAccount(o.SelectedAccount)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to encode selected account: %w", err)
	}

	query, args := r.qb.Insert("orders").
		Columns(
			"order_id", "name", "email", "phone",
			"contact_method", "message", "country", "username",
			"verification_status", "selected_card", "selected_account",
		).
		Values(
			o.ID, o.Name, o.Email, o.Phone,
			nullString(o.ContactMethod), nullString(o.Message),
			nullString(o.Country), nullString(o.Username),
			nullString(o.VerificationStatus), nullString(o.SelectedCard), account,
		).
		Suffix("RETURNING created_at, updated_at").
		MustSql()

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&o.CreatedAt, &o.UpdatedAt); err != nil {
		return entities.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}
	return o, nil
}
