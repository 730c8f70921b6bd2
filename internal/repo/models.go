package repo

import (
	"database/sql"
	"encoding/json"

	"github.com/vldmrch/storefront-orders/internal/entities"
)

// selectedAccount is the JSONB shape stored in the selected_account column.
type selectedAccount struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Followers string  `json:"followers"`
	Price     float64 `json:"price"`
	Verified  bool    `json:"verified"`
}

func marshalAccount(a *entities.SelectedAccount) ([]byte, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(selectedAccount{
		ID:        a.ID,
		Title:     a.Title,
		Followers: a.Followers,
		Price:     a.Price,
		Verified:  a.Verified,
	})
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
