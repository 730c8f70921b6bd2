package entities

import "time"

// SelectedAccount is the product tier picked in the storefront:
// a follower bracket with its price and verification flag.
type SelectedAccount struct {
	ID        string
	Title     string
	Followers string
	Price     float64
	Verified  bool
}

// Order is the only persisted entity. Lifecycle is create-only:
// once written it is never mutated or deleted by this system.
type Order struct {
	ID                 string
	Name               string
	Email              string
	Phone              string
	ContactMethod      string
	Message            string
	Country            string
	Username           string
	VerificationStatus string
	SelectedCard       string

	// nil when the customer did not pick a concrete tier
	SelectedAccount *SelectedAccount

	CreatedAt time.Time
	UpdatedAt time.Time
}
