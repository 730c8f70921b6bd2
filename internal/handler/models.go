package handler

import (
	"time"

	"github.com/vldmrch/storefront-orders/internal/entities"
)

// Envelope is the response shape every endpoint answers with.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// SelectedAccount mirrors the tier object the storefront attaches to a
// submission.
type SelectedAccount struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Followers string  `json:"followers"`
	Price     float64 `json:"price"`
	Verified  bool    `json:"verified"`
}

// CreateOrderRequest is the POST /api/orders body. Only name, email and
// phone are required here; format validation lives in the client.
type CreateOrderRequest struct {
	Name               string           `json:"name" validate:"required"`
	Email              string           `json:"email" validate:"required"`
	Phone              string           `json:"phone" validate:"required"`
	ContactMethod      string           `json:"contactMethod"`
	Message            string           `json:"message"`
	Country            string           `json:"country"`
	Username           string           `json:"username"`
	VerificationStatus string           `json:"verificationStatus"`
	SelectedCard       string           `json:"selectedCard"`
	SelectedAccount    *SelectedAccount `json:"selectedAccount"`
}

// Order is the persisted record as it appears on the wire. The _id and
// camelCase timestamp names are kept for compatibility with the
// storefront client, which predates this service.
type Order struct {
	ID                 string           `json:"_id"`
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	Phone              string           `json:"phone"`
	ContactMethod      string           `json:"contactMethod,omitempty"`
	Message            string           `json:"message,omitempty"`
	Country            string           `json:"country,omitempty"`
	Username           string           `json:"username,omitempty"`
	VerificationStatus string           `json:"verificationStatus,omitempty"`
	SelectedCard       string           `json:"selectedCard,omitempty"`
	SelectedAccount    *SelectedAccount `json:"selectedAccount,omitempty"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

func RequestToEntity(req CreateOrderRequest) entities.Order {
	order := entities.Order{
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		ContactMethod:      req.ContactMethod,
		Message:            req.Message,
		Country:            req.Country,
		Username:           req.Username,
		VerificationStatus: req.VerificationStatus,
		SelectedCard:       req.SelectedCard,
	}
	if req.SelectedAccount != nil {
		order.SelectedAccount = &entities.SelectedAccount{
			ID:        req.SelectedAccount.ID,
			Title:     req.SelectedAccount.Title,
			Followers: req.SelectedAccount.Followers,
			Price:     req.SelectedAccount.Price,
			Verified:  req.SelectedAccount.Verified,
		}
	}
	return order
}

func OrderEntityToJSON(o entities.Order) Order {
	order := Order{
		ID:                 o.ID,
		Name:               o.Name,
		Email:              o.Email,
		Phone:              o.Phone,
		ContactMethod:      o.ContactMethod,
		Message:            o.Message,
		Country:            o.Country,
		Username:           o.Username,
		VerificationStatus: o.VerificationStatus,
		SelectedCard:       o.SelectedCard,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
	if o.SelectedAccount != nil {
		order.SelectedAccount = &SelectedAccount{
			ID:        o.SelectedAccount.ID,
			Title:     o.SelectedAccount.Title,
			Followers: o.SelectedAccount.Followers,
			Price:     o.SelectedAccount.Price,
			Verified:  o.SelectedAccount.Verified,
		}
	}
	return order
}
