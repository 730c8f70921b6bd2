package client

import (
	"regexp"
	"strings"
)

// ValidContactMethods are the contact preferences the storefront offers.
var ValidContactMethods = []string{"telegram", "whatsapp", "email", "discord"}

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>?`)
	breakPattern = regexp.MustCompile(`[\r\n]`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[\d\s+()-]*$`)
)

// Sanitize strips HTML-tag-like substrings and line breaks, then trims
// surrounding whitespace. It is applied to every text field before
// transmission.
func Sanitize(input string) string {
	out := tagPattern.ReplaceAllString(input, "")
	out = breakPattern.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}

// OrderForm carries the raw storefront form fields.
type OrderForm struct {
	Name               string
	Email              string
	Phone              string
	ContactMethod      string
	Message            string
	Country            string
	Username           string
	VerificationStatus string
}

// Sanitized returns a copy with Sanitize applied to every field.
func (f OrderForm) Sanitized() OrderForm {
	return OrderForm{
		Name:               Sanitize(f.Name),
		Email:              Sanitize(f.Email),
		Phone:              Sanitize(f.Phone),
		ContactMethod:      Sanitize(f.ContactMethod),
		Message:            Sanitize(f.Message),
		Country:            Sanitize(f.Country),
		Username:           Sanitize(f.Username),
		VerificationStatus: Sanitize(f.VerificationStatus),
	}
}

// FieldError names the form field that failed and carries the message
// shown next to it.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// Validate checks the form rules in a fixed order; the first failure
// wins and blocks submission.
func (f OrderForm) Validate() *FieldError {
	if strings.TrimSpace(f.Name) == "" {
		return &FieldError{Field: "name", Message: "Please enter your name"}
	}
	if strings.TrimSpace(f.Email) == "" {
		return &FieldError{Field: "email", Message: "Please enter your email address"}
	}
	if strings.ContainsAny(f.Email, "\r\n") || !validEmail(f.Email) {
		return &FieldError{Field: "email", Message: "Please enter a valid email address"}
	}
	if f.Phone != "" && !phonePattern.MatchString(f.Phone) {
		return &FieldError{Field: "phone", Message: "Please enter a valid phone number"}
	}
	if f.ContactMethod == "" {
		return &FieldError{Field: "contactMethod", Message: "Please select a contact method"}
	}
	if f.ContactMethod == "discord" && strings.TrimSpace(f.Username) == "" {
		return &FieldError{Field: "username", Message: "Please enter your Discord username"}
	}
	if f.Country == "" {
		return &FieldError{Field: "country", Message: "Please select a country"}
	}
	return nil
}

// validEmail applies the storefront's deliberately simple shape check:
// one @, dotted domain, no "..", top-level label of 2+, local part 1-64.
func validEmail(email string) bool {
	if !emailPattern.MatchString(email) {
		return false
	}
	if strings.Count(email, "@") != 1 {
		return false
	}
	if strings.Contains(email, "..") {
		return false
	}
	local, domain, _ := strings.Cut(email, "@")
	if !strings.Contains(domain, ".") {
		return false
	}
	labels := strings.Split(domain, ".")
	if len(labels[len(labels)-1]) < 2 {
		return false
	}
	if len(local) < 1 || len(local) > 64 {
		return false
	}
	return true
}
