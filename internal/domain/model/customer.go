package model

import (
	"time"

	"github.com/fixhire/fixhire-api/internal/domain/sanitize"
)

// ContactMethod is how a customer prefers to be reached.
type ContactMethod string

const (
	ContactMethodText  ContactMethod = "text"
	ContactMethodEmail ContactMethod = "email"
)

// Customer is a repair-shop customer, unique per (owner, phone).
// Customers are created or updated on job intake and never deleted here.
type Customer struct {
	ID                     string        `json:"id"                       db:"id"`
	OwnerActorID           string        `json:"owner_actor_id"           db:"owner_actor_id"`
	FullName               string        `json:"full_name"                db:"full_name"`
	Phone                  string        `json:"phone"                    db:"phone"`
	Email                  string        `json:"email"                    db:"email"`
	PreferredContactMethod ContactMethod `json:"preferred_contact_method" db:"preferred_contact_method"`
	CreatedAt              time.Time     `json:"created_at"               db:"created_at"`
	UpdatedAt              time.Time     `json:"updated_at"               db:"updated_at"`
}

// CustomerInput is the untrusted customer block of an intake payload.
type CustomerInput struct {
	FullName               string `json:"full_name"`
	Phone                  string `json:"phone"`
	Email                  string `json:"email"`
	PreferredContactMethod string `json:"preferred_contact_method"`
}

// Sanitize normalizes the customer block in place. Anything that is not
// explicitly "email" falls back to "text".
func (c *CustomerInput) Sanitize() {
	c.FullName = sanitize.CleanText(c.FullName, 200)
	c.Phone = sanitize.NormalizePhone(c.Phone)
	c.Email = sanitize.CleanEmail(c.Email)
	if c.PreferredContactMethod != string(ContactMethodEmail) {
		c.PreferredContactMethod = string(ContactMethodText)
	}
}

// Validate appends field-level problems to details and returns the result.
// Call Sanitize first.
func (c *CustomerInput) Validate(details []string) []string {
	if c.Phone == "" {
		details = append(details, "customer.phone is required.")
	} else if !sanitize.IsLikelyPhone(c.Phone) {
		details = append(details, "customer.phone must be a valid phone number.")
	}
	if c.FullName != "" && len([]rune(c.FullName)) < 2 {
		details = append(details, "customer.full_name must be at least 2 characters if provided.")
	}
	if !sanitize.IsValidEmail(c.Email) {
		details = append(details, "customer.email is invalid.")
	}
	return details
}
