package model

import (
	"time"

	"github.com/fixhire/fixhire-api/internal/domain/sanitize"
)

// User is a registered account. PasswordHash is a bcrypt digest and never
// leaves the data layer.
type User struct {
	ID           string    `json:"id"            db:"id"`
	Name         string    `json:"name"          db:"name"`
	Email        string    `json:"email"         db:"email"`
	PasswordHash string    `json:"-"             db:"password_hash"`
	Role         Role      `json:"role"          db:"role"`
	CreatedAt    time.Time `json:"created_at"    db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"    db:"updated_at"`
}

// Actor returns the authorization principal for the user.
func (u User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role}
}

// RegisterRequest is the untrusted signup payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Sanitize normalizes everything except the password, which is hashed as
// given. An unknown role defaults to applicant.
func (r *RegisterRequest) Sanitize() {
	r.Name = sanitize.CleanText(r.Name, 120)
	r.Email = sanitize.CleanEmail(r.Email)
	if role, ok := ParseRole(r.Role); ok && role != RoleAdmin {
		r.Role = string(role)
	} else {
		r.Role = string(RoleApplicant)
	}
}

// Validate collects field problems. Call Sanitize first. Passwords need a
// mix of cases and a digit on top of the length floor.
func (r *RegisterRequest) Validate() []string {
	var details []string
	if len([]rune(r.Name)) < 2 {
		details = append(details, "Name is required (min 2 chars).")
	}
	if r.Email == "" || !sanitize.IsValidEmail(r.Email) {
		details = append(details, "Valid email is required.")
	}
	if len(r.Password) < 8 {
		details = append(details, "Password must be at least 8 characters.")
	} else if !passwordStrongEnough(r.Password) {
		details = append(details, "Password must include uppercase, lowercase, and a number.")
	}
	return details
}

func passwordStrongEnough(p string) bool {
	var lower, upper, digit bool
	for _, c := range p {
		switch {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= '0' && c <= '9':
			digit = true
		}
	}
	return lower && upper && digit
}

// LoginRequest is the untrusted login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Sanitize normalizes the email; the password is compared as given.
func (r *LoginRequest) Sanitize() {
	r.Email = sanitize.CleanEmail(r.Email)
}

// Validate collects field problems. Call Sanitize first.
func (r *LoginRequest) Validate() []string {
	var details []string
	if r.Email == "" || !sanitize.IsValidEmail(r.Email) {
		details = append(details, "Valid email is required.")
	}
	if r.Password == "" {
		details = append(details, "Password is required.")
	}
	return details
}
