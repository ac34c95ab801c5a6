package model

import (
	"strconv"
	"time"

	"github.com/fixhire/fixhire-api/internal/domain/sanitize"
)

const minVehicleYear = 1950

// Vehicle is created once per intake job and is immutable afterwards;
// corrections go through a new job.
type Vehicle struct {
	ID           string    `json:"id"             db:"id"`
	OwnerActorID string    `json:"owner_actor_id" db:"owner_actor_id"`
	CustomerID   string    `json:"customer_id"    db:"customer_id"`
	VIN          string    `json:"vin"            db:"vin"`
	Plate        string    `json:"plate"          db:"plate"`
	Year         string    `json:"year"           db:"year"`
	Make         string    `json:"make"           db:"make"`
	Model        string    `json:"model"          db:"model"`
	Engine       string    `json:"engine"         db:"engine"`
	Transmission string    `json:"transmission"   db:"transmission"`
	DropOffDate  string    `json:"drop_off_date"  db:"drop_off_date"`
	CreatedAt    time.Time `json:"created_at"     db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"     db:"updated_at"`
}

// VehicleInput is the untrusted vehicle block of an intake payload.
type VehicleInput struct {
	VIN          string `json:"vin"`
	Plate        string `json:"plate"`
	Year         string `json:"year"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Engine       string `json:"engine"`
	Transmission string `json:"transmission"`
	DropOffDate  string `json:"drop_off_date"`
}

// Sanitize normalizes the vehicle block in place.
func (v *VehicleInput) Sanitize() {
	v.VIN = sanitize.NormalizeVin(v.VIN)
	v.Plate = sanitize.NormalizePlate(v.Plate)
	v.Year = sanitize.CleanText(v.Year, 10)
	v.Make = sanitize.CleanText(v.Make, 80)
	v.Model = sanitize.CleanText(v.Model, 120)
	v.Engine = sanitize.CleanText(v.Engine, 120)
	v.Transmission = sanitize.CleanText(v.Transmission, 20)
	v.DropOffDate = sanitize.CleanText(v.DropOffDate, 10)
}

// Validate appends field-level problems to details and returns the result.
// All vehicle fields are optional, but provided values must be well formed.
func (v *VehicleInput) Validate(now time.Time, details []string) []string {
	if v.VIN != "" && !sanitize.IsValidVin(v.VIN) {
		details = append(details, "vehicle.vin must be a valid 17-character VIN (no I/O/Q).")
	}
	if v.DropOffDate != "" && !sanitize.IsISODate(v.DropOffDate) {
		details = append(details, "vehicle.drop_off_date must be YYYY-MM-DD.")
	}
	if v.Year != "" {
		y, err := strconv.Atoi(v.Year)
		if err != nil || y < minVehicleYear || y > now.Year()+1 {
			details = append(details, "vehicle.year must be a valid year (1950..next year).")
		}
	}
	return details
}
