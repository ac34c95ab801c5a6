package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fixhire/fixhire-api/internal/core"
	"github.com/fixhire/fixhire-api/internal/data/pgxutil"
	"github.com/fixhire/fixhire-api/internal/domain/model"
)

// VehicleRepo provides database operations for vehicles. Vehicles are
// insert-only; corrections go through a new intake.
type VehicleRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewVehicleRepo creates a new VehicleRepo with real time provider.
func NewVehicleRepo(db *sql.DB) *VehicleRepo {
	return &VehicleRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const vehicleColumns = `id, owner_actor_id, customer_id, vin, plate, year, make, model, engine, transmission, drop_off_date, created_at, updated_at`

// Create inserts a new vehicle.
func (r *VehicleRepo) Create(ctx context.Context, params core.CreateVehicleParams) (*model.Vehicle, error) {
	now := r.timeProvider.Now().UTC()
	in := params.Input

	var out model.Vehicle
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO vehicles (owner_actor_id, customer_id, vin, plate, year, make, model, engine, transmission, drop_off_date, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
			RETURNING `+vehicleColumns,
			params.OwnerActorID, params.CustomerID,
			in.VIN, in.Plate, in.Year, in.Make, in.Model, in.Engine, in.Transmission, in.DropOffDate,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Vehicle])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a vehicle by ID.
func (r *VehicleRepo) GetByID(ctx context.Context, id string) (*model.Vehicle, error) {
	var v model.Vehicle
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		v, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Vehicle])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return &v, nil
}

// ListByCustomer retrieves the customer's vehicles, newest first.
func (r *VehicleRepo) ListByCustomer(ctx context.Context, customerID string, limit int) ([]*model.Vehicle, error) {
	if limit <= 0 {
		limit = 25
	}

	var rowsOut []model.Vehicle
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+vehicleColumns+`
			FROM vehicles
			WHERE customer_id = $1
			ORDER BY created_at DESC
			LIMIT $2`, customerID, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Vehicle])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	res := make([]*model.Vehicle, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
