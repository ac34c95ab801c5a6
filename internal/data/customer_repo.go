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

// CustomerRepo provides database operations for repair-shop customers.
type CustomerRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewCustomerRepo creates a new CustomerRepo with real time provider.
func NewCustomerRepo(db *sql.DB) *CustomerRepo {
	return &CustomerRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const customerColumns = `id, owner_actor_id, full_name, phone, email, preferred_contact_method, created_at, updated_at`

// UpsertByPhone inserts or refreshes the customer keyed by (owner, phone).
// Provided name/email/contact method overwrite the stored values; the phone
// itself never changes through this path.
func (r *CustomerRepo) UpsertByPhone(ctx context.Context, params core.UpsertCustomerParams) (*model.Customer, error) {
	now := r.timeProvider.Now().UTC()
	in := params.Input

	var out model.Customer
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO customers (owner_actor_id, full_name, phone, email, preferred_contact_method, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $6)
			ON CONFLICT ON CONSTRAINT customers_owner_phone_key DO UPDATE SET
				full_name = EXCLUDED.full_name,
				email = EXCLUDED.email,
				preferred_contact_method = EXCLUDED.preferred_contact_method,
				updated_at = EXCLUDED.updated_at
			RETURNING `+customerColumns,
			params.OwnerActorID, in.FullName, in.Phone, in.Email, in.PreferredContactMethod, now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Customer])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to upsert customer: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a customer by ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	return r.getByQuery(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
}

// FindByPhone retrieves a customer by canonical phone within one tenant.
func (r *CustomerRepo) FindByPhone(ctx context.Context, ownerActorID, phone string) (*model.Customer, error) {
	return r.getByQuery(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE owner_actor_id = $1 AND phone = $2`,
		ownerActorID, phone)
}

func (r *CustomerRepo) getByQuery(ctx context.Context, q string, args ...any) (*model.Customer, error) {
	var c model.Customer
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		c, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Customer])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &c, nil
}
