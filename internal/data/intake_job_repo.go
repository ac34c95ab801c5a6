package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fixhire/fixhire-api/internal/data/pgxutil"
	"github.com/fixhire/fixhire-api/internal/domain/model"
)

// IntakeJobRepo provides database operations for intake jobs. Snapshots,
// preferences, media, and the diagnosis live in JSONB columns.
type IntakeJobRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewIntakeJobRepo creates a new IntakeJobRepo with real time provider.
func NewIntakeJobRepo(db *sql.DB) *IntakeJobRepo {
	return &IntakeJobRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const intakeJobColumns = `id, owner_actor_id, customer_id, vehicle_id, customer_snapshot, vehicle_snapshot,
	obd2_data, symptoms, media, preferences, diagnosis, raw_ai_text, ai_model_id, generated_on,
	status, cancel_notes, created_at, updated_at`

// Create inserts a new intake job with its frozen snapshots and diagnosis.
func (r *IntakeJobRepo) Create(ctx context.Context, job *model.IntakeJob) (*model.IntakeJob, error) {
	if job == nil {
		return nil, errors.New("intake job is required")
	}

	now := r.timeProvider.Now().UTC()
	var out model.IntakeJob
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO intake_jobs (
				owner_actor_id, customer_id, vehicle_id, customer_snapshot, vehicle_snapshot,
				obd2_data, symptoms, media, preferences, diagnosis, raw_ai_text, ai_model_id,
				generated_on, status, cancel_notes, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, '', $15, $15)
			RETURNING `+intakeJobColumns,
			job.OwnerActorID, job.CustomerID, job.VehicleID,
			job.CustomerSnapshot, job.VehicleSnapshot,
			job.OBD2Data, job.Symptoms, job.Media, job.Preferences, job.Diagnosis,
			job.RawAIText, job.AIModelID, job.GeneratedOn,
			model.IntakeStatusInProgress, now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.IntakeJob])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create intake job: %w", err)
	}
	return &out, nil
}

// GetByID retrieves an intake job by ID.
func (r *IntakeJobRepo) GetByID(ctx context.Context, id string) (*model.IntakeJob, error) {
	var job model.IntakeJob
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+intakeJobColumns+` FROM intake_jobs WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		job, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.IntakeJob])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrIntakeNotFound
		}
		return nil, fmt.Errorf("failed to get intake job: %w", err)
	}
	return &job, nil
}

// Update persists status, cancel notes, diagnosis, and media in one write.
// The write only lands when the row still carries the expected status, so a
// transition validated against a stale read cannot overwrite a concurrent one.
func (r *IntakeJobRepo) Update(ctx context.Context, job *model.IntakeJob, expected model.IntakeStatus) (*model.IntakeJob, error) {
	if job == nil {
		return nil, errors.New("intake job is required")
	}

	now := r.timeProvider.Now().UTC()
	var out model.IntakeJob
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE intake_jobs
			SET status = $2, cancel_notes = $3, diagnosis = $4, media = $5, updated_at = $6
			WHERE id = $1 AND status = $7
			RETURNING `+intakeJobColumns,
			job.ID, job.Status, job.CancelNotes, job.Diagnosis, job.Media, now, expected,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.IntakeJob])
		return err
	})
	if err != nil {
		// Row gone or status moved underneath us.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrIntakeStatusChanged
		}
		return nil, fmt.Errorf("failed to update intake job: %w", err)
	}
	return &out, nil
}

// ListByCustomer retrieves trimmed job summaries for a customer, newest
// first. The issue and confidence come out of the diagnosis JSONB.
func (r *IntakeJobRepo) ListByCustomer(ctx context.Context, customerID string, limit int) ([]*model.IntakeJobSummary, error) {
	if limit <= 0 {
		limit = 25
	}

	var rowsOut []model.IntakeJobSummary
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, status,
			       COALESCE(diagnosis->>'mostLikelyIssue', '') AS most_likely_issue,
			       COALESCE((diagnosis->>'confidenceLevel')::float8, 0) AS confidence_level,
			       vehicle_id,
			       LEFT(cancel_notes, 600) AS cancel_notes,
			       created_at, updated_at
			FROM intake_jobs
			WHERE customer_id = $1
			ORDER BY created_at DESC
			LIMIT $2`, customerID, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.IntakeJobSummary])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list intake jobs: %w", err)
	}

	res := make([]*model.IntakeJobSummary, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
