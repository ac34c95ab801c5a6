package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fixhire/fixhire-api/internal/core"
	"github.com/fixhire/fixhire-api/internal/data/pgxutil"
	"github.com/fixhire/fixhire-api/internal/domain/model"
)

// ApplicationRepo provides database operations for job applications and
// their append-only status history. Status writes and history appends always
// commit in one transaction.
type ApplicationRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewApplicationRepo creates a new ApplicationRepo with real time provider.
func NewApplicationRepo(db *sql.DB) *ApplicationRepo {
	return &ApplicationRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const applicationColumns = `id, job_id, applicant_actor_id, status, cover_letter, submitted_at, created_at, updated_at`

const historyColumns = `id, application_id, from_status, to_status, changed_by_actor, note, created_at`

// CreateWithHistory inserts the application and its initial submission
// history row atomically. A duplicate (job, applicant) pair surfaces as
// ErrDuplicateApplication.
func (r *ApplicationRepo) CreateWithHistory(
	ctx context.Context,
	app *model.JobApplication,
	history *model.StatusHistory,
) (*model.JobApplication, error) {
	if app == nil || history == nil {
		return nil, errors.New("application and history are required")
	}

	now := r.timeProvider.Now().UTC()
	var out model.JobApplication
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			INSERT INTO job_applications (job_id, applicant_actor_id, status, cover_letter, submitted_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5, $5)
			RETURNING `+applicationColumns,
			app.JobID, app.ApplicantActorID, model.ApplicationStatusSubmitted, app.CoverLetter, now,
		)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobApplication])
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO application_status_history (application_id, from_status, to_status, changed_by_actor, note, created_at)
			VALUES ($1, '', $2, $3, $4, $5)`,
			out.ID, model.ApplicationStatusSubmitted, history.ChangedByActor, history.Note, now,
		)
		return err
	}})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrDuplicateApplication
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return &out, nil
}

// GetByID retrieves an application by ID.
func (r *ApplicationRepo) GetByID(ctx context.Context, id string) (*model.JobApplication, error) {
	var app model.JobApplication
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+applicationColumns+` FROM job_applications WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		app, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobApplication])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &app, nil
}

// UpdateStatusWithHistory writes the new status and appends the audit row in
// one transaction. The status update re-checks the expected prior status so
// a concurrent transition cannot slip an illegal change through.
func (r *ApplicationRepo) UpdateStatusWithHistory(
	ctx context.Context,
	app *model.JobApplication,
	history *model.StatusHistory,
) (*model.JobApplication, error) {
	if app == nil || history == nil {
		return nil, errors.New("application and history are required")
	}

	now := r.timeProvider.Now().UTC()
	var out model.JobApplication
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			UPDATE job_applications
			SET status = $2, updated_at = $3
			WHERE id = $1 AND status = $4
			RETURNING `+applicationColumns,
			app.ID, app.Status, now, history.FromStatus,
		)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobApplication])
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO application_status_history (application_id, from_status, to_status, changed_by_actor, note, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			app.ID, history.FromStatus, history.ToStatus, history.ChangedByActor, history.Note, now,
		)
		return err
	}})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Row gone or status moved underneath us.
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	return &out, nil
}

// List retrieves applications scoped to an applicant or a posting owner,
// newest first.
func (r *ApplicationRepo) List(ctx context.Context, params core.ListApplicationsParams) ([]*model.JobApplication, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := max(params.Offset, 0)

	query := `SELECT a.id, a.job_id, a.applicant_actor_id, a.status, a.cover_letter, a.submitted_at, a.created_at, a.updated_at
		FROM job_applications a`
	args := []any{}
	where := ""
	and := func(cond string) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}

	if params.OwnerActorID != "" {
		query += ` JOIN job_postings j ON j.id = a.job_id`
		args = append(args, params.OwnerActorID)
		and(fmt.Sprintf("j.owner_actor_id = $%d", len(args)))
		args = append(args, params.OwnerType)
		and(fmt.Sprintf("j.owner_type = $%d", len(args)))
	}
	if params.ApplicantActorID != "" {
		args = append(args, params.ApplicantActorID)
		and(fmt.Sprintf("a.applicant_actor_id = $%d", len(args)))
	}
	if params.Status != "" {
		args = append(args, params.Status)
		and(fmt.Sprintf("a.status = $%d", len(args)))
	}

	args = append(args, limit, offset)
	query += where + fmt.Sprintf(" ORDER BY a.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	var rowsOut []model.JobApplication
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.JobApplication])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	res := make([]*model.JobApplication, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// ListHistory retrieves the application's audit trail in insertion order.
func (r *ApplicationRepo) ListHistory(ctx context.Context, applicationID string) ([]*model.StatusHistory, error) {
	var rowsOut []model.StatusHistory
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+historyColumns+`
			FROM application_status_history
			WHERE application_id = $1
			ORDER BY created_at ASC`, applicationID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.StatusHistory])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list status history: %w", err)
	}

	res := make([]*model.StatusHistory, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
