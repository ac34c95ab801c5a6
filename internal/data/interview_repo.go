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

// InterviewRepo provides database operations for interviews. The unique
// constraint on application_id enforces at most one interview per
// application.
type InterviewRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewInterviewRepo creates a new InterviewRepo with real time provider.
func NewInterviewRepo(db *sql.DB) *InterviewRepo {
	return &InterviewRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const interviewColumns = `id, application_id, scheduled_start, scheduled_end, mode, meeting_link,
	location_text, status, cancel_reason, created_by_actor_id, created_at, updated_at`

// Create inserts a new interview. A second interview for the same
// application surfaces as ErrInterviewExists.
func (r *InterviewRepo) Create(ctx context.Context, iv *model.Interview) (*model.Interview, error) {
	if iv == nil {
		return nil, errors.New("interview is required")
	}

	now := r.timeProvider.Now().UTC()
	var out model.Interview
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO interviews (
				application_id, scheduled_start, scheduled_end, mode, meeting_link,
				location_text, status, cancel_reason, created_by_actor_id, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, '', $8, $9, $9)
			RETURNING `+interviewColumns,
			iv.ApplicationID, iv.ScheduledStart, iv.ScheduledEnd, iv.Mode, iv.MeetingLink,
			iv.LocationText, model.InterviewStatusProposed, iv.CreatedByActorID, now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Interview])
		return err
	}); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrInterviewExists
		}
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}
	return &out, nil
}

// GetByID retrieves an interview by ID.
func (r *InterviewRepo) GetByID(ctx context.Context, id string) (*model.Interview, error) {
	return r.getByQuery(ctx, `SELECT `+interviewColumns+` FROM interviews WHERE id = $1`, id)
}

// GetByApplication retrieves the interview attached to an application.
func (r *InterviewRepo) GetByApplication(ctx context.Context, applicationID string) (*model.Interview, error) {
	return r.getByQuery(ctx, `SELECT `+interviewColumns+` FROM interviews WHERE application_id = $1`, applicationID)
}

// Update persists every mutable interview field. The write only lands when
// the row still carries the expected status, so a cancel and a complete
// racing each other cannot both win.
func (r *InterviewRepo) Update(ctx context.Context, iv *model.Interview, expected model.InterviewStatus) (*model.Interview, error) {
	if iv == nil {
		return nil, errors.New("interview is required")
	}

	now := r.timeProvider.Now().UTC()
	var out model.Interview
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE interviews
			SET scheduled_start = $2, scheduled_end = $3, mode = $4, meeting_link = $5,
			    location_text = $6, status = $7, cancel_reason = $8, updated_at = $9
			WHERE id = $1 AND status = $10
			RETURNING `+interviewColumns,
			iv.ID, iv.ScheduledStart, iv.ScheduledEnd, iv.Mode, iv.MeetingLink,
			iv.LocationText, iv.Status, iv.CancelReason, now, expected,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Interview])
		return err
	})
	if err != nil {
		// Row gone or status moved underneath us.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInterviewStatusChanged
		}
		return nil, fmt.Errorf("failed to update interview: %w", err)
	}
	return &out, nil
}

// ListForActor retrieves interviews visible to the actor: the applicant's
// own, or those against postings the owner owns. Admins pass empty params
// and see everything. Ordered by start time.
func (r *InterviewRepo) ListForActor(ctx context.Context, params core.ListInterviewsParams) ([]*model.Interview, error) {
	query := `SELECT i.id, i.application_id, i.scheduled_start, i.scheduled_end, i.mode, i.meeting_link,
		i.location_text, i.status, i.cancel_reason, i.created_by_actor_id, i.created_at, i.updated_at
		FROM interviews i
		JOIN job_applications a ON a.id = i.application_id`
	args := []any{}

	switch {
	case params.ApplicantActorID != "":
		args = append(args, params.ApplicantActorID)
		query += ` WHERE a.applicant_actor_id = $1`
	case params.OwnerActorID != "":
		args = append(args, params.OwnerActorID, params.OwnerType)
		query += ` JOIN job_postings j ON j.id = a.job_id WHERE j.owner_actor_id = $1 AND j.owner_type = $2`
	}
	query += ` ORDER BY i.scheduled_start ` + sortDirAsc

	var rowsOut []model.Interview
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Interview])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}

	res := make([]*model.Interview, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

func (r *InterviewRepo) getByQuery(ctx context.Context, q string, args ...any) (*model.Interview, error) {
	var iv model.Interview
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		iv, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Interview])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInterviewNotFound
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	return &iv, nil
}
