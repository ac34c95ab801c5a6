package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/fixhire/fixhire-api/internal/core"
	"github.com/fixhire/fixhire-api/internal/data/database"
	"github.com/fixhire/fixhire-api/internal/data/pgxutil"
	"github.com/fixhire/fixhire-api/internal/domain/model"
)

// PostingRepo provides database operations for job postings.
type PostingRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewPostingRepo creates a new PostingRepo with real time provider.
func NewPostingRepo(db *sql.DB) *PostingRepo {
	return &PostingRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewPostingRepoWithTimeProvider creates a new PostingRepo with a custom time provider (useful for tests).
func NewPostingRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *PostingRepo {
	return &PostingRepo{DB: db, timeProvider: tp}
}

func postingColumns() []string {
	return []string{
		"id",
		"owner_type",
		"owner_actor_id",
		"title",
		"description",
		"employment_type",
		"work_mode",
		"city",
		"status",
		"published_at",
		"archived_at",
		"created_at",
		"updated_at",
	}
}

var postingColumnList = strings.Join(postingColumns(), ", ")

// Create inserts a new posting as a draft.
func (r *PostingRepo) Create(ctx context.Context, job *model.JobPosting) (*model.JobPosting, error) {
	if job == nil {
		return nil, errors.New("posting is required")
	}

	now := r.timeProvider.Now().UTC()
	var out model.JobPosting
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO job_postings (owner_type, owner_actor_id, title, description, employment_type, work_mode, city, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
			RETURNING `+postingColumnList,
			job.OwnerType, job.OwnerActorID, job.Title, job.Description,
			job.EmploymentType, job.WorkMode, job.City, model.PostingStatusDraft, now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobPosting])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create posting: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a posting by ID.
func (r *PostingRepo) GetByID(ctx context.Context, id string) (*model.JobPosting, error) {
	var job model.JobPosting
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+postingColumnList+` FROM job_postings WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		job, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobPosting])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostingNotFound
		}
		return nil, fmt.Errorf("failed to get posting: %w", err)
	}
	return &job, nil
}

// Update persists every mutable posting field, including lifecycle
// timestamps set by publish and archive.
func (r *PostingRepo) Update(ctx context.Context, job *model.JobPosting) (*model.JobPosting, error) {
	if job == nil {
		return nil, errors.New("posting is required")
	}

	now := r.timeProvider.Now().UTC()
	var out model.JobPosting
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE job_postings
			SET title = $2, description = $3, employment_type = $4, work_mode = $5, city = $6,
			    status = $7, published_at = $8, archived_at = $9, updated_at = $10
			WHERE id = $1
			RETURNING `+postingColumnList,
			job.ID, job.Title, job.Description, job.EmploymentType, job.WorkMode, job.City,
			job.Status, job.PublishedAt, job.ArchivedAt, now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobPosting])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostingNotFound
		}
		return nil, fmt.Errorf("failed to update posting: %w", err)
	}
	return &out, nil
}

// Delete removes a posting by ID.
func (r *PostingRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete posting: %w", err)
	}
	return rows > 0, nil
}

// List retrieves postings with filters. Owner scoping applies when
// OwnerActorID is set; PublishedOnly restricts to the public board.
func (r *PostingRepo) List(ctx context.Context, params core.ListPostingsParams) ([]*model.JobPosting, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(params.Offset, 0)

	query, args := database.BuildListQuery(r.buildListOptions(params, limit, offset))

	var rowsOut []model.JobPosting
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.JobPosting])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}

	res := make([]*model.JobPosting, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

func (r *PostingRepo) buildListOptions(params core.ListPostingsParams, limit, offset int) *database.ListQueryOptions {
	queryOpts := []database.ListQueryOption{
		database.WithColumns(postingColumns()...),
		database.WithLimit(limit),
		database.WithOffset(offset),
	}

	orderCol := "created_at"
	if params.OwnerActorID != "" {
		queryOpts = append(queryOpts,
			database.WithCondition(database.WhereCond("owner_actor_id", database.Equal, params.OwnerActorID)),
			database.WithCondition(database.WhereCond("owner_type", database.Equal, params.OwnerType)),
		)
	}
	if params.Opts.PublishedOnly {
		queryOpts = append(queryOpts,
			database.WithCondition(database.WhereCond("status", database.Equal, model.PostingStatusPublished)),
			database.WithCondition(database.WhereRawCond("published_at IS NOT NULL")),
		)
		orderCol = "published_at"
	} else if params.Opts.Status != "" {
		queryOpts = append(queryOpts,
			database.WithCondition(database.WhereCond("status", database.Equal, params.Opts.Status)),
		)
	}
	if q := strings.TrimSpace(params.Opts.Search); q != "" {
		pattern := "%" + q + "%"
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereRawCond("(title ILIKE $1 OR description ILIKE $2)", pattern, pattern),
		))
	}
	if params.Opts.EmploymentType != "" {
		queryOpts = append(queryOpts,
			database.WithCondition(database.WhereCond("employment_type", database.Equal, params.Opts.EmploymentType)),
		)
	}
	if params.Opts.WorkMode != "" {
		queryOpts = append(queryOpts,
			database.WithCondition(database.WhereCond("work_mode", database.Equal, params.Opts.WorkMode)),
		)
	}
	if city := strings.TrimSpace(params.Opts.City); city != "" {
		queryOpts = append(queryOpts,
			database.WithCondition(database.WhereCond("city", database.Equal, city)),
		)
	}

	queryOpts = append(queryOpts, database.WithOrderBy(orderCol, sortDirDesc))
	return database.NewListQueryOptions("job_postings", queryOpts...)
}
