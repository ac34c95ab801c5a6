// Package devseed populates a development database with demo accounts,
// postings, and applications so the API is explorable right after startup.
// It is only wired in when dev mode is enabled and never runs in production.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/fixhire/fixhire-api/internal/core"
	"github.com/fixhire/fixhire-api/internal/data"
	"github.com/fixhire/fixhire-api/internal/domain/model"
	apperrors "github.com/fixhire/fixhire-api/internal/errors"
	"github.com/fixhire/fixhire-api/internal/service"
)

// Seeded accounts share one well-known password for local testing.
const devPassword = "fixhire-dev"

// Deps bundles the dependencies needed for development seeding.
type Deps struct {
	DB           *sql.DB
	Auth         *service.AuthService
	Postings     *service.PostingService
	Applications *service.ApplicationService
	Logger       *slog.Logger
}

// Run executes the full development seeding workflow. Each step is
// idempotent, so restarting the service does not duplicate demo data.
func Run(ctx context.Context, deps Deps) error {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	employer, err := ensureAccount(ctx, deps.Auth, "Kickstand Garage", "garage@fixhire.dev", model.RoleEmployer)
	if err != nil {
		return fmt.Errorf("seed employer account: %w", err)
	}
	applicant, err := ensureAccount(ctx, deps.Auth, "Sam Reyes", "mechanic@fixhire.dev", model.RoleApplicant)
	if err != nil {
		return fmt.Errorf("seed applicant account: %w", err)
	}
	if _, err = ensureAccount(ctx, deps.Auth, "TorqueWorks Staffing", "agency@fixhire.dev", model.RoleAgency); err != nil {
		return fmt.Errorf("seed agency account: %w", err)
	}
	logger.InfoContext(ctx, "seeded demo accounts", "password", devPassword)

	employerActor := model.Actor{ID: employer.ID, Role: employer.Role}
	postings, err := seedPostings(ctx, deps.Postings, employerActor, logger)
	if err != nil {
		return err
	}

	applicantActor := model.Actor{ID: applicant.ID, Role: applicant.Role}
	if err = seedApplications(ctx, deps.Applications, applicantActor, postings, logger); err != nil {
		return err
	}

	if err = seedGarageRecords(ctx, deps.DB, employerActor, logger); err != nil {
		return err
	}

	return nil
}

// ensureAccount registers the demo user, falling back to login when the
// email is already taken from a previous run.
func ensureAccount(
	ctx context.Context,
	auth *service.AuthService,
	name, email string,
	role model.Role,
) (*model.User, error) {
	user, _, err := auth.Register(ctx, &model.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: devPassword,
		Role:     string(role),
	})
	if err == nil {
		return user, nil
	}
	if !apperrors.IsConflict(err) {
		return nil, err
	}

	user, _, err = auth.Login(ctx, &model.LoginRequest{Email: email, Password: devPassword})
	if err != nil {
		return nil, fmt.Errorf("login existing account %s: %w", email, err)
	}
	return user, nil
}

// seedPostings creates a couple of published postings plus one draft. The
// employer owning postings already is treated as "seeded" and skipped.
func seedPostings(
	ctx context.Context,
	svc *service.PostingService,
	actor model.Actor,
	logger *slog.Logger,
) ([]*model.JobPosting, error) {
	existing, err := svc.ListOwned(ctx, actor, model.PostingListOptions{}, 10, 0)
	if err != nil {
		return nil, fmt.Errorf("list owned postings: %w", err)
	}
	if len(existing) > 0 {
		logger.InfoContext(ctx, "postings already seeded", "count", len(existing))
		return existing, nil
	}

	seeds := []struct {
		req     model.CreatePostingRequest
		publish bool
	}{
		{
			req: model.CreatePostingRequest{
				Title:          "Senior Automotive Technician",
				Description:    "Diagnose and repair engine, transmission, and electrical faults across all makes. ASE certification preferred.",
				EmploymentType: "full_time",
				WorkMode:       "on_site",
				City:           "Quezon City",
			},
			publish: true,
		},
		{
			req: model.CreatePostingRequest{
				Title:          "Weekend Service Advisor",
				Description:    "Front-desk intake and customer updates for weekend shifts. Part time with flexible hours.",
				EmploymentType: "part_time",
				WorkMode:       "on_site",
				City:           "Makati",
			},
			publish: true,
		},
		{
			req: model.CreatePostingRequest{
				Title:          "Remote Diagnostics Consultant",
				Description:    "Review OBD2 captures and draft repair plans for partner shops. Contract engagement, fully remote.",
				EmploymentType: "contract",
				WorkMode:       "remote",
				City:           "",
			},
			publish: false,
		},
	}

	created := make([]*model.JobPosting, 0, len(seeds))
	for _, seed := range seeds {
		req := seed.req
		posting, createErr := svc.Create(ctx, actor, &req)
		if createErr != nil {
			return nil, fmt.Errorf("create posting %q: %w", seed.req.Title, createErr)
		}
		if seed.publish {
			if posting, createErr = svc.Publish(ctx, actor, posting.ID); createErr != nil {
				return nil, fmt.Errorf("publish posting %q: %w", seed.req.Title, createErr)
			}
		}
		created = append(created, posting)
		logger.InfoContext(ctx, "seeded posting", "title", posting.Title, "status", posting.Status)
	}
	return created, nil
}

// seedApplications submits the demo applicant to the first published
// posting. A duplicate application from a previous run is fine.
func seedApplications(
	ctx context.Context,
	svc *service.ApplicationService,
	actor model.Actor,
	postings []*model.JobPosting,
	logger *slog.Logger,
) error {
	for _, posting := range postings {
		if posting.Status != model.PostingStatusPublished {
			continue
		}
		_, err := svc.Apply(ctx, actor, posting.ID, &model.ApplyRequest{
			CoverLetter: "Ten years of dealership and independent shop experience. Strong on European electrical systems.",
		})
		if err != nil {
			if apperrors.IsConflict(err) {
				logger.InfoContext(ctx, "application already seeded", "posting", posting.Title)
				return nil
			}
			return fmt.Errorf("apply to posting %q: %w", posting.Title, err)
		}
		logger.InfoContext(ctx, "seeded application", "posting", posting.Title)
		return nil
	}
	return nil
}

// seedGarageRecords creates a demo customer and vehicle directly through the
// repositories. Intake jobs are not seeded because generation needs a live
// AI call.
func seedGarageRecords(ctx context.Context, db *sql.DB, actor model.Actor, logger *slog.Logger) error {
	customers := data.NewCustomerRepo(db)
	vehicles := data.NewVehicleRepo(db)

	customer, err := customers.UpsertByPhone(ctx, core.UpsertCustomerParams{
		OwnerActorID: actor.ID,
		Input: model.CustomerInput{
			FullName:               "Maria Santos",
			Phone:                  "+63 917 555 0134",
			Email:                  "maria.santos@example.com",
			PreferredContactMethod: "text",
		},
	})
	if err != nil {
		return fmt.Errorf("seed customer: %w", err)
	}

	existing, err := vehicles.ListByCustomer(ctx, customer.ID, 1)
	if err != nil {
		return fmt.Errorf("list seeded vehicles: %w", err)
	}
	if len(existing) > 0 {
		logger.InfoContext(ctx, "garage records already seeded", "customer", customer.FullName)
		return nil
	}

	_, err = vehicles.Create(ctx, core.CreateVehicleParams{
		OwnerActorID: actor.ID,
		CustomerID:   customer.ID,
		Input: model.VehicleInput{
			VIN:          "1HGCM82633A004352",
			Plate:        "NCR-4821",
			Year:         "2019",
			Make:         "Honda",
			Model:        "Accord",
			Engine:       "2.4L I4",
			Transmission: "automatic",
		},
	})
	if err != nil {
		return fmt.Errorf("seed vehicle: %w", err)
	}
	logger.InfoContext(ctx, "seeded garage records", "customer", customer.FullName)
	return nil
}
