package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/fixhire/fixhire-api/config"
	"github.com/fixhire/fixhire-api/internal/data"
	"github.com/fixhire/fixhire-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth         *service.AuthService
	Intake       *service.IntakeService
	Lookup       *service.LookupService
	VIN          *service.VINService
	Postings     *service.PostingService
	Applications *service.ApplicationService
	Interviews   *service.InterviewService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config   *config.AppConfig
	DB       *sql.DB
	Adapters AdapterContainer
	Logger   *slog.Logger
}

// NewServices constructs the full service layer over the pgx repositories
// and outbound adapters.
func NewServices(deps *ServiceDeps) ServiceContainer {
	users := data.NewUserRepo(deps.DB)
	customers := data.NewCustomerRepo(deps.DB)
	vehicles := data.NewVehicleRepo(deps.DB)
	intakeJobs := data.NewIntakeJobRepo(deps.DB)
	postings := data.NewPostingRepo(deps.DB)
	applications := data.NewApplicationRepo(deps.DB)
	interviews := data.NewInterviewRepo(deps.DB)

	return ServiceContainer{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			UserRepo:   users,
			Sessions:   deps.Adapters.Sessions,
			SessionTTL: deps.Config.Auth.SessionTTL,
		}),
		Intake: service.NewIntakeService(service.IntakeServiceOptions{
			CustomerRepo: customers,
			VehicleRepo:  vehicles,
			JobRepo:      intakeJobs,
			Generator:    deps.Adapters.Generator,
		}),
		Lookup: service.NewLookupService(service.LookupServiceOptions{
			CustomerRepo: customers,
			VehicleRepo:  vehicles,
			JobRepo:      intakeJobs,
		}),
		VIN: service.NewVINService(service.VINServiceOptions{
			Decoder: deps.Adapters.Decoder,
		}),
		Postings: service.NewPostingService(service.PostingServiceOptions{
			PostingRepo: postings,
		}),
		Applications: service.NewApplicationService(service.ApplicationServiceOptions{
			ApplicationRepo: applications,
			PostingRepo:     postings,
			InterviewRepo:   interviews,
		}),
		Interviews: service.NewInterviewService(service.InterviewServiceOptions{
			InterviewRepo:   interviews,
			ApplicationRepo: applications,
			PostingRepo:     postings,
			Meetings:        deps.Adapters.Meetings,
		}),
	}
}
