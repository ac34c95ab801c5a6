package bootstrap

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/fixhire/fixhire-api/config"
	"github.com/fixhire/fixhire-api/internal/adapters/openai"
	redisadapter "github.com/fixhire/fixhire-api/internal/adapters/redis"
	"github.com/fixhire/fixhire-api/internal/adapters/vindecode"
	"github.com/fixhire/fixhire-api/internal/adapters/zoom"
	"github.com/fixhire/fixhire-api/internal/ports"
)

// AdapterContainer holds the outbound adapters behind the service layer.
type AdapterContainer struct {
	Sessions  ports.SessionStore
	Generator ports.DiagnosisGenerator
	Meetings  ports.MeetingScheduler
	Decoder   ports.VINDecoder
}

// NewAdapters builds the outbound adapters. The OpenAI key is required; Zoom
// credentials are optional and simply disable meeting provisioning when
// absent.
func NewAdapters(cfg *config.AppConfig, redisClient redis.UniversalClient) (AdapterContainer, error) {
	generator, err := newGenerator(cfg)
	if err != nil {
		return AdapterContainer{}, err
	}

	return AdapterContainer{
		Sessions:  redisadapter.NewSessionStore(redisClient),
		Generator: generator,
		Meetings:  newMeetingScheduler(cfg, redisClient),
		Decoder:   newVINDecoder(cfg),
	}, nil
}

//nolint:ireturn // the container carries ports, not concrete adapters.
func newGenerator(cfg *config.AppConfig) (ports.DiagnosisGenerator, error) {
	generator, err := openai.NewGenerator(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	if err != nil {
		return nil, fmt.Errorf("init diagnosis generator: %w", err)
	}
	return generator, nil
}

//nolint:ireturn // the container carries ports, not concrete adapters.
func newMeetingScheduler(cfg *config.AppConfig, redisClient redis.UniversalClient) ports.MeetingScheduler {
	return zoom.NewScheduler(zoom.Config{
		AccountID:    cfg.Zoom.AccountID,
		ClientID:     cfg.Zoom.ClientID,
		ClientSecret: cfg.Zoom.ClientSecret,
		UserID:       cfg.Zoom.UserID,
		Timezone:     cfg.Zoom.Timezone,
	}, redisadapter.NewTokenCache(redisClient, "zoom"))
}

//nolint:ireturn // the container carries ports, not concrete adapters.
func newVINDecoder(cfg *config.AppConfig) ports.VINDecoder {
	var opts []vindecode.Option
	if cfg.VIN.DBVINURL != "" || cfg.VIN.NHTSAURL != "" {
		dbvin := cfg.VIN.DBVINURL
		nhtsa := cfg.VIN.NHTSAURL
		opts = append(opts, vindecode.WithEndpoints(dbvin, nhtsa))
	}
	return vindecode.NewDecoder(opts...)
}
