package zoom

// Package zoom implements the meeting scheduler port against the Zoom API
// using a server-to-server OAuth app.

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fixhire/fixhire-api/internal/ports"
)

const (
	defaultTokenURL = "https://zoom.us/oauth/token"
	defaultAPIURL   = "https://api.zoom.us/v2"

	// Zoom access tokens live for an hour; cache slightly under that.
	tokenCacheTTL = 50 * time.Minute
	tokenCacheKey = "zoom_s2s_access_token"
)

// TokenCache stores the short-lived OAuth access token between calls. The
// Redis token cache satisfies this.
type TokenCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// Config holds the server-to-server OAuth credentials. The scheduler is
// disabled unless all three credentials are set.
type Config struct {
	AccountID    string
	ClientID     string
	ClientSecret string
	UserID       string
	Timezone     string
}

// Scheduler provisions Zoom meetings. The zero credentials case is valid and
// reports Enabled() == false.
type Scheduler struct {
	cfg        Config
	httpClient *http.Client
	cache      TokenCache
	tokenURL   string
	apiURL     string
}

// Option customizes a Scheduler.
type Option func(*Scheduler)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Scheduler) { s.httpClient = c }
}

// WithEndpoints overrides the OAuth and API base URLs, for tests.
func WithEndpoints(tokenURL, apiURL string) Option {
	return func(s *Scheduler) {
		s.tokenURL = tokenURL
		s.apiURL = strings.TrimRight(apiURL, "/")
	}
}

// NewScheduler creates a Scheduler. cache may be nil, in which case every
// call fetches a fresh token.
func NewScheduler(cfg Config, cache TokenCache, opts ...Option) *Scheduler {
	if cfg.UserID == "" {
		cfg.UserID = "me"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Asia/Manila"
	}
	s := &Scheduler{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cache:      cache,
		tokenURL:   defaultTokenURL,
		apiURL:     defaultAPIURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enabled reports whether all server-to-server credentials are configured.
func (s *Scheduler) Enabled() bool {
	return s.cfg.AccountID != "" && s.cfg.ClientID != "" && s.cfg.ClientSecret != ""
}

func (s *Scheduler) accessToken(ctx context.Context) (string, error) {
	if s.cache != nil {
		if tok, err := s.cache.Get(ctx, tokenCacheKey); err == nil && tok != "" {
			return tok, nil
		}
	}

	form := url.Values{}
	form.Set("grant_type", "account_credentials")
	form.Set("account_id", s.cfg.AccountID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	basic := base64.StdEncoding.EncodeToString([]byte(s.cfg.ClientID + ":" + s.cfg.ClientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("zoom token request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("zoom token failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", errors.New("zoom token missing from response")
	}

	if s.cache != nil {
		// Cache failures are not fatal; the next call just re-fetches.
		_ = s.cache.Set(ctx, tokenCacheKey, tokenResp.AccessToken, tokenCacheTTL)
	}
	return tokenResp.AccessToken, nil
}

type meetingRequest struct {
	Topic     string          `json:"topic"`
	Type      int             `json:"type"`
	StartTime string          `json:"start_time"`
	Duration  int             `json:"duration"`
	Timezone  string          `json:"timezone"`
	Settings  meetingSettings `json:"settings"`
}

type meetingSettings struct {
	JoinBeforeHost   bool `json:"join_before_host"`
	WaitingRoom      bool `json:"waiting_room"`
	HostVideo        bool `json:"host_video"`
	ParticipantVideo bool `json:"participant_video"`
	MuteUponEntry    bool `json:"mute_upon_entry"`
}

// CreateMeeting provisions a scheduled Zoom meeting. The duration floors at
// 15 minutes.
func (s *Scheduler) CreateMeeting(ctx context.Context, in ports.MeetingInput) (ports.Meeting, error) {
	if !s.Enabled() {
		return ports.Meeting{}, errors.New("zoom is not configured")
	}

	token, err := s.accessToken(ctx)
	if err != nil {
		return ports.Meeting{}, err
	}

	duration := int(in.End.Sub(in.Start).Minutes())
	if duration < 15 {
		duration = 15
	}

	payload := meetingRequest{
		Topic:     in.Topic,
		Type:      2,
		StartTime: in.Start.Format(time.RFC3339),
		Duration:  duration,
		Timezone:  s.cfg.Timezone,
		Settings: meetingSettings{
			JoinBeforeHost:   false,
			WaitingRoom:      true,
			HostVideo:        true,
			ParticipantVideo: true,
			MuteUponEntry:    true,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return ports.Meeting{}, fmt.Errorf("marshal meeting request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/users/%s/meetings", s.apiURL, url.PathEscape(s.cfg.UserID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(string(body)))
	if err != nil {
		return ports.Meeting{}, fmt.Errorf("build meeting request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return ports.Meeting{}, fmt.Errorf("zoom meeting request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ports.Meeting{}, fmt.Errorf("zoom meeting create failed: status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var meetingResp struct {
		ID       json.Number `json:"id"`
		JoinURL  string      `json:"join_url"`
		StartURL string      `json:"start_url"`
	}
	if err := json.Unmarshal(respBody, &meetingResp); err != nil {
		return ports.Meeting{}, fmt.Errorf("decode meeting response: %w", err)
	}
	if meetingResp.JoinURL == "" {
		return ports.Meeting{}, errors.New("zoom meeting response missing join_url")
	}

	return ports.Meeting{
		ID:       meetingResp.ID.String(),
		JoinURL:  meetingResp.JoinURL,
		StartURL: meetingResp.StartURL,
	}, nil
}
