package ports

import (
	"context"
	"time"
)

// MeetingInput describes the meeting to provision.
type MeetingInput struct {
	Topic string
	Start time.Time
	End   time.Time
}

// Meeting is the provisioned meeting as returned by the provider.
type Meeting struct {
	ID       string
	JoinURL  string
	StartURL string
}

// MeetingScheduler provisions video meetings for interviews. Enabled reports
// whether the provider is configured; callers must check it before
// CreateMeeting so an unconfigured provider surfaces as a distinct error
// rather than a failed call.
type MeetingScheduler interface {
	Enabled() bool
	CreateMeeting(ctx context.Context, in MeetingInput) (Meeting, error)
}
