// Package client defines the transport used by the agent to talk to the
// Workfolio backend, plus the lightweight view types the CLI renders.
package client

import (
	"context"
	"time"
)

// ScreenshotInfo is one uploaded screenshot as seen from the agent.
type ScreenshotInfo struct {
	URL       string
	Timestamp time.Time
}

// SessionSummary is a work session as rendered by the history and admin
// commands. ClockOutTime and BreakStartTime are zero when unset.
type SessionSummary struct {
	ID                   string
	UserID               string
	UserName             string
	ClockInTime          time.Time
	ClockOutTime         time.Time
	BreakSeconds         int64
	BreakStartTime       time.Time
	IsClockedIn          bool
	TotalDurationSeconds int64
	Screenshots          []*ScreenshotInfo
}

// ClockOutSummary is the final accounting returned when a session closes.
type ClockOutSummary struct {
	ClockOutTime         time.Time
	TotalDurationSeconds int64
	BreakSeconds         int64
}

type Client interface {
	Close() error
	Register(ctx context.Context, email, password, firstName, lastName string) error
	Login(ctx context.Context, email, password string) (string, error)
	Ping(ctx context.Context) error

	ClockIn(ctx context.Context) (string, time.Time, error)
	StartBreak(ctx context.Context) (time.Time, error)
	EndBreak(ctx context.Context) (int64, error)
	ClockOut(ctx context.Context) (*ClockOutSummary, error)
	ListSessions(ctx context.Context, limit int) ([]*SessionSummary, error)

	BeginScreenshotUpload(ctx context.Context) (string, string, error)
	CommitScreenshot(ctx context.Context, sessionID, storageKey string) (string, time.Time, error)
	ListScreenshots(ctx context.Context, sessionID string) ([]*ScreenshotInfo, error)

	ListAllSessions(ctx context.Context, date, userIDPrefix string) ([]*SessionSummary, error)
}
