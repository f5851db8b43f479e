// Package orchestrator owns the agent-side session state machine. It keeps
// the local Idle/Working/OnBreak state in sync with the server and drives the
// recurring screenshot capture while a session is open.
package orchestrator

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/workfolio/internal/agent/capture"
	"github.com/dmitrijs2005/workfolio/internal/agent/client"
	"github.com/dmitrijs2005/workfolio/internal/common"
	"github.com/dmitrijs2005/workfolio/internal/logging"
	"github.com/dmitrijs2005/workfolio/internal/netx"
)

// uploadToPresignedURL is redefined in tests
var uploadToPresignedURL = netx.UploadToPresignedURL

// State is the local view of the current work session.
type State int

const (
	StateIdle State = iota
	StateWorking
	StateOnBreak
)

func (s State) String() string {
	switch s {
	case StateWorking:
		return "working"
	case StateOnBreak:
		return "on break"
	default:
		return "idle"
	}
}

// Orchestrator serializes session transitions and runs the capture loop.
// Local state only advances after the corresponding RPC has confirmed, so a
// failed call leaves the machine where it was.
type Orchestrator struct {
	client   client.Client
	capturer capture.Capturer
	logger   logging.Logger
	interval time.Duration

	mu          sync.Mutex
	state       State
	sessionID   string
	clockInTime time.Time

	// stopCapture cancels the capture loop of the current session. It is set
	// on clock-in and cleared on clock-out so repeated cycles never leak a
	// ticker.
	stopCapture context.CancelFunc
	wg          sync.WaitGroup
}

func NewOrchestrator(c client.Client, cap capture.Capturer, interval time.Duration, logger logging.Logger) *Orchestrator {
	l := logger.With("module", "orchestrator")
	return &Orchestrator{client: c, capturer: cap, interval: interval, logger: l}
}

// State returns the current local state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// SessionID returns the identity of the open session, or "" when idle.
func (o *Orchestrator) SessionID() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.sessionID
}

// ClockIn opens a new session and starts the capture loop.
func (o *Orchestrator) ClockIn(ctx context.Context) (string, time.Time, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateIdle {
		return "", time.Time{}, common.ErrAlreadyClockedIn
	}

	sessionID, clockInTime, err := o.client.ClockIn(ctx)
	if err != nil {
		return "", time.Time{}, err
	}

	o.state = StateWorking
	o.sessionID = sessionID
	o.clockInTime = clockInTime

	// the loop must outlive the caller's context, it is stopped on clock-out
	captureCtx, cancel := context.WithCancel(context.Background())
	o.stopCapture = cancel
	o.wg.Add(1)
	go o.captureLoop(captureCtx)

	o.logger.Info(ctx, "Clocked in", "session_id", sessionID)
	return sessionID, clockInTime, nil
}

// StartBreak pauses the session. Screenshots keep being taken during breaks.
func (o *Orchestrator) StartBreak(ctx context.Context) (time.Time, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state == StateIdle {
		return time.Time{}, common.ErrNoActiveSession
	}
	if o.state == StateOnBreak {
		return time.Time{}, common.ErrAlreadyOnBreak
	}

	at, err := o.client.StartBreak(ctx)
	if err != nil {
		return time.Time{}, err
	}

	o.state = StateOnBreak
	o.logger.Info(ctx, "Break started", "session_id", o.sessionID)
	return at, nil
}

// EndBreak resumes the session and returns the accumulated break seconds.
func (o *Orchestrator) EndBreak(ctx context.Context) (int64, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state == StateIdle {
		return 0, common.ErrNoActiveSession
	}
	if o.state != StateOnBreak {
		return 0, common.ErrNotOnBreak
	}

	total, err := o.client.EndBreak(ctx)
	if err != nil {
		return 0, err
	}

	o.state = StateWorking
	o.logger.Info(ctx, "Break ended", "session_id", o.sessionID, "break_seconds", total)
	return total, nil
}

// ClockOut closes the session, stops the capture loop and returns the final
// accounting.
func (o *Orchestrator) ClockOut(ctx context.Context) (*client.ClockOutSummary, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state == StateIdle {
		return nil, common.ErrNoActiveSession
	}

	summary, err := o.client.ClockOut(ctx)
	if err != nil {
		return nil, err
	}

	o.stopCaptureLocked()
	sessionID := o.sessionID
	o.state = StateIdle
	o.sessionID = ""
	o.clockInTime = time.Time{}

	o.logger.Info(ctx, "Clocked out", "session_id", sessionID,
		"total_duration_seconds", summary.TotalDurationSeconds)
	return summary, nil
}

// Shutdown cancels the capture loop without touching the session, used on
// agent teardown. The open session stays open on the server.
func (o *Orchestrator) Shutdown() {
	o.mu.Lock()
	o.stopCaptureLocked()
	o.mu.Unlock()
	o.wg.Wait()
}

func (o *Orchestrator) stopCaptureLocked() {
	if o.stopCapture != nil {
		o.stopCapture()
		o.stopCapture = nil
	}
}

func (o *Orchestrator) captureLoop(ctx context.Context) {
	defer o.wg.Done()

	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			o.captureOnce(ctx)
		}
	}
}

// captureOnce runs one capture tick: grab the screen, get a presigned URL,
// PUT the bytes and record the screenshot. Any step failing drops the tick,
// nothing is recorded and the session is untouched.
func (o *Orchestrator) captureOnce(ctx context.Context) {
	o.mu.Lock()
	sessionID := o.sessionID
	o.mu.Unlock()

	if sessionID == "" {
		return
	}

	data, err := o.capturer.Capture(ctx)
	if err != nil {
		o.logger.Warn(ctx, "Screenshot capture failed", "error", err)
		return
	}

	storageKey, uploadURL, err := o.client.BeginScreenshotUpload(ctx)
	if err != nil {
		o.logger.Warn(ctx, "Requesting upload URL failed", "error", err)
		return
	}

	if err := uploadToPresignedURL(ctx, uploadURL, data, "image/png"); err != nil {
		o.logger.Warn(ctx, "Screenshot upload failed", "error", err)
		return
	}

	if _, _, err := o.client.CommitScreenshot(ctx, sessionID, storageKey); err != nil {
		o.logger.Warn(ctx, "Recording screenshot failed", "error", err)
		return
	}

	o.logger.Debug(ctx, "Screenshot uploaded", "session_id", sessionID, "storage_key", storageKey)
}
