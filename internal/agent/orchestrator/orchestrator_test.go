package orchestrator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/workfolio/internal/agent/client"
	"github.com/dmitrijs2005/workfolio/internal/common"
	"github.com/dmitrijs2005/workfolio/internal/logging"
)

var errBoom = errors.New("boom")

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (nopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...any) {}
func (n nopLogger) With(args ...any) logging.Logger                  { return n }

// fakeClient records session calls and counts the screenshot upload RPCs.
type fakeClient struct {
	mu sync.Mutex

	clockInErr    error
	startBreakErr error
	endBreakErr   error
	clockOutErr   error
	beginErr      error
	commitErr     error

	clockIns  int
	clockOuts int

	beginCalls  int64
	commitCalls int64
	committed   []string
}

func (f *fakeClient) Close() error { return nil }
func (f *fakeClient) Register(ctx context.Context, email, password, firstName, lastName string) error {
	return nil
}
func (f *fakeClient) Login(ctx context.Context, email, password string) (string, error) {
	return "employee", nil
}
func (f *fakeClient) Ping(ctx context.Context) error { return nil }

func (f *fakeClient) ClockIn(ctx context.Context) (string, time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clockInErr != nil {
		return "", time.Time{}, f.clockInErr
	}
	f.clockIns++
	return "s1", time.Unix(1700000000, 0), nil
}

func (f *fakeClient) StartBreak(ctx context.Context) (time.Time, error) {
	if f.startBreakErr != nil {
		return time.Time{}, f.startBreakErr
	}
	return time.Unix(1700000300, 0), nil
}

func (f *fakeClient) EndBreak(ctx context.Context) (int64, error) {
	if f.endBreakErr != nil {
		return 0, f.endBreakErr
	}
	return 120, nil
}

func (f *fakeClient) ClockOut(ctx context.Context) (*client.ClockOutSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clockOutErr != nil {
		return nil, f.clockOutErr
	}
	f.clockOuts++
	return &client.ClockOutSummary{
		ClockOutTime:         time.Unix(1700003600, 0),
		TotalDurationSeconds: 3600,
		BreakSeconds:         120,
	}, nil
}

func (f *fakeClient) ListSessions(ctx context.Context, limit int) ([]*client.SessionSummary, error) {
	return nil, nil
}

func (f *fakeClient) BeginScreenshotUpload(ctx context.Context) (string, string, error) {
	if f.beginErr != nil {
		return "", "", f.beginErr
	}
	atomic.AddInt64(&f.beginCalls, 1)
	return "screenshots/u1/k1.png", "http://minio/put/k1", nil
}

func (f *fakeClient) CommitScreenshot(ctx context.Context, sessionID, storageKey string) (string, time.Time, error) {
	if f.commitErr != nil {
		return "", time.Time{}, f.commitErr
	}
	atomic.AddInt64(&f.commitCalls, 1)
	f.mu.Lock()
	f.committed = append(f.committed, sessionID)
	f.mu.Unlock()
	return "http://minio/get/k1", time.Unix(1700000060, 0), nil
}

func (f *fakeClient) ListScreenshots(ctx context.Context, sessionID string) ([]*client.ScreenshotInfo, error) {
	return nil, nil
}

func (f *fakeClient) ListAllSessions(ctx context.Context, date, userIDPrefix string) ([]*client.SessionSummary, error) {
	return nil, nil
}

func (f *fakeClient) commits() int64 { return atomic.LoadInt64(&f.commitCalls) }
func (f *fakeClient) begins() int64  { return atomic.LoadInt64(&f.beginCalls) }

type fakeCapturer struct {
	err   error
	calls int64
}

func (f *fakeCapturer) Capture(ctx context.Context) ([]byte, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return []byte("png bytes"), nil
}

func stubUpload(t *testing.T, fn func(ctx context.Context, url string, data []byte, contentType string) error) {
	orig := uploadToPresignedURL
	uploadToPresignedURL = fn
	t.Cleanup(func() { uploadToPresignedURL = orig })
}

func newOrchestrator(t *testing.T, c client.Client, cap *fakeCapturer, interval time.Duration) *Orchestrator {
	o := NewOrchestrator(c, cap, interval, nopLogger{})
	t.Cleanup(o.Shutdown)
	return o
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestClockIn_OpensSessionAndRejectsSecond(t *testing.T) {
	stubUpload(t, func(ctx context.Context, url string, data []byte, contentType string) error { return nil })

	c := &fakeClient{}
	o := newOrchestrator(t, c, &fakeCapturer{}, time.Hour)

	id, at, err := o.ClockIn(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "s1", id)
	assert.Equal(t, time.Unix(1700000000, 0), at)
	assert.Equal(t, StateWorking, o.State())
	assert.Equal(t, "s1", o.SessionID())

	_, _, err = o.ClockIn(context.Background())
	assert.ErrorIs(t, err, common.ErrAlreadyClockedIn)
	assert.Equal(t, 1, c.clockIns)
}

func TestClockIn_RPCErrorLeavesStateIdle(t *testing.T) {
	c := &fakeClient{clockInErr: errBoom}
	o := newOrchestrator(t, c, &fakeCapturer{}, time.Hour)

	_, _, err := o.ClockIn(context.Background())
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, StateIdle, o.State())
	assert.Empty(t, o.SessionID())
}

func TestBreakTransitions(t *testing.T) {
	stubUpload(t, func(ctx context.Context, url string, data []byte, contentType string) error { return nil })

	c := &fakeClient{}
	o := newOrchestrator(t, c, &fakeCapturer{}, time.Hour)
	ctx := context.Background()

	_, err := o.StartBreak(ctx)
	assert.ErrorIs(t, err, common.ErrNoActiveSession)
	_, err = o.EndBreak(ctx)
	assert.ErrorIs(t, err, common.ErrNoActiveSession)

	_, _, err = o.ClockIn(ctx)
	require.NoError(t, err)

	_, err = o.EndBreak(ctx)
	assert.ErrorIs(t, err, common.ErrNotOnBreak)

	at, err := o.StartBreak(ctx)
	require.NoError(t, err)
	assert.Equal(t, time.Unix(1700000300, 0), at)
	assert.Equal(t, StateOnBreak, o.State())

	_, err = o.StartBreak(ctx)
	assert.ErrorIs(t, err, common.ErrAlreadyOnBreak)

	total, err := o.EndBreak(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(120), total)
	assert.Equal(t, StateWorking, o.State())
}

func TestBreak_RPCErrorKeepsState(t *testing.T) {
	stubUpload(t, func(ctx context.Context, url string, data []byte, contentType string) error { return nil })

	c := &fakeClient{startBreakErr: errBoom}
	o := newOrchestrator(t, c, &fakeCapturer{}, time.Hour)
	ctx := context.Background()

	_, _, err := o.ClockIn(ctx)
	require.NoError(t, err)

	_, err = o.StartBreak(ctx)
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, StateWorking, o.State())
}

func TestClockOut_ClosesSessionAndStopsCapture(t *testing.T) {
	stubUpload(t, func(ctx context.Context, url string, data []byte, contentType string) error { return nil })

	c := &fakeClient{}
	cap := &fakeCapturer{}
	o := newOrchestrator(t, c, cap, 10*time.Millisecond)
	ctx := context.Background()

	_, err := o.ClockOut(ctx)
	assert.ErrorIs(t, err, common.ErrNoActiveSession)

	_, _, err = o.ClockIn(ctx)
	require.NoError(t, err)

	waitFor(t, 2*time.Second, func() bool { return c.commits() >= 3 })

	summary, err := o.ClockOut(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3600), summary.TotalDurationSeconds)
	assert.Equal(t, int64(120), summary.BreakSeconds)
	assert.Equal(t, StateIdle, o.State())
	assert.Empty(t, o.SessionID())

	// no ticks may arrive after clock-out
	after := c.commits()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, c.commits())

	for _, id := range c.committed {
		assert.Equal(t, "s1", id)
	}
}

func TestCaptureTick_ContinuesDuringBreak(t *testing.T) {
	stubUpload(t, func(ctx context.Context, url string, data []byte, contentType string) error { return nil })

	c := &fakeClient{}
	o := newOrchestrator(t, c, &fakeCapturer{}, 10*time.Millisecond)
	ctx := context.Background()

	_, _, err := o.ClockIn(ctx)
	require.NoError(t, err)
	_, err = o.StartBreak(ctx)
	require.NoError(t, err)

	waitFor(t, 2*time.Second, func() bool { return c.commits() >= 2 })
}

func TestCaptureTick_FailedCaptureLeavesNoRecords(t *testing.T) {
	stubUpload(t, func(ctx context.Context, url string, data []byte, contentType string) error { return nil })

	c := &fakeClient{}
	cap := &fakeCapturer{err: errBoom}
	o := newOrchestrator(t, c, cap, 10*time.Millisecond)

	_, _, err := o.ClockIn(context.Background())
	require.NoError(t, err)

	waitFor(t, 2*time.Second, func() bool { return atomic.LoadInt64(&cap.calls) >= 3 })

	assert.Zero(t, c.begins())
	assert.Zero(t, c.commits())
	assert.Equal(t, StateWorking, o.State())
}

func TestCaptureTick_FailedUploadDropsScreenshot(t *testing.T) {
	stubUpload(t, func(ctx context.Context, url string, data []byte, contentType string) error {
		return errBoom
	})

	c := &fakeClient{}
	o := newOrchestrator(t, c, &fakeCapturer{}, 10*time.Millisecond)

	_, _, err := o.ClockIn(context.Background())
	require.NoError(t, err)

	waitFor(t, 2*time.Second, func() bool { return c.begins() >= 2 })
	assert.Zero(t, c.commits())
}

func TestRepeatedCycles_NoTimerLeak(t *testing.T) {
	var uploads int64
	stubUpload(t, func(ctx context.Context, url string, data []byte, contentType string) error {
		atomic.AddInt64(&uploads, 1)
		return nil
	})

	c := &fakeClient{}
	o := newOrchestrator(t, c, &fakeCapturer{}, 10*time.Millisecond)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _, err := o.ClockIn(ctx)
		require.NoError(t, err)
		_, err = o.ClockOut(ctx)
		require.NoError(t, err)
	}

	o.Shutdown()

	before := atomic.LoadInt64(&uploads)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, before, atomic.LoadInt64(&uploads))
	assert.Equal(t, 3, c.clockIns)
	assert.Equal(t, 3, c.clockOuts)
}
