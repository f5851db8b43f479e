package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dmitrijs2005/workfolio/internal/agent/client"
)

func formatDuration(seconds int64) string {
	return (time.Duration(seconds) * time.Second).String()
}

func formatInstant(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

// ClockIn opens a work session and starts the periodic screenshot capture.
func (a *App) ClockIn(ctx context.Context) error {
	sessionID, at, err := a.orch.ClockIn(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Clocked in at %s (session %s)\n", formatInstant(at), sessionID)
	return nil
}

// StartBreak pauses the session clock. Screenshots keep being taken.
func (a *App) StartBreak(ctx context.Context) error {
	at, err := a.orch.StartBreak(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Break started at %s\n", formatInstant(at))
	return nil
}

// EndBreak resumes the session clock.
func (a *App) EndBreak(ctx context.Context) error {
	total, err := a.orch.EndBreak(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Break ended, total break time %s\n", formatDuration(total))
	return nil
}

// ClockOut closes the session, prints the final accounting and shows the
// recent session history.
func (a *App) ClockOut(ctx context.Context) error {
	summary, err := a.orch.ClockOut(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Clocked out at %s: total %s, breaks %s\n",
		formatInstant(summary.ClockOutTime),
		formatDuration(summary.TotalDurationSeconds),
		formatDuration(summary.BreakSeconds))

	return a.History(ctx)
}

// History prints the user's recent sessions, most recent first.
func (a *App) History(ctx context.Context) error {
	sessions, err := a.client.ListSessions(ctx, 0)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	printSessions(sessions)
	return nil
}

// Screenshots prompts for a session id and prints the screenshots captured
// during that session.
func (a *App) Screenshots(ctx context.Context) error {
	sessionID, err := getSimpleText(a.reader, "Enter session id", os.Stdout)
	if err != nil {
		return err
	}

	shots, err := a.client.ListScreenshots(ctx, sessionID)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if len(shots) == 0 {
		fmt.Println("No screenshots")
		return nil
	}
	for _, s := range shots {
		fmt.Printf("%s  %s\n", formatInstant(s.Timestamp), s.URL)
	}
	return nil
}

// AdminSessions prints sessions across all users, optionally filtered by a
// date (YYYY-MM-DD) and a user id prefix. Admin only.
func (a *App) AdminSessions(ctx context.Context) error {
	date, err := getSimpleText(a.reader, "Enter date YYYY-MM-DD (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	userIDPrefix, err := getSimpleText(a.reader, "Enter user id prefix (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	sessions, err := a.client.ListAllSessions(ctx, date, userIDPrefix)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	printSessions(sessions)
	return nil
}

// Ping reports whether the backend is reachable.
func (a *App) Ping(ctx context.Context) error {
	if err := a.client.Ping(ctx); err != nil {
		fmt.Println("Server unreachable:", err.Error())
		return err
	}

	fmt.Println("Server is up")
	return nil
}

func printSessions(sessions []*client.SessionSummary) {
	if len(sessions) == 0 {
		fmt.Println("No sessions")
		return
	}

	for _, s := range sessions {
		status := "closed"
		if s.IsClockedIn {
			status = "open"
		}

		name := s.UserName
		if name == "" {
			name = s.UserID
		}

		fmt.Printf("%s  %s  in: %s  out: %s  total: %s  breaks: %s  [%s]  screenshots: %d\n",
			s.ID, name,
			formatInstant(s.ClockInTime), formatInstant(s.ClockOutTime),
			formatDuration(s.TotalDurationSeconds), formatDuration(s.BreakSeconds),
			status, len(s.Screenshots))
	}
}
