package scheduler

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/kanasensei/internal/progress"
)

// DefaultReminderHour is the local hour at which the daily review
// reminder fires
const DefaultReminderHour = 18

// Notifier receives the daily review reminder
type Notifier interface {
	SendReviewReminder(pendingCount int, studyStreak int) error
}

// LogNotifier writes reminders to the application log. It stands in until
// a push channel is wired up.
type LogNotifier struct{}

// SendReviewReminder logs the reminder
func (LogNotifier) SendReviewReminder(pendingCount int, studyStreak int) error {
	log.Printf("Review reminder: %d items waiting in the review set, study streak %d days", pendingCount, studyStreak)
	return nil
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	tracker   *progress.Tracker
	notifier  Notifier
}

// New creates a new scheduler instance
func New(tracker *progress.Tracker, notifier Notifier) *Scheduler {
	s := gocron.NewScheduler(time.Local)
	return &Scheduler{
		scheduler: s,
		tracker:   tracker,
		notifier:  notifier,
	}
}

// Start schedules the daily reminder and runs it in the background. The
// hour is taken from REMINDER_HOUR when set to a valid 0-23 value.
func (s *Scheduler) Start() {
	hour := DefaultReminderHour
	if raw := os.Getenv("REMINDER_HOUR"); raw != "" {
		if h, err := strconv.Atoi(raw); err == nil && h >= 0 && h <= 23 {
			hour = h
		}
	}

	s.scheduler.Every(1).Day().At(fmt.Sprintf("%02d:00", hour)).Do(s.checkAndRemind)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndRemind sends a reminder when the review set is non-empty
func (s *Scheduler) checkAndRemind() {
	pending := len(s.tracker.IncorrectItems())
	if pending == 0 {
		return
	}
	if err := s.notifier.SendReviewReminder(pending, s.tracker.StudyStreak()); err != nil {
		log.Printf("Error sending review reminder: %v", err)
	}
}

// RunManualCheck forces the reminder check immediately
func (s *Scheduler) RunManualCheck() {
	s.checkAndRemind()
}
