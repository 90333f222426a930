package examsession

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prepdrill/backend/internal/domain/questionbank"
)

var (
	// ErrNoQuestions means the scope matched nothing; no attempt was started.
	ErrNoQuestions = errors.New("no questions available for the requested scope")
	// ErrUnknownQuestion means the referenced id is not part of the attempt.
	ErrUnknownQuestion = errors.New("question not in session")
	// ErrInvalidTransition means the operation is not legal in the current state.
	ErrInvalidTransition = errors.New("invalid session transition")
)

// State is the lifecycle position of the session engine.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateCompleted State = "completed"
)

// Session drives one timed attempt at a sampled slice of the bank. All
// methods are safe for concurrent use; the deadline timer and a manual
// Submit may race and finalization still happens exactly once.
type Session struct {
	mu   sync.Mutex
	bank *questionbank.QuestionBank

	id        string
	questions []Question
	current   int
	running   bool
	startedAt time.Time
	duration  time.Duration
	timer     *deadlineTimer
	result    *Report
}

// View is a copy of the session for rendering. Remaining is computed at
// copy time; poll again for a fresher value.
type View struct {
	ID        string
	State     State
	Questions []Question
	Current   int
	StartedAt time.Time
	Duration  time.Duration
	Remaining time.Duration
	Result    *Report
}

// New creates an idle engine over the bank.
func New(bank *questionbank.QuestionBank) *Session {
	return &Session{bank: bank}
}

// Start samples a fresh attempt. Legal from Idle or Completed; a running
// attempt must be submitted or reset first. The time limit derives from the
// requested count, so a short draw from a thin bank still gets the full
// time the caller asked for.
func (s *Session) Start(config Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("%w: session already running", ErrInvalidTransition)
	}

	questions := sample(s.bank.Snapshot(), config.Scope, config.Count)
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	minutes := int(math.Ceil(float64(config.Count) * 1.2))

	id := uuid.NewString()
	s.id = id
	s.questions = questions
	s.current = 0
	s.running = true
	s.startedAt = time.Now()
	s.duration = time.Duration(minutes) * time.Minute
	s.result = nil
	s.timer = armTimer(s.startedAt.Add(s.duration), func() { s.expire(id) })
	return nil
}

// SelectAnswer records the first answer for a question. Later calls for the
// same question leave the original answer in place.
func (s *Session) SelectAnswer(questionID, option string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return fmt.Errorf("%w: no running session", ErrInvalidTransition)
	}
	q := s.find(questionID)
	if q == nil {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	if q.UserAnswer != nil {
		return nil // first answer is final
	}
	q.UserAnswer = &option
	return nil
}

// Reveal marks a question's correct answer as shown. Idempotent, and legal
// on a completed attempt so review can keep opening answers.
func (s *Session) Reveal(questionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.find(questionID)
	if q == nil {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	q.Revealed = true
	return nil
}

// Navigate moves the cursor. Out-of-range indexes are ignored so boundary
// buttons can fire without guards.
func (s *Session) Navigate(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index >= 0 && index < len(s.questions) {
		s.current = index
	}
}

// Submit finalizes the running attempt and returns its report. Repeated
// calls, including the timer racing a manual submit, return the same report
// without rescoring.
func (s *Session) Submit() (*Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil {
		return s.result, nil
	}
	if !s.running {
		return nil, fmt.Errorf("%w: no running session", ErrInvalidTransition)
	}
	s.finalize()
	return s.result, nil
}

// expire is the deadline timer's path into finalization. Each timer carries
// the id of the attempt it was armed for; a callback that was already in
// flight when that attempt ended is dropped here instead of finalizing
// whatever attempt is current by then.
func (s *Session) expire(attemptID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.id != attemptID {
		return
	}
	s.finalize()
}

// finalize scores the attempt exactly once. Callers must hold mu.
func (s *Session) finalize() {
	if !s.running {
		return
	}
	s.timer.Cancel()
	report := Score(s.questions)
	s.result = &report
	s.running = false
}

// Reset drops the attempt and returns to Idle. The bank is untouched.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Cancel()
	}
	s.id = ""
	s.questions = nil
	s.current = 0
	s.running = false
	s.startedAt = time.Time{}
	s.duration = 0
	s.timer = nil
	s.result = nil
}

// Remaining returns the time left on the clock, zero whenever not running.
func (s *Session) Remaining() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.timer == nil {
		return 0
	}
	return s.timer.Remaining(time.Now())
}

// State reports the lifecycle position.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

// View copies the session for rendering.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	questions := make([]Question, len(s.questions))
	copy(questions, s.questions)

	var remaining time.Duration
	if s.running && s.timer != nil {
		remaining = s.timer.Remaining(time.Now())
	}

	return View{
		ID:        s.id,
		State:     s.state(),
		Questions: questions,
		Current:   s.current,
		StartedAt: s.startedAt,
		Duration:  s.duration,
		Remaining: remaining,
		Result:    s.result,
	}
}

// Question returns a copy of one session question by id.
func (s *Session) Question(questionID string) (Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.find(questionID)
	if q == nil {
		return Question{}, false
	}
	return *q, true
}

func (s *Session) state() State {
	switch {
	case s.running:
		return StateRunning
	case s.result != nil:
		return StateCompleted
	default:
		return StateIdle
	}
}

// find returns a pointer into the live slice. Callers must hold mu.
func (s *Session) find(questionID string) *Question {
	for i := range s.questions {
		if s.questions[i].ID == questionID {
			return &s.questions[i]
		}
	}
	return nil
}
