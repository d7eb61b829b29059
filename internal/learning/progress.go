package learning

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"
)

var (
	// ErrLocked is returned when a lesson's prerequisites are not complete.
	ErrLocked = errors.New("lesson prerequisites not completed")
	// ErrNoQuiz is returned when grading a lesson without a quiz.
	ErrNoQuiz = errors.New("lesson has no quiz")
	// ErrQuizRequired is returned when completing a lesson that must be passed through its quiz.
	ErrQuizRequired = errors.New("lesson is completed by passing its quiz")
)

const (
	// pointsPerScore converts a quiz percentage into learning points.
	pointsPerScore = 10
	// readingScore is credited for lessons without a quiz.
	readingScore = 100
)

// Progress is one learner's record.
type Progress struct {
	UserID           string             `json:"userId"`
	CompletedLessons []string           `json:"completedLessons"`
	TotalPoints      int                `json:"totalPoints"`
	EarnedBadges     []string           `json:"earnedBadges"`
	QuizScores       map[string]float64 `json:"quizScores"`
	StreakDays       int                `json:"streakDays"`
	LastActivity     time.Time          `json:"lastActivityDate"`
}

// Tracker keeps learner progress in memory. It is safe for concurrent use.
type Tracker struct {
	catalog *Catalog

	mu    sync.Mutex
	users map[string]*Progress
	now   func() time.Time
}

// NewTracker creates a Tracker over catalog.
func NewTracker(catalog *Catalog) *Tracker {
	return &Tracker{
		catalog: catalog,
		users:   make(map[string]*Progress),
		now:     time.Now,
	}
}

// Progress returns a copy of a learner's record; unknown learners get an empty one.
func (t *Tracker) Progress(user string) Progress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.get(user).clone()
}

// Unlocked reports whether every prerequisite of lesson is complete for user.
func (t *Tracker) Unlocked(user string, lesson Lesson) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.unlocked(t.get(user), lesson)
}

// SubmitQuiz grades answers for a lesson's quiz and, when passed, records the
// lesson as complete: quiz score times ten points plus the lesson's badges.
// A lesson is only credited once; retakes update the recorded score.
// Scores are keyed by lesson id.
func (t *Tracker) SubmitQuiz(user, lessonID string, answers map[string]string) (QuizResult, error) {
	lesson, err := t.catalog.Lesson(lessonID)
	if err != nil {
		return QuizResult{}, err
	}
	if lesson.Quiz == nil {
		return QuizResult{}, fmt.Errorf("%w: %s", ErrNoQuiz, lessonID)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	p := t.get(user)
	if !t.unlocked(p, lesson) {
		return QuizResult{}, fmt.Errorf("%w: %s", ErrLocked, lessonID)
	}

	res := GradeQuiz(*lesson.Quiz, answers)
	p.QuizScores[lesson.ID] = res.Score
	t.touch(p)

	if res.Passed {
		credit(p, lesson, res.Score)
	}
	return res, nil
}

// CompleteLesson marks a lesson without a quiz as read, crediting it with a
// full score. Lessons with a quiz return ErrQuizRequired.
func (t *Tracker) CompleteLesson(user, lessonID string) (Progress, error) {
	lesson, err := t.catalog.Lesson(lessonID)
	if err != nil {
		return Progress{}, err
	}
	if lesson.Quiz != nil {
		return Progress{}, fmt.Errorf("%w: %s", ErrQuizRequired, lessonID)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	p := t.get(user)
	if !t.unlocked(p, lesson) {
		return Progress{}, fmt.Errorf("%w: %s", ErrLocked, lessonID)
	}

	p.QuizScores[lesson.ID] = readingScore
	t.touch(p)
	credit(p, lesson, readingScore)
	return p.clone(), nil
}

// credit completes lesson once, adding score-based points and its badges.
func credit(p *Progress, lesson Lesson, score float64) {
	if slices.Contains(p.CompletedLessons, lesson.ID) {
		return
	}
	p.CompletedLessons = append(p.CompletedLessons, lesson.ID)
	p.TotalPoints += int(score) * pointsPerScore
	for _, b := range lesson.Rewards.Badges {
		if !slices.Contains(p.EarnedBadges, b) {
			p.EarnedBadges = append(p.EarnedBadges, b)
		}
	}
}

func (t *Tracker) get(user string) *Progress {
	p, ok := t.users[user]
	if !ok {
		p = &Progress{
			UserID:           user,
			CompletedLessons: []string{},
			EarnedBadges:     []string{},
			QuizScores:       make(map[string]float64),
		}
		t.users[user] = p
	}
	return p
}

func (t *Tracker) unlocked(p *Progress, lesson Lesson) bool {
	for _, pre := range lesson.Prerequisites {
		if !slices.Contains(p.CompletedLessons, pre) {
			return false
		}
	}
	return true
}

// touch updates the activity streak: consecutive days extend it, a gap resets it.
func (t *Tracker) touch(p *Progress) {
	now := t.now()
	switch days := dayNumber(now) - dayNumber(p.LastActivity); {
	case p.LastActivity.IsZero() || days > 1:
		p.StreakDays = 1
	case days == 1:
		p.StreakDays++
	}
	p.LastActivity = now
}

func dayNumber(t time.Time) int64 {
	return t.UTC().Unix() / 86400
}

func (p *Progress) clone() Progress {
	out := *p
	out.CompletedLessons = slices.Clone(p.CompletedLessons)
	out.EarnedBadges = slices.Clone(p.EarnedBadges)
	out.QuizScores = make(map[string]float64, len(p.QuizScores))
	for k, v := range p.QuizScores {
		out.QuizScores[k] = v
	}
	return out
}
