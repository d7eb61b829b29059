package learning

import "strings"

type Quiz struct {
	ID           string     `yaml:"id" json:"id"`
	Questions    []Question `yaml:"questions" json:"questions"`
	PassingScore float64    `yaml:"passingScore" json:"passingScore"`
}

type Question struct {
	ID            string   `yaml:"id" json:"id"`
	Question      string   `yaml:"question" json:"question"`
	Type          string   `yaml:"type" json:"type"`
	Options       []string `yaml:"options" json:"options,omitempty"`
	CorrectAnswer string   `yaml:"correctAnswer" json:"correctAnswer"`
	Explanation   string   `yaml:"explanation" json:"explanation"`
	Points        int      `yaml:"points" json:"points"`
}

// QuizResult is the outcome of grading a set of answers.
type QuizResult struct {
	Score    float64         `json:"score"` // percent of questions answered correctly
	Points   int             `json:"points"`
	Passed   bool            `json:"passed"`
	Message  string          `json:"message"`
	Feedback map[string]bool `json:"feedback"`
}

// GradeQuiz grades answers keyed by question id. Answers match when equal
// ignoring case and surrounding space; unanswered questions are wrong.
func GradeQuiz(q Quiz, answers map[string]string) QuizResult {
	res := QuizResult{Feedback: make(map[string]bool, len(q.Questions))}

	correct := 0
	for _, question := range q.Questions {
		given, ok := answers[question.ID]
		ok = ok && strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(question.CorrectAnswer))
		res.Feedback[question.ID] = ok
		if ok {
			correct++
			res.Points += question.Points
		}
	}

	if len(q.Questions) > 0 {
		res.Score = float64(correct) / float64(len(q.Questions)) * 100
	}
	res.Passed = res.Score >= q.PassingScore
	res.Message = scoreMessage(res.Score)
	return res
}

func scoreMessage(score float64) string {
	switch {
	case score >= 90:
		return "🌟 Amazing! You're a garden genius!"
	case score >= 70:
		return "😊 Great job! You're learning so much!"
	case score >= 50:
		return "🌱 Good try! Keep learning and growing!"
	default:
		return "🌱 That's okay! Every gardener learns by trying!"
	}
}
