package quiz

import (
	"fmt"
	"slices"
)

// State is the state of one quiz session. It is treated as a value: every
// operation returns a new State and leaves the receiver unchanged.
type State struct {
	Mode      string         `json:"mode"`
	Questions []Question     `json:"questions"`
	Answers   map[int]string `json:"answers"`
	Score     *int           `json:"score,omitempty"` // nil until submitted
}

// NewState starts a session on a fresh batch with no answers and no score.
func NewState(mode string, questions []Question) State {
	return State{
		Mode:      mode,
		Questions: questions,
		Answers:   map[int]string{},
	}
}

// Submitted reports whether a score has been computed.
func (s State) Submitted() bool { return s.Score != nil }

// Question looks up a question of the batch by id.
func (s State) Question(id int) (Question, bool) {
	for _, q := range s.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Select records option as the answer to question id. A submitted batch is
// locked: its answer key is visible, so answers only change on a new batch.
func (s State) Select(id int, option string) (State, error) {
	if s.Submitted() {
		return s, ErrAlreadySubmitted
	}
	q, ok := s.Question(id)
	if !ok {
		return s, fmt.Errorf("%w: %d", ErrUnknownQuestion, id)
	}
	if !slices.Contains(q.Options, option) {
		return s, fmt.Errorf("%w: %q for question %d", ErrInvalidOption, option, id)
	}

	answers := make(map[int]string, len(s.Answers)+1)
	for k, v := range s.Answers {
		answers[k] = v
	}
	answers[id] = option

	next := s
	next.Answers = answers
	return next, nil
}

// Submit scores the current answers. Submitting again returns the same score.
func (s State) Submit() State {
	score := Score(s.Questions, s.Answers)
	next := s
	next.Score = &score
	return next
}

// ReviewItem is one line of a submitted batch's summary.
type ReviewItem struct {
	QuestionID    int    `json:"questionId"`
	Prompt        string `json:"prompt"`
	Selected      string `json:"selected,omitempty"`
	CorrectAnswer string `json:"correctAnswer"`
	WasCorrect    bool   `json:"wasCorrect"`
}

// Summary is the score readout of a session.
type Summary struct {
	Total    int          `json:"total"`
	Answered int          `json:"answered"`
	Correct  int          `json:"correct"`
	Wrong    int          `json:"wrong"`
	Items    []ReviewItem `json:"items"`
}

// Summary reviews every question against the recorded answers.
func (s State) Summary() Summary {
	sum := Summary{
		Total: len(s.Questions),
		Items: make([]ReviewItem, 0, len(s.Questions)),
	}
	for _, q := range s.Questions {
		selected, answered := s.Answers[q.ID]
		ok := answered && selected == q.CorrectAnswer
		if answered {
			sum.Answered++
		}
		if ok {
			sum.Correct++
		}
		sum.Items = append(sum.Items, ReviewItem{
			QuestionID:    q.ID,
			Prompt:        q.Prompt,
			Selected:      selected,
			CorrectAnswer: q.CorrectAnswer,
			WasCorrect:    ok,
		})
	}
	sum.Wrong = sum.Total - sum.Correct
	return sum
}
