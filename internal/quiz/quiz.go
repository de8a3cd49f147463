// Package quiz builds multiple-choice batches from a table of symbol/translation
// pairs and scores the answers given to them.
package quiz

import "errors"

// OptionCount is the number of options offered per question.
const OptionCount = 4

var (
	ErrEmptyTable              = errors.New("pair table is empty")
	ErrInvalidBatchSize        = errors.New("batch size must be positive")
	ErrBatchTooLarge           = errors.New("batch size exceeds table size")
	ErrDuplicateSymbol         = errors.New("duplicate symbol in table")
	ErrInsufficientDistractors = errors.New("not enough distinct distractors")
	ErrUnknownQuestion         = errors.New("unknown question")
	ErrInvalidOption           = errors.New("option not offered for question")
	ErrAlreadySubmitted        = errors.New("batch already submitted")
)

// Pair associates a symbol with its translation.
type Pair struct {
	Symbol      string `json:"symbol"`
	Translation string `json:"translation"`
}

// Question is one multiple-choice item of a batch.
type Question struct {
	ID            int      `json:"id"` // position in the batch
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}
