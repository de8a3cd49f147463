package main

import (
	"time"

	"vmxio.com/kana-quiz/internal/quiz"
)

// --- Decks ---

type Pair struct {
	ID          uint   `gorm:"primaryKey"`
	Mode        string `gorm:"size:16;not null;uniqueIndex:idx_pairs_mode_symbol"` // "hiragana" | "katakana"
	Position    int    `gorm:"not null"`                                           // order in the table
	Symbol      string `gorm:"size:16;not null;uniqueIndex:idx_pairs_mode_symbol"`
	Translation string `gorm:"size:32;not null"`
}

// --- Sessions ---

// QuizSession stores the whole state of one browser session. The state is
// replaced on every action, never patched.
type QuizSession struct {
	ID        string     `gorm:"primaryKey;size:36"`
	Mode      string     `gorm:"size:16;not null"`
	State     quiz.State `gorm:"serializer:json;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
