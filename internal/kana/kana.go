// Package kana holds the compiled-in character sets the quiz is played on.
package kana

import (
	"errors"
	"fmt"
	"strings"

	"vmxio.com/kana-quiz/internal/quiz"
)

// Mode selects a character set.
type Mode string

const (
	Hiragana Mode = "hiragana"
	Katakana Mode = "katakana"
)

var ErrUnknownMode = errors.New("unknown mode")

// Modes lists the playable character sets in display order.
var Modes = []Mode{Hiragana, Katakana}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case Hiragana, Katakana:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Title is the heading shown above a batch of the given size.
func (m Mode) Title(batchSize int) string {
	name := string(m)
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return fmt.Sprintf("%s → Bangla MCQ (%d Random)", name, batchSize)
}

// Table returns a copy of the pairs of a mode.
func Table(m Mode) ([]quiz.Pair, error) {
	switch m {
	case Hiragana:
		return append([]quiz.Pair(nil), hiragana...), nil
	case Katakana:
		return KatakanaFrom(hiragana), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, m)
}

const (
	hiraganaFirst = 0x3041 // ぁ
	hiraganaLast  = 0x3096 // ゖ
	katakanaShift = 0x60
)

// ToKatakana shifts every hiragana rune onto its katakana counterpart.
// Runes outside the hiragana block are kept as they are.
func ToKatakana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= hiraganaFirst && r <= hiraganaLast {
			return r + katakanaShift
		}
		return r
	}, s)
}

// KatakanaFrom derives a katakana table; translations are unchanged.
func KatakanaFrom(pairs []quiz.Pair) []quiz.Pair {
	out := make([]quiz.Pair, len(pairs))
	for i, p := range pairs {
		out[i] = quiz.Pair{Symbol: ToKatakana(p.Symbol), Translation: p.Translation}
	}
	return out
}
