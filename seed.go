package main

import (
	"fmt"
	"slices"

	"gorm.io/gorm"

	"vmxio.com/kana-quiz/internal/kana"
)

// deckRows validates a compiled table and turns it into pair rows.
func deckRows(m kana.Mode) ([]Pair, error) {
	pairs, err := kana.Table(m)
	if err != nil {
		return nil, err
	}

	// Basic validation: unique symbols per mode
	seen := map[string]bool{}
	dups := []string{}
	for _, p := range pairs {
		if seen[p.Symbol] {
			dups = append(dups, p.Symbol)
		}
		seen[p.Symbol] = true
	}
	if len(dups) > 0 {
		return nil, fmt.Errorf("duplicate symbols in %s table: %v", m, dups)
	}

	rows := make([]Pair, 0, len(pairs))
	for i, p := range pairs {
		rows = append(rows, Pair{
			Mode:        string(m),
			Position:    i,
			Symbol:      p.Symbol,
			Translation: p.Translation,
		})
	}
	return rows, nil
}

// SeedDeck replaces the stored deck of a mode with its compiled-in table.
func SeedDeck(db *gorm.DB, m kana.Mode) error {
	rows, err := deckRows(m)
	if err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("mode = ?", string(m)).Delete(&Pair{}).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(&rows, 100).Error
	})
}

// SeedDecks writes the compiled-in tables of every mode into the pairs table.
func SeedDecks(db *gorm.DB) error {
	for _, m := range kana.Modes {
		if err := SeedDeck(db, m); err != nil {
			return err
		}
	}
	return nil
}

// EnsureDecks reseeds every mode whose stored deck differs from the compiled
// table, which covers both an empty database and a table changed since the
// last run. It reports the modes it wrote.
func EnsureDecks(db *gorm.DB) ([]kana.Mode, error) {
	var seeded []kana.Mode
	for _, m := range kana.Modes {
		want, err := kana.Table(m)
		if err != nil {
			return nil, err
		}
		have, err := LoadDeck(db, m)
		if err != nil {
			return nil, err
		}
		if slices.Equal(have, want) {
			continue
		}
		if err := SeedDeck(db, m); err != nil {
			return nil, fmt.Errorf("seed %s: %w", m, err)
		}
		seeded = append(seeded, m)
	}
	return seeded, nil
}
