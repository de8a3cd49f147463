package main

import (
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vmxio.com/kana-quiz/internal/kana"
	"vmxio.com/kana-quiz/internal/quiz"
)

// busyTimeoutMS is how long a connection waits for the sqlite write lock.
const busyTimeoutMS = "5000"

// OpenDB opens the sqlite file with a single pooled connection, so session
// transactions queue behind each other instead of failing with SQLITE_BUSY.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn(path)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(" + busyTimeoutMS + ")"
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Pair{},
		&QuizSession{},
	)
}

// LoadDeck returns the pairs of a mode in table order.
func LoadDeck(db *gorm.DB, mode kana.Mode) ([]quiz.Pair, error) {
	var rows []Pair
	if err := db.Where("mode = ?", string(mode)).Order("position").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]quiz.Pair, 0, len(rows))
	for _, r := range rows {
		out = append(out, quiz.Pair{Symbol: r.Symbol, Translation: r.Translation})
	}
	return out, nil
}

// LoadDecks loads every playable mode.
func LoadDecks(db *gorm.DB) (map[kana.Mode][]quiz.Pair, error) {
	decks := make(map[kana.Mode][]quiz.Pair, len(kana.Modes))
	for _, m := range kana.Modes {
		pairs, err := LoadDeck(db, m)
		if err != nil {
			return nil, err
		}
		decks[m] = pairs
	}
	return decks, nil
}
