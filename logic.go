package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vmxio.com/kana-quiz/internal/kana"
	"vmxio.com/kana-quiz/internal/quiz"
)

var ErrSessionNotFound = errors.New("session not found")

// QuizService runs quiz sessions. Every action loads the session, derives the
// next state from it and stores that state in place of the old one.
type QuizService struct {
	db         *gorm.DB
	generators map[kana.Mode]*quiz.Generator
	batchSize  int
	log        *zap.Logger
}

// NewQuizService builds one generator per deck. A deck that cannot produce
// well-formed batches of batchSize questions is a startup error.
func NewQuizService(
	db *gorm.DB,
	decks map[kana.Mode][]quiz.Pair,
	batchSize int,
	log *zap.Logger,
	opts ...quiz.Option,
) (*QuizService, error) {
	generators := make(map[kana.Mode]*quiz.Generator, len(decks))
	for _, m := range kana.Modes {
		g, err := quiz.NewGenerator(decks[m], batchSize, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s deck: %w", m, err)
		}
		generators[m] = g
	}
	return &QuizService{
		db:         db,
		generators: generators,
		batchSize:  batchSize,
		log:        log.Named("quiz"),
	}, nil
}

func (s *QuizService) BatchSize() int { return s.batchSize }

// Deck returns the table a mode draws from.
func (s *QuizService) Deck(mode kana.Mode) ([]quiz.Pair, error) {
	g, err := s.generator(mode)
	if err != nil {
		return nil, err
	}
	return g.Pairs(), nil
}

func (s *QuizService) generator(mode kana.Mode) (*quiz.Generator, error) {
	g, ok := s.generators[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", kana.ErrUnknownMode, mode)
	}
	return g, nil
}

func (s *QuizService) batch(mode kana.Mode) (quiz.State, error) {
	g, err := s.generator(mode)
	if err != nil {
		return quiz.State{}, err
	}
	return quiz.NewState(string(mode), g.Generate()), nil
}

// Start opens a new session on a fresh batch.
func (s *QuizService) Start(ctx context.Context, mode kana.Mode) (string, quiz.State, error) {
	st, err := s.batch(mode)
	if err != nil {
		return "", quiz.State{}, err
	}
	sess := QuizSession{
		ID:    uuid.New().String(),
		Mode:  st.Mode,
		State: st,
	}
	if err := s.db.WithContext(ctx).Create(&sess).Error; err != nil {
		return "", quiz.State{}, fmt.Errorf("create session: %w", err)
	}
	s.log.Debug("session started", zap.String("session", sess.ID), zap.String("mode", sess.Mode))
	return sess.ID, st, nil
}

// Load returns the current state of a session.
func (s *QuizService) Load(ctx context.Context, id string) (quiz.State, error) {
	var sess QuizSession
	if err := s.db.WithContext(ctx).First(&sess, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return quiz.State{}, ErrSessionNotFound
		}
		return quiz.State{}, fmt.Errorf("load session: %w", err)
	}
	return sess.State, nil
}

// Exists reports whether a session id is known.
func (s *QuizService) Exists(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	var count int64
	if err := s.db.WithContext(ctx).Model(&QuizSession{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *QuizService) update(
	ctx context.Context, id string, next func(quiz.State) (quiz.State, error),
) (quiz.State, error) {
	var out quiz.State
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sess QuizSession
		if err := tx.First(&sess, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}
		st, err := next(sess.State)
		if err != nil {
			return err
		}
		sess.State = st
		sess.Mode = st.Mode
		if err := tx.Save(&sess).Error; err != nil {
			return fmt.Errorf("save session: %w", err)
		}
		out = st
		return nil
	})
	return out, err
}

// NewBatch discards the session's batch and answers and draws a new batch in
// the same mode.
func (s *QuizService) NewBatch(ctx context.Context, id string) (quiz.State, error) {
	return s.update(ctx, id, func(st quiz.State) (quiz.State, error) {
		return s.batch(kana.Mode(st.Mode))
	})
}

// SwitchMode discards the session state and starts over in another mode.
func (s *QuizService) SwitchMode(ctx context.Context, id string, mode kana.Mode) (quiz.State, error) {
	return s.update(ctx, id, func(quiz.State) (quiz.State, error) {
		return s.batch(mode)
	})
}

// Select records the option chosen for a question.
func (s *QuizService) Select(ctx context.Context, id string, questionID int, option string) (quiz.State, error) {
	return s.update(ctx, id, func(st quiz.State) (quiz.State, error) {
		return st.Select(questionID, option)
	})
}

// Submit scores the session.
func (s *QuizService) Submit(ctx context.Context, id string) (quiz.State, error) {
	st, err := s.update(ctx, id, func(st quiz.State) (quiz.State, error) {
		return st.Submit(), nil
	})
	if err != nil {
		return st, err
	}
	s.log.Info("batch submitted",
		zap.String("session", id),
		zap.String("mode", st.Mode),
		zap.Int("score", *st.Score),
		zap.Int("total", len(st.Questions)),
	)
	return st, nil
}

// PruneSessions deletes sessions that have not been touched within ttl.
func (s *QuizService) PruneSessions(ctx context.Context, ttl time.Duration) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("updated_at < ?", time.Now().Add(-ttl)).
		Delete(&QuizSession{})
	if res.Error != nil {
		return 0, fmt.Errorf("prune sessions: %w", res.Error)
	}
	return res.RowsAffected, nil
}
