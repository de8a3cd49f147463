package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vmxio.com/kana-quiz/internal/kana"
	"vmxio.com/kana-quiz/internal/quiz"
)

/*** DTOs shared across handlers ***/

type QuestionDTO struct {
	ID            int      `json:"id"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	Selected      string   `json:"selected,omitempty"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"` // only after submit
}

type SessionDTO struct {
	SessionID string        `json:"sessionId"`
	Mode      string        `json:"mode"`
	Title     string        `json:"title"`
	Questions []QuestionDTO `json:"questions"`
	Answered  int           `json:"answered"`
	Total     int           `json:"total"`
	Score     *int          `json:"score"` // null until submitted
}

type ModeDTO struct {
	Mode     string `json:"mode"`
	Title    string `json:"title"`
	DeckSize int    `json:"deckSize"`
}

func toSessionDTO(id string, st quiz.State) SessionDTO {
	qs := make([]QuestionDTO, 0, len(st.Questions))
	for _, q := range st.Questions {
		dto := QuestionDTO{
			ID:       q.ID,
			Prompt:   q.Prompt,
			Options:  q.Options,
			Selected: st.Answers[q.ID],
		}
		if st.Submitted() {
			dto.CorrectAnswer = q.CorrectAnswer
		}
		qs = append(qs, dto)
	}
	return SessionDTO{
		SessionID: id,
		Mode:      st.Mode,
		Title:     kana.Mode(st.Mode).Title(len(st.Questions)),
		Questions: qs,
		Answered:  len(st.Answers),
		Total:     len(st.Questions),
		Score:     st.Score,
	}
}

func writeError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, kana.ErrUnknownMode),
		errors.Is(err, quiz.ErrUnknownQuestion),
		errors.Is(err, quiz.ErrInvalidOption):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, quiz.ErrAlreadySubmitted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	default:
		log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
	}
}

/*** Decks ***/

func ListModes(svc *QuizService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out := make([]ModeDTO, 0, len(kana.Modes))
		for _, m := range kana.Modes {
			deck, err := svc.Deck(m)
			if err != nil {
				writeError(c, svc.log, err)
				return
			}
			out = append(out, ModeDTO{Mode: string(m), Title: m.Title(svc.BatchSize()), DeckSize: len(deck)})
		}
		c.JSON(http.StatusOK, out)
	}
}

func GetDeck(svc *QuizService) gin.HandlerFunc {
	return func(c *gin.Context) {
		mode, err := kana.ParseMode(c.Param("mode"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "deck not found"})
			return
		}
		deck, err := svc.Deck(mode)
		if err != nil {
			writeError(c, svc.log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"mode":  mode,
			"pairs": deck,
		})
	}
}

/*** Session ***/

func GetSession(svc *QuizService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, st, created, err := openSession(c, svc, kana.Hiragana)
		if err == nil && !created {
			st, err = svc.Load(c.Request.Context(), id)
		}
		if err != nil {
			writeError(c, svc.log, err)
			return
		}
		c.JSON(http.StatusOK, toSessionDTO(id, st))
	}
}

// NewBatch serves both "new batch" and "try again".
func NewBatch(svc *QuizService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, st, created, err := openSession(c, svc, kana.Hiragana)
		if err == nil && !created {
			st, err = svc.NewBatch(c.Request.Context(), id)
		}
		if err != nil {
			writeError(c, svc.log, err)
			return
		}
		c.JSON(http.StatusOK, toSessionDTO(id, st))
	}
}

type SwitchModeReq struct {
	Mode string `json:"mode"`
}

func SwitchMode(svc *QuizService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SwitchModeReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}
		mode, err := kana.ParseMode(req.Mode)
		if err != nil {
			writeError(c, svc.log, err)
			return
		}
		id, st, created, err := openSession(c, svc, mode)
		if err == nil && !created {
			st, err = svc.SwitchMode(c.Request.Context(), id, mode)
		}
		if err != nil {
			writeError(c, svc.log, err)
			return
		}
		c.JSON(http.StatusOK, toSessionDTO(id, st))
	}
}

type SelectAnswerReq struct {
	QuestionID *int   `json:"questionId"`
	Option     string `json:"option"`
}

func SelectAnswer(svc *QuizService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SelectAnswerReq
		if err := c.ShouldBindJSON(&req); err != nil || req.QuestionID == nil || req.Option == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "questionId and option required"})
			return
		}
		id, _, _, err := openSession(c, svc, kana.Hiragana)
		if err != nil {
			writeError(c, svc.log, err)
			return
		}
		st, err := svc.Select(c.Request.Context(), id, *req.QuestionID, req.Option)
		if err != nil {
			writeError(c, svc.log, err)
			return
		}
		c.JSON(http.StatusOK, toSessionDTO(id, st))
	}
}

func Submit(svc *QuizService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _, _, err := openSession(c, svc, kana.Hiragana)
		if err != nil {
			writeError(c, svc.log, err)
			return
		}
		st, err := svc.Submit(c.Request.Context(), id)
		if err != nil {
			writeError(c, svc.log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"score":   *st.Score,
			"total":   len(st.Questions),
			"summary": st.Summary(),
			"session": toSessionDTO(id, st),
		})
	}
}
