package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/seb0305/aenigma-verborum/internal/models"
)

func (h *Handler) startSession(c *gin.Context) {
	id, err := h.service.StartSession(c.Request.Context(), userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, SessionResponse{SessionID: id})
}

func (h *Handler) nextQuestion(c *gin.Context) {
	var sessionID *int64
	if raw := c.Query("session_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			badRequest(c, fmt.Errorf("invalid session_id %q", raw))
			return
		}
		sessionID = &id
	}

	q, err := h.service.NextQuestion(c.Request.Context(), userID(c), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuestionResponse{
		ItemID:       q.ItemID,
		Headword:     q.Headword,
		Options:      q.Options,
		CorrectIndex: q.CorrectIndex,
	})
}

func (h *Handler) submitAnswer(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.service.SubmitAnswer(c.Request.Context(), userID(c), req.SessionID, req.ItemID, req.Answer)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAnswerResponse(res))
}

func (h *Handler) finishSession(c *gin.Context) {
	var req FinishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.service.FinishSession(c.Request.Context(), userID(c), req.SessionID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func drillCategory(c *gin.Context) (models.Category, bool) {
	category := models.ParseCategory(c.Param("category"))
	if _, ok := models.DrillMode(category); !ok {
		badRequest(c, fmt.Errorf("no drill for category %q", c.Param("category")))
		return "", false
	}
	return category, true
}

func (h *Handler) startDrill(c *gin.Context) {
	category, ok := drillCategory(c)
	if !ok {
		return
	}

	id, err := h.service.StartDrill(c.Request.Context(), userID(c), category)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, SessionResponse{SessionID: id})
}

func (h *Handler) nextDrillItem(c *gin.Context) {
	category, ok := drillCategory(c)
	if !ok {
		return
	}

	q, err := h.service.NextDrillItem(c.Request.Context(), userID(c), category)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, DrillQuestionResponse{
		SessionID: q.SessionID,
		ItemID:    q.ItemID,
		Headword:  q.Headword,
		Category:  string(q.Category),
	})
}

func (h *Handler) submitDrillAnswer(c *gin.Context) {
	category, ok := drillCategory(c)
	if !ok {
		return
	}

	var req DrillAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.service.SubmitDrillAnswer(c.Request.Context(), userID(c), category, req.Headword, req.Inflection)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAnswerResponse(res))
}

func (h *Handler) rewardCards(c *gin.Context) {
	cards, err := h.service.RewardCards(c.Request.Context(), userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]RewardCardResponse, 0, len(cards))
	for _, card := range cards {
		resp = append(resp, RewardCardResponse{
			RewardID:    card.RewardID,
			Tier:        string(card.Tier),
			Title:       card.Title,
			Description: card.Description,
			ImageRef:    card.ImageRef,
			Headword:    card.Headword,
			Translation: card.Translation,
			Accuracy:    card.Accuracy,
			AcquiredAt:  card.AcquiredAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}
