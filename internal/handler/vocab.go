package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/seb0305/aenigma-verborum/internal/models"
)

const headwordKey = "headword"

func (h *Handler) listVocabulary(c *gin.Context) {
	filter := models.VocabularyFilter{Search: c.Query("q")}
	if cat := c.Query("category"); cat != "" {
		filter.Category = models.ParseCategory(cat)
	}

	items, err := h.service.ListVocabulary(c.Request.Context(), userID(c), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]VocabularyResponse, 0, len(items))
	for _, v := range items {
		resp = append(resp, toVocabularyResponse(v))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) addVocabulary(c *gin.Context) {
	var req AddVocabularyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	c.Set(headwordKey, req.Headword)

	in := models.NewVocabulary{
		UserID:      userID(c),
		Headword:    req.Headword,
		Translation: req.Translation,
		Inflection:  req.Inflection,
	}
	if req.Category != "" {
		in.Category = models.ParseCategory(req.Category)
	}

	item, err := h.service.AddVocabulary(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toVocabularyResponse(item))
}

func (h *Handler) updateVocabulary(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	var req UpdateVocabularyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	patch := models.VocabularyPatch{
		Headword:    req.Headword,
		Translation: req.Translation,
		Inflection:  req.Inflection,
	}
	if req.Category != nil {
		cat := models.ParseCategory(*req.Category)
		patch.Category = &cat
	}

	item, err := h.service.UpdateVocabulary(c.Request.Context(), userID(c), id, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toVocabularyResponse(item))
}

func (h *Handler) deleteVocabulary(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := h.service.DeleteVocabulary(c.Request.Context(), userID(c), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func idParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", c.Param("id"))
	}
	return id, nil
}
