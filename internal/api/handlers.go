package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kiutdigital/clubportal/internal/idcard"
	"github.com/kiutdigital/clubportal/internal/member"
)

type Handler struct {
	Store member.Store
	Cards *idcard.Generator
	Log   *slog.Logger
}

func NewHandler(store member.Store, cards *idcard.Generator, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{Store: store, Cards: cards, Log: log}
}

// health
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// verifyID is the public lookup behind the QR code on every card front.
func (h *Handler) verifyID(c *gin.Context) {
	number := c.Param("memberID")
	m, err := h.Store.GetByMemberIDNumber(c.Request.Context(), number)
	if errors.Is(err, member.ErrMemberNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"valid": false})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	resp := gin.H{
		"valid":  true,
		"name":   m.FullName,
		"status": m.Status,
	}
	if !m.CreatedAt.IsZero() {
		resp["member_since"] = m.CreatedAt.Format("January 2006")
	}
	c.JSON(http.StatusOK, resp)
}

// digitalID streams one face of the member's card as an attachment,
// regenerating the pair first when the stored file is stale or missing.
func (h *Handler) digitalID(c *gin.Context) {
	m, ok := h.memberFromPath(c)
	if !ok {
		return
	}

	if h.Cards.NeedsRegeneration(m) {
		if !h.regenerate(c, m) {
			return
		}
	}

	side := c.DefaultQuery("side", "front")
	if side != "front" && side != "back" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "side must be front or back"})
		return
	}
	filename := m.DigitalIDPath
	if side == "back" {
		filename = idcard.BackFilenameFor(m.DigitalIDPath)
	}

	path := filepath.Join(h.Cards.OutputDir(), filename)
	downloadName := fmt.Sprintf("DigitalClub_ID_%s_%s.png", m.MemberIDNumber, side)
	c.FileAttachment(path, downloadName)
}

// regenerateDigitalID drops the current pair and builds a fresh one.
func (h *Handler) regenerateDigitalID(c *gin.Context) {
	m, ok := h.memberFromPath(c)
	if !ok {
		return
	}
	if err := h.Cards.Delete(m); err != nil {
		h.Log.Error("deleting digital ID", "member", m.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !h.regenerate(c, m) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"front": m.DigitalIDPath,
		"back":  idcard.BackFilenameFor(m.DigitalIDPath),
	})
}

// regenerate runs generation and persists the updated record. On failure it
// writes a 503 so interactive flows can continue without a card.
func (h *Handler) regenerate(c *gin.Context, m *member.Member) bool {
	front, back, err := h.Cards.Generate(c.Request.Context(), m, "")
	if err != nil {
		h.Log.Error("generating digital ID", "member", m.ID, "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "digital ID not available yet"})
		return false
	}
	if err := h.Store.Save(c.Request.Context(), m); err != nil {
		h.Log.Error("saving member after ID generation", "member", m.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return false
	}
	h.Log.Info("digital ID generated", "member", m.ID, "front", front, "back", back)
	return true
}

func (h *Handler) memberFromPath(c *gin.Context) (*member.Member, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return nil, false
	}
	m, err := h.Store.GetByID(c.Request.Context(), id)
	if errors.Is(err, member.ErrMemberNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return m, true
}
