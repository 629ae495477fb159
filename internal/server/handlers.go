package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mungbws1031/leo-study/internal/history"
	"github.com/mungbws1031/leo-study/internal/mission"
	"github.com/mungbws1031/leo-study/internal/pkg/logger"
	"github.com/mungbws1031/leo-study/internal/profile"
	"github.com/mungbws1031/leo-study/internal/render"
	"github.com/mungbws1031/leo-study/internal/report"
)

const dayLayout = "20060102"

type handler struct {
	Deps
	log *logger.Logger
}

type childView struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Grade            string   `json:"grade"`
	Category         string   `json:"category"`
	AttentionSupport bool     `json:"attention_support"`
	Themes           []string `json:"themes"`
}

type missionRequest struct {
	Level string `json:"level"`
	Theme string `json:"theme"`
}

type missionView struct {
	ChildID      string `json:"child_id"`
	Day          string `json:"day"`
	Caption      string `json:"caption"`
	Text         string `json:"text"`
	RestDay      bool   `json:"rest_day"`
	DownloadName string `json:"download_name"`
}

type saveRequest struct {
	Text string `json:"text" binding:"required"`
}

type entryView struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

type renderRequest struct {
	Text    string `json:"text" binding:"required"`
	ChildID string `json:"child_id"`
	Title   string `json:"title"`
}

type reportView struct {
	ChildID      string `json:"child_id"`
	Text         string `json:"text"`
	Records      int    `json:"records"`
	DownloadName string `json:"download_name"`
}

// GET /healthz
func (h *handler) health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// GET /api/children
func (h *handler) listChildren(c *gin.Context) {
	children := h.Profiles.All()
	out := make([]childView, 0, len(children))
	for _, ch := range children {
		out = append(out, childView{
			ID:               ch.ID,
			Name:             ch.Name,
			Grade:            ch.Grade,
			Category:         string(ch.Category),
			AttentionSupport: ch.AttentionSupport,
			Themes:           ch.Themes,
		})
	}
	RespondOK(c, gin.H{"children": out, "caption": mission.Caption(h.Now())})
}

func (h *handler) child(c *gin.Context) (profile.Child, bool) {
	id := c.Param("id")
	ch, ok := h.Profiles.Get(id)
	if !ok {
		RespondError(c, fmt.Errorf("%w: %q", errUnknownChild, id))
		return profile.Child{}, false
	}
	return ch, true
}

func (h *handler) day(c *gin.Context) (time.Time, bool) {
	d, err := time.ParseInLocation(dayLayout, c.Param("day"), time.Local)
	if err != nil {
		RespondError(c, fmt.Errorf("%w: day must be YYYYMMDD", errBadRequest))
		return time.Time{}, false
	}
	return d, true
}

func (h *handler) generationContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.Timeout > 0 {
		return context.WithTimeout(c.Request.Context(), h.Timeout)
	}
	return context.WithCancel(c.Request.Context())
}

// POST /api/children/:id/missions
func (h *handler) generateMission(c *gin.Context) {
	ch, ok := h.child(c)
	if !ok {
		return
	}
	var req missionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondError(c, fmt.Errorf("%w: %v", errBadRequest, err))
			return
		}
	}
	level := mission.LevelNormal
	if req.Level != "" {
		l, err := mission.ParseLevel(req.Level)
		if err != nil {
			RespondError(c, err)
			return
		}
		level = l
	}

	ctx, cancel := h.generationContext(c)
	defer cancel()

	now := h.Now()
	m, err := h.Missions.Generate(ctx, ch, level, mission.SpecificTheme(req.Theme), now)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, missionView{
		ChildID:      ch.ID,
		Day:          now.Format(dayLayout),
		Caption:      mission.Caption(now),
		Text:         m.Text,
		RestDay:      m.RestDay,
		DownloadName: history.DownloadName(now),
	})
}

// PUT /api/children/:id/missions/:day
func (h *handler) saveMission(c *gin.Context) {
	ch, ok := h.child(c)
	if !ok {
		return
	}
	day, ok := h.day(c)
	if !ok {
		return
	}
	now := h.Now()
	if day.Format(dayLayout) != now.Format(dayLayout) {
		RespondError(c, fmt.Errorf("%w: missions can only be saved for today (%s)", errBadRequest, now.Format(dayLayout)))
		return
	}
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	if _, err := h.History.Save(ch.ID, req.Text, now); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"child_id": ch.ID, "day": now.Format(dayLayout), "saved": true})
}

// GET /api/children/:id/missions
func (h *handler) listMissions(c *gin.Context) {
	ch, ok := h.child(c)
	if !ok {
		return
	}
	entries, err := h.History.List(ch.ID)
	if err != nil {
		RespondError(c, err)
		return
	}
	// Newest first, as the history tab shows them.
	out := make([]entryView, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		out = append(out, entryView{Key: e.Key, Label: e.Label, Text: e.Text})
	}
	RespondOK(c, gin.H{"child_id": ch.ID, "missions": out})
}

// GET /api/children/:id/missions/:day
func (h *handler) getMission(c *gin.Context) {
	ch, ok := h.child(c)
	if !ok {
		return
	}
	day, ok := h.day(c)
	if !ok {
		return
	}
	e, err := h.History.Get(ch.ID, day)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, entryView{Key: e.Key, Label: e.Label, Text: e.Text})
}

// GET /api/children/:id/missions/:day/download
func (h *handler) downloadMission(c *gin.Context) {
	ch, ok := h.child(c)
	if !ok {
		return
	}
	day, ok := h.day(c)
	if !ok {
		return
	}
	e, err := h.History.Get(ch.ID, day)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondFile(c, "text/plain; charset=utf-8", history.DownloadName(day), []byte(render.Plain(e.Text)))
}

// POST /api/children/:id/report
func (h *handler) buildReport(c *gin.Context) {
	ch, ok := h.child(c)
	if !ok {
		return
	}
	ctx, cancel := h.generationContext(c)
	defer cancel()

	now := h.Now()
	r, err := h.Reports.Build(ctx, ch, now)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, reportView{
		ChildID:      ch.ID,
		Text:         r.Text,
		Records:      r.Records,
		DownloadName: report.DownloadName(now),
	})
}

func (h *handler) renderInput(c *gin.Context) (renderRequest, render.Header, bool) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return req, render.Header{}, false
	}
	hdr := render.Header{Title: req.Title, Date: h.Now()}
	if hdr.Title == "" {
		hdr.Title = "오늘의 과제"
	}
	if req.ChildID != "" {
		ch, ok := h.Profiles.Get(req.ChildID)
		if !ok {
			RespondError(c, fmt.Errorf("%w: %q", errUnknownChild, req.ChildID))
			return req, render.Header{}, false
		}
		hdr.ChildName = ch.Name
	}
	return req, hdr, true
}

// POST /api/render/pdf
func (h *handler) renderPDF(c *gin.Context) {
	req, hdr, ok := h.renderInput(c)
	if !ok {
		return
	}
	data, err := h.Renderer.PDF(req.Text, hdr)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondFile(c, "application/pdf", "과제_"+hdr.Date.Format("0102")+".pdf", data)
}

// POST /api/render/png
func (h *handler) renderPNG(c *gin.Context) {
	req, hdr, ok := h.renderInput(c)
	if !ok {
		return
	}
	data, err := h.Renderer.PNG(req.Text, hdr)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondFile(c, "image/png", "과제_"+hdr.Date.Format("0102")+".png", data)
}
