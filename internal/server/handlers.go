package server

import (
	"encoding/xml"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"krux_server/internal/domain"
	"krux_server/internal/storytext"
)

type handler struct {
	feed    Feed
	baseURL string
	logger  *slog.Logger
}

func newHandler(feed Feed, baseURL string, logger *slog.Logger) *handler {
	return &handler{
		feed:    feed,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger.With("component", "http"),
	}
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "krux-server"})
}

type articlesResponse struct {
	Articles []domain.Story `json:"articles"`
	HasMore  bool           `json:"hasMore"`
}

func (h *handler) getArticles(c *gin.Context) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	page, err := h.feed.GetPage(c.Request.Context(), offset)
	if err != nil {
		h.logger.Error("feed page failed", "offset", offset, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	articles := page.Stories
	if articles == nil {
		articles = []domain.Story{}
	}
	c.JSON(http.StatusOK, articlesResponse{Articles: articles, HasMore: page.HasMore})
}

type trackRequest struct {
	ArticleID int64  `json:"articleId"`
	Reaction  string `json:"reaction"`
}

func (h *handler) postTrack(c *gin.Context) {
	var req trackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid"})
		return
	}

	err := h.feed.RecordReaction(c.Request.Context(), req.ArticleID, domain.Reaction(req.Reaction))
	if errors.Is(err, domain.ErrInvalidReaction) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid"})
		return
	}

	// Counter failures are not surfaced: the caller fires and forgets.
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *handler) getStory(c *gin.Context) {
	slug := c.Param("slug")

	detail, redirect, err := h.feed.GetStoryBySlug(c.Request.Context(), slug)
	if errors.Is(err, domain.ErrStoryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "story not found"})
		return
	}
	if err != nil {
		h.logger.Error("story lookup failed", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	if redirect != "" {
		canonical := strings.TrimPrefix(redirect, "/story/")
		c.Redirect(http.StatusMovedPermanently, "/api/stories/"+canonical)
		return
	}

	c.JSON(http.StatusOK, detail)
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func (h *handler) sitemap(c *gin.Context) {
	entries, err := h.feed.SitemapStories(c.Request.Context())
	if err != nil {
		h.logger.Error("sitemap listing failed", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{{Loc: h.baseURL + "/"}},
	}
	for _, e := range entries {
		lastMod := e.NewsDate
		if e.CreatedAt != nil {
			lastMod = *e.CreatedAt
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     h.baseURL + storytext.BuildStoryPath(e.ID, e.Headline),
			LastMod: lastMod.Format(time.DateOnly),
		})
	}

	c.XML(http.StatusOK, set)
}
