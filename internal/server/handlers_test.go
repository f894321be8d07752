package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"krux_server/internal/config"
	"krux_server/internal/domain"
	"krux_server/internal/server/mocks"
	"krux_server/testdata/utils"
)

type HandlersTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	feed   *mocks.MockFeed
	router *gin.Engine
}

func (s *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.feed = mocks.NewMockFeed(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	cfg := config.ServerConfig{BaseURL: "https://krux.news"}
	s.router = NewRouter(s.feed, cfg, logger)
}

func (s *HandlersTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlersTestSuite) TestGetArticles() {
	page := domain.Page{
		Stories: []domain.Story{{ID: 2, Headline: "newer", Sources: []domain.Source{}}},
		HasMore: true,
	}
	s.feed.EXPECT().GetPage(gomock.Any(), 40).Return(page, nil)

	w := s.do(http.MethodGet, "/api/articles?offset=40", "")

	s.Equal(http.StatusOK, w.Code)
	var resp articlesResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp.Articles, 1)
	s.True(resp.HasMore)
}

func (s *HandlersTestSuite) TestGetArticles_DefaultAndBadOffset() {
	s.feed.EXPECT().GetPage(gomock.Any(), 0).Return(domain.Page{}, nil).Times(2)

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/articles", "").Code)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/articles?offset=junk", "").Code)
}

func (s *HandlersTestSuite) TestGetArticles_EmptyPageMarshalsAsArray() {
	s.feed.EXPECT().GetPage(gomock.Any(), 0).Return(domain.Page{}, nil)

	w := s.do(http.MethodGet, "/api/articles", "")

	s.Contains(w.Body.String(), `"articles":[]`)
}

func (s *HandlersTestSuite) TestGetArticles_StoreError() {
	s.feed.EXPECT().GetPage(gomock.Any(), 0).Return(domain.Page{}, errors.New("db down"))

	w := s.do(http.MethodGet, "/api/articles", "")

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Contains(w.Body.String(), "error")
}

func (s *HandlersTestSuite) TestPostTrack() {
	s.feed.EXPECT().RecordReaction(gomock.Any(), int64(42), domain.ReactionLike).Return(nil)

	w := s.do(http.MethodPost, "/api/track", `{"articleId":42,"reaction":"like"}`)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"ok":true}`, w.Body.String())
}

func (s *HandlersTestSuite) TestPostTrack_InvalidReaction() {
	s.feed.EXPECT().RecordReaction(gomock.Any(), int64(42), domain.Reaction("love")).
		Return(domain.ErrInvalidReaction)

	w := s.do(http.MethodPost, "/api/track", `{"articleId":42,"reaction":"love"}`)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestPostTrack_MissingID() {
	s.feed.EXPECT().RecordReaction(gomock.Any(), int64(0), domain.ReactionLike).
		Return(domain.ErrInvalidReaction)

	w := s.do(http.MethodPost, "/api/track", `{"reaction":"like"}`)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestPostTrack_MalformedBody() {
	w := s.do(http.MethodPost, "/api/track", `{not json`)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestGetStory() {
	detail := &domain.StoryDetail{
		ID:            42,
		Headline:      "GPT-5 Ships!!",
		NewsDate:      time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		WhatHappened:  "A. B.",
		WhyItMatters:  "C.",
		Sources:       []domain.Source{{Name: "A"}},
		CanonicalPath: "/story/42-gpt-5-ships",
	}
	s.feed.EXPECT().GetStoryBySlug(gomock.Any(), "42-gpt-5-ships").Return(detail, "", nil)

	w := s.do(http.MethodGet, "/api/stories/42-gpt-5-ships", "")

	s.Equal(http.StatusOK, w.Code)
	var got domain.StoryDetail
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Equal(int64(42), got.ID)
	s.Equal("C.", got.WhyItMatters)
}

func (s *HandlersTestSuite) TestGetStory_StaleSlugRedirects() {
	s.feed.EXPECT().GetStoryBySlug(gomock.Any(), "42-old-headline").
		Return(nil, "/story/42-gpt-5-ships", nil)

	w := s.do(http.MethodGet, "/api/stories/42-old-headline", "")

	s.Equal(http.StatusMovedPermanently, w.Code)
	s.Equal("/api/stories/42-gpt-5-ships", w.Header().Get("Location"))
}

func (s *HandlersTestSuite) TestGetStory_NotFound() {
	s.feed.EXPECT().GetStoryBySlug(gomock.Any(), "abc").
		Return(nil, "", domain.ErrStoryNotFound)

	w := s.do(http.MethodGet, "/api/stories/abc", "")

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlersTestSuite) TestSitemap() {
	entries := []domain.SitemapEntry{
		{ID: 42, Headline: "GPT-5 Ships!!", NewsDate: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), CreatedAt: utils.Ptr(time.Date(2026, 8, 21, 10, 0, 0, 0, time.UTC))},
		{ID: 41, Headline: "Old News", NewsDate: time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC)},
	}
	s.feed.EXPECT().SitemapStories(gomock.Any()).Return(entries, nil)

	w := s.do(http.MethodGet, "/sitemap.xml", "")

	s.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	s.Contains(body, "<loc>https://krux.news/story/42-gpt-5-ships</loc>")
	s.Contains(body, "<lastmod>2026-08-21</lastmod>")
	s.Contains(body, "<loc>https://krux.news/story/41-old-news</loc>")
	s.Contains(body, "<lastmod>2026-08-19</lastmod>")
}

func (s *HandlersTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/healthz", "")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "healthy")
}
