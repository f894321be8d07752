package service

import (
	"context"
	"fmt"
	"log/slog"

	"krux_server/internal/config"
	"krux_server/internal/domain"
	"krux_server/internal/feedcache"
	"krux_server/internal/metrics"
	"krux_server/internal/storytext"
)

// FeedService is the read/write surface behind the HTTP handlers: paginated
// feed loads, slug resolution for story pages, and best-effort reaction
// tracking.
type FeedService struct {
	store     StoryStore
	publisher ReactionPublisher
	cache     *feedcache.Cache
	logger    *slog.Logger
	cfg       config.FeedConfig
}

func NewFeedService(
	store StoryStore,
	publisher ReactionPublisher,
	cache *feedcache.Cache,
	logger *slog.Logger,
	cfg config.FeedConfig,
) *FeedService {
	return &FeedService{
		store:     store,
		publisher: publisher,
		cache:     cache,
		logger:    logger.With("component", "feed"),
		cfg:       cfg,
	}
}

// GetPage returns one fixed-size batch of the feed. The first page is served
// from the warm cache when fresh.
func (s *FeedService) GetPage(ctx context.Context, offset int) (domain.Page, error) {
	if offset == 0 && s.cache != nil {
		if page, ok := s.cache.Get(); ok {
			metrics.FeedPagesFetched.WithLabelValues("cached").Inc()
			return page, nil
		}
	}

	page, err := s.store.FetchPage(ctx, offset, s.cfg.PageSize)
	if err != nil {
		metrics.FeedPagesFetched.WithLabelValues("error").Inc()
		return domain.Page{}, fmt.Errorf("fetch page at %d: %w", offset, err)
	}

	metrics.FeedPagesFetched.WithLabelValues("ok").Inc()
	metrics.StoriesServed.Add(float64(len(page.Stories)))

	if offset == 0 && s.cache != nil {
		s.cache.Set(page)
	}
	return page, nil
}

// Refresh re-warms the first-page cache. Wired to the background refresher.
func (s *FeedService) Refresh(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	page, err := s.store.FetchPage(ctx, 0, s.cfg.PageSize)
	if err != nil {
		return fmt.Errorf("refresh first page: %w", err)
	}
	s.cache.Set(page)
	s.logger.Debug("first page refreshed", "stories", len(page.Stories))
	return nil
}

// GetStoryBySlug resolves a share slug. The numeric prefix is authoritative;
// when the trailing text is stale the returned redirect path points at the
// canonical slug and detail is nil.
func (s *FeedService) GetStoryBySlug(ctx context.Context, slug string) (*domain.StoryDetail, string, error) {
	id, ok := storytext.ExtractStoryID(slug)
	if !ok {
		return nil, "", domain.ErrStoryNotFound
	}

	story, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	canonical := storytext.BuildStorySlug(story.ID, story.Headline)
	if slug != canonical {
		return nil, storytext.BuildStoryPath(story.ID, story.Headline), nil
	}

	sections := storytext.SplitStorySections(story.Output)
	return &domain.StoryDetail{
		ID:            story.ID,
		Headline:      story.Headline,
		NewsDate:      story.NewsDate,
		CreatedAt:     story.CreatedAt,
		ImageURL:      story.ImageURL,
		Summary:       sections.Summary,
		WhatHappened:  sections.WhatHappened,
		WhyItMatters:  sections.WhyItMatters,
		Sources:       story.Sources,
		CanonicalPath: storytext.BuildStoryPath(story.ID, story.Headline),
	}, "", nil
}

// RecordReaction validates and records a swipe. Counter and event-stream
// failures are deliberately swallowed: losing a like is an accepted degraded
// experience, and the caller must never stall on it.
func (s *FeedService) RecordReaction(ctx context.Context, storyID int64, reaction domain.Reaction) error {
	if storyID <= 0 || !reaction.Valid() {
		return domain.ErrInvalidReaction
	}

	if err := s.store.IncrementSwipe(ctx, storyID, reaction); err != nil {
		s.logger.Warn("swipe not counted", "story_id", storyID, "error", err)
	} else {
		metrics.ReactionsRecorded.WithLabelValues(string(reaction)).Inc()
	}

	if s.publisher != nil {
		if err := s.publisher.PublishReaction(ctx, storyID, reaction); err != nil {
			metrics.ReactionPublishFailures.Inc()
			s.logger.Warn("reaction event not published", "story_id", storyID, "error", err)
		}
	}

	return nil
}

// SitemapStories lists the newest stories for sitemap generation.
func (s *FeedService) SitemapStories(ctx context.Context) ([]domain.SitemapEntry, error) {
	entries, err := s.store.ListForSitemap(ctx, s.cfg.SitemapLimit)
	if err != nil {
		return nil, fmt.Errorf("list sitemap stories: %w", err)
	}
	return entries, nil
}
