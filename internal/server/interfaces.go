package server

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"krux_server/internal/domain"
)

// Feed is the service surface the HTTP handlers sit on.
type Feed interface {
	GetPage(ctx context.Context, offset int) (domain.Page, error)
	GetStoryBySlug(ctx context.Context, slug string) (*domain.StoryDetail, string, error)
	RecordReaction(ctx context.Context, storyID int64, reaction domain.Reaction) error
	SitemapStories(ctx context.Context) ([]domain.SitemapEntry, error)
}
