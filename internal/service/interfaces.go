package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"krux_server/internal/domain"
)

type StoryStore interface {
	FetchPage(ctx context.Context, offset, limit int) (domain.Page, error)
	GetByID(ctx context.Context, id int64) (*domain.Story, error)
	IncrementSwipe(ctx context.Context, storyID int64, reaction domain.Reaction) error
	ListForSitemap(ctx context.Context, limit int) ([]domain.SitemapEntry, error)
}

type ReactionPublisher interface {
	PublishReaction(ctx context.Context, storyID int64, reaction domain.Reaction) error
	Close() error
}
