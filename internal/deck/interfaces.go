package deck

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"krux_server/internal/domain"
)

// PageFetcher loads one batch of the feed starting at offset.
type PageFetcher interface {
	FetchPage(ctx context.Context, offset, limit int) (domain.Page, error)
}

// ReactionRecorder submits a committed swipe. Calls are fire-and-forget from
// the deck's point of view: errors are discarded and never block a swipe.
type ReactionRecorder interface {
	RecordReaction(ctx context.Context, storyID int64, reaction domain.Reaction) error
}
