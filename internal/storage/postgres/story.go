package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"krux_server/internal/domain"
	"krux_server/internal/storytext"
)

type StoryStore struct {
	db *sqlx.DB
}

func NewStoryStore(db *sqlx.DB) *StoryStore {
	return &StoryStore{db: db}
}

type storyRow struct {
	ID        int64      `db:"id"`
	Headline  string     `db:"headline"`
	Output    string     `db:"output"`
	NewsDate  time.Time  `db:"news_date"`
	CreatedAt *time.Time `db:"created_at"`
	ImageURL  *string    `db:"image_url"`
	Sources   []byte     `db:"sources"`
}

func (r storyRow) toDomain() domain.Story {
	return domain.Story{
		ID:        r.ID,
		Headline:  r.Headline,
		Output:    r.Output,
		NewsDate:  r.NewsDate,
		CreatedAt: r.CreatedAt,
		ImageURL:  r.ImageURL,
		Sources:   storytext.ParseSources(r.Sources),
	}
}

// FetchPage returns up to limit stories ordered by publication date
// descending. HasMore is true iff the page filled completely; an exactly-full
// final page therefore reads as true until the next, empty fetch.
func (s *StoryStore) FetchPage(ctx context.Context, offset, limit int) (domain.Page, error) {
	query := `
		SELECT id, headline, output, news_date, created_at, image_url, sources
		FROM stories
		ORDER BY news_date DESC, id DESC
		LIMIT $1 OFFSET $2`

	var rows []storyRow
	if err := s.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return domain.Page{}, fmt.Errorf("select stories page: %w", err)
	}

	stories := make([]domain.Story, 0, len(rows))
	for _, r := range rows {
		stories = append(stories, r.toDomain())
	}

	return domain.Page{
		Stories: stories,
		HasMore: len(stories) == limit,
	}, nil
}

func (s *StoryStore) GetByID(ctx context.Context, id int64) (*domain.Story, error) {
	query := `
		SELECT id, headline, output, news_date, created_at, image_url, sources
		FROM stories
		WHERE id = $1`

	var row storyRow
	err := s.db.GetContext(ctx, &row, query, id)
	if err == sql.ErrNoRows {
		return nil, domain.ErrStoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select story %d: %w", id, err)
	}

	story := row.toDomain()
	return &story, nil
}

// IncrementSwipe bumps the aggregate like or skip counter for a story. The
// increment is commutative, so callers need no ordering guarantees.
func (s *StoryStore) IncrementSwipe(ctx context.Context, storyID int64, reaction domain.Reaction) error {
	column := "skips"
	if reaction == domain.ReactionLike {
		column = "likes"
	}

	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE stories SET %s = %s + 1 WHERE id = $1", column, column),
		storyID,
	)
	if err != nil {
		return fmt.Errorf("increment %s for story %d: %w", column, storyID, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrStoryNotFound
	}
	return nil
}

func (s *StoryStore) ListForSitemap(ctx context.Context, limit int) ([]domain.SitemapEntry, error) {
	query := `
		SELECT id, headline, news_date, created_at
		FROM stories
		ORDER BY news_date DESC, id DESC
		LIMIT $1`

	var entries []domain.SitemapEntry
	if err := s.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("select sitemap entries: %w", err)
	}
	return entries, nil
}
