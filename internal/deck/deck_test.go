package deck

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"krux_server/internal/deck/mocks"
	"krux_server/internal/domain"
)

type DeckTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	fetcher  *mocks.MockPageFetcher
	recorder *mocks.MockReactionRecorder
	logger   *slog.Logger
}

func (s *DeckTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.fetcher = mocks.NewMockPageFetcher(s.ctrl)
	s.recorder = mocks.NewMockReactionRecorder(s.ctrl)
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func (s *DeckTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDeckTestSuite(t *testing.T) {
	suite.Run(t, new(DeckTestSuite))
}

func stories(ids ...int64) []domain.Story {
	out := make([]domain.Story, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Story{ID: id, Headline: "headline"})
	}
	return out
}

// fastOpts keeps exit animations short enough for Eventually polling. The
// large low-water mark offset keeps pagination out of tests that don't
// exercise it.
func (s *DeckTestSuite) newDeck(initial []domain.Story, opts Options) *Deck {
	if opts.ExitDelay == 0 {
		opts.ExitDelay = time.Millisecond
	}
	return New(s.fetcher, s.recorder, initial, opts, s.logger)
}

func (s *DeckTestSuite) waitPosition(d *Deck, want int) {
	s.Eventually(func() bool { return d.Position() == want },
		time.Second, 2*time.Millisecond)
}

func (s *DeckTestSuite) TestIntroIsAlwaysFirst() {
	d := s.newDeck(stories(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), Options{})
	defer d.Close()

	items := d.Items()
	s.Equal(KindIntro, items[0].Kind)
	s.Nil(items[0].Story)
	s.Equal(0, d.Position())
	s.Equal(11, d.Len())

	cur, ok := d.Current()
	s.True(ok)
	s.Equal(KindIntro, cur.Kind)
}

func (s *DeckTestSuite) TestAdvanceOnIntroDoesNotRecord() {
	d := s.newDeck(stories(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), Options{})
	defer d.Close()

	// No RecordReaction expectation set: any call would fail the suite.
	s.True(d.Advance(context.Background(), domain.ReactionLike))
	s.waitPosition(d, 1)
}

func (s *DeckTestSuite) TestAdvanceRecordsExactlyOnce() {
	d := s.newDeck(stories(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), Options{})
	defer d.Close()

	recorded := make(chan struct{})
	s.recorder.EXPECT().
		RecordReaction(gomock.Any(), int64(1), domain.ReactionLike).
		DoAndReturn(func(context.Context, int64, domain.Reaction) error {
			close(recorded)
			return nil
		})

	s.True(d.Advance(context.Background(), domain.ReactionLike))
	s.waitPosition(d, 1)

	s.True(d.Advance(context.Background(), domain.ReactionLike))
	s.waitPosition(d, 2)

	select {
	case <-recorded:
	case <-time.After(time.Second):
		s.Fail("reaction was never recorded")
	}
}

func (s *DeckTestSuite) TestAdvanceGuardWhileExiting() {
	d := s.newDeck(stories(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), Options{ExitDelay: 50 * time.Millisecond})
	defer d.Close()

	s.True(d.Advance(context.Background(), domain.ReactionLike))
	// Second call lands while the exit is still in flight.
	s.False(d.Advance(context.Background(), domain.ReactionLike))

	s.waitPosition(d, 1)
	s.Equal(1, d.Position())
}

func (s *DeckTestSuite) TestAdvanceRecorderFailureStillAdvances() {
	d := s.newDeck(stories(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), Options{})
	defer d.Close()

	s.recorder.EXPECT().
		RecordReaction(gomock.Any(), int64(1), domain.ReactionSkip).
		Return(errors.New("tracking down")).
		MaxTimes(1)

	s.True(d.Advance(context.Background(), domain.ReactionSkip))
	s.waitPosition(d, 1)
}

func (s *DeckTestSuite) TestUndoFloor() {
	d := s.newDeck(stories(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), Options{})
	defer d.Close()

	s.recorder.EXPECT().RecordReaction(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// At the intro and at the first story, undo is a no-op.
	s.False(d.Undo())
	s.True(d.Advance(context.Background(), domain.ReactionLike))
	s.waitPosition(d, 1)
	s.False(d.Undo())
	s.False(d.CanUndo())

	s.True(d.Advance(context.Background(), domain.ReactionLike))
	s.waitPosition(d, 2)
	s.True(d.CanUndo())

	before := d.Len()
	s.True(d.Undo())
	s.Equal(1, d.Position())
	s.Equal(before, d.Len())
}

func (s *DeckTestSuite) TestDeepLinkEntry() {
	d := s.newDeck(stories(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), Options{StartStoryID: 3})
	defer d.Close()

	// Story 3 sits at deck index 3 (offset by the intro).
	s.Equal(3, d.Position())
	cur, ok := d.Current()
	s.True(ok)
	s.Equal(int64(3), cur.Story.ID)

	// The directional hint shows once.
	s.True(d.ConsumeHint())
	s.False(d.ConsumeHint())
}

func (s *DeckTestSuite) TestDeepLinkMissFallsBackToIntro() {
	d := s.newDeck(stories(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), Options{StartStoryID: 999})
	defer d.Close()

	s.Equal(0, d.Position())
	s.False(d.ConsumeHint())
}

func (s *DeckTestSuite) TestPaginationDeduplicates() {
	fetched := make(chan struct{})
	s.fetcher.EXPECT().
		FetchPage(gomock.Any(), 3, 20).
		DoAndReturn(func(context.Context, int, int) (domain.Page, error) {
			defer close(fetched)
			return domain.Page{Stories: stories(3, 4), HasMore: false}, nil
		})

	d := s.newDeck(stories(1, 2, 3), Options{})
	defer d.Close()
	d.Prime(context.Background())

	select {
	case <-fetched:
	case <-time.After(time.Second):
		s.Fail("no fetch issued")
	}

	s.Eventually(func() bool { return d.Len() == 5 }, time.Second, 2*time.Millisecond)

	var ids []int64
	for _, item := range d.Items() {
		if item.Kind == KindArticle {
			ids = append(ids, item.Story.ID)
		}
	}
	s.Equal([]int64{1, 2, 3, 4}, ids)
	s.False(d.HasMore())
}

func (s *DeckTestSuite) TestPaginationSingleFlight() {
	release := make(chan struct{})
	s.fetcher.EXPECT().
		FetchPage(gomock.Any(), 3, 20).
		DoAndReturn(func(context.Context, int, int) (domain.Page, error) {
			<-release
			return domain.Page{HasMore: false}, nil
		})

	d := s.newDeck(stories(1, 2, 3), Options{})
	defer d.Close()

	d.Prime(context.Background())
	s.Eventually(d.FetchPending, time.Second, 2*time.Millisecond)

	// Re-triggering while a fetch is outstanding is ignored, not queued: a
	// second FetchPage call would fail the unmet expectation count.
	d.Prime(context.Background())

	close(release)
	s.Eventually(func() bool { return !d.FetchPending() }, time.Second, 2*time.Millisecond)
	s.False(d.HasMore())
}

func (s *DeckTestSuite) TestPaginationFailureLeavesHasMore() {
	s.fetcher.EXPECT().
		FetchPage(gomock.Any(), 3, 20).
		Return(domain.Page{}, errors.New("network down"))

	d := s.newDeck(stories(1, 2, 3), Options{})
	defer d.Close()

	d.Prime(context.Background())
	s.Eventually(func() bool { return !d.FetchPending() }, time.Second, 2*time.Millisecond)

	// Optimistically retried on the next trigger.
	s.True(d.HasMore())
	s.Equal(4, d.Len())
}

func (s *DeckTestSuite) TestNoFetchOnceExhausted() {
	s.fetcher.EXPECT().
		FetchPage(gomock.Any(), 3, 20).
		Return(domain.Page{HasMore: false}, nil)

	d := s.newDeck(stories(1, 2, 3), Options{})
	defer d.Close()

	d.Prime(context.Background())
	s.Eventually(func() bool { return !d.FetchPending() && !d.HasMore() },
		time.Second, 2*time.Millisecond)

	// Further triggers fire no fetches.
	d.Prime(context.Background())
	s.False(d.FetchPending())
}

func (s *DeckTestSuite) TestKeyEquivalents() {
	d := s.newDeck(stories(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), Options{})
	defer d.Close()

	s.recorder.EXPECT().RecordReaction(gomock.Any(), int64(1), domain.ReactionLike).Return(nil).MaxTimes(1)
	s.recorder.EXPECT().RecordReaction(gomock.Any(), int64(2), domain.ReactionSkip).Return(nil).MaxTimes(1)

	s.True(d.Key(context.Background(), KeyRight)) // intro
	s.waitPosition(d, 1)
	s.True(d.Key(context.Background(), KeyRight))
	s.waitPosition(d, 2)
	s.True(d.Key(context.Background(), KeyLeft))
	s.waitPosition(d, 3)
	s.True(d.Key(context.Background(), KeyUp))
	s.Equal(2, d.Position())
}

func (s *DeckTestSuite) TestCloseDropsLateResults() {
	release := make(chan struct{})
	s.fetcher.EXPECT().
		FetchPage(gomock.Any(), 3, 20).
		DoAndReturn(func(context.Context, int, int) (domain.Page, error) {
			<-release
			return domain.Page{Stories: stories(4, 5), HasMore: true}, nil
		})

	d := s.newDeck(stories(1, 2, 3), Options{})
	d.Prime(context.Background())
	s.Eventually(d.FetchPending, time.Second, 2*time.Millisecond)

	d.Close()
	close(release)

	s.Eventually(func() bool { return !d.FetchPending() }, time.Second, 2*time.Millisecond)
	s.Equal(4, d.Len())
	s.False(d.Advance(context.Background(), domain.ReactionLike))
}
