// Package deck implements the swipe-deck state machine: an ordered sequence
// of display items (one synthetic intro card followed by stories), the
// current position, like/skip/undo transitions and background pagination.
// It is pure logic with no rendering attached.
package deck

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"krux_server/internal/domain"
)

type ItemKind int

const (
	KindIntro ItemKind = iota
	KindArticle
)

// Item is one deck entry. Story is nil for the intro item.
type Item struct {
	Kind  ItemKind
	Story *domain.Story
}

type Options struct {
	PageSize     int
	LowWaterMark int
	ExitDelay    time.Duration

	// StartStoryID positions the deck on a specific story when entering via
	// a shared deep link. Zero means start at the intro.
	StartStoryID int64
}

const (
	defaultPageSize     = 20
	defaultLowWaterMark = 5
	defaultExitDelay    = 190 * time.Millisecond
)

func (o *Options) setDefaults() {
	if o.PageSize == 0 {
		o.PageSize = defaultPageSize
	}
	if o.LowWaterMark == 0 {
		o.LowWaterMark = defaultLowWaterMark
	}
	if o.ExitDelay == 0 {
		o.ExitDelay = defaultExitDelay
	}
}

// Deck owns the item list and position. All mutation goes through Advance,
// Undo and the pagination completion handler; nothing else touches state.
type Deck struct {
	mu sync.Mutex

	items        []Item
	position     int
	exiting      bool
	pendingFetch bool
	hasMore      bool
	showHint     bool
	closed       bool
	gen          uint64

	fetcher  PageFetcher
	recorder ReactionRecorder
	logger   *slog.Logger
	opts     Options
}

// New builds a deck from the initial server-rendered batch. The intro item is
// always first; when StartStoryID resolves inside the batch the position
// starts on that story and a one-time directional hint is armed.
func New(fetcher PageFetcher, recorder ReactionRecorder, initial []domain.Story, opts Options, logger *slog.Logger) *Deck {
	opts.setDefaults()

	items := make([]Item, 0, len(initial)+1)
	items = append(items, Item{Kind: KindIntro})
	for i := range initial {
		items = append(items, Item{Kind: KindArticle, Story: &initial[i]})
	}

	d := &Deck{
		items:    items,
		hasMore:  true,
		fetcher:  fetcher,
		recorder: recorder,
		logger:   logger.With("component", "deck"),
		opts:     opts,
	}

	if opts.StartStoryID != 0 {
		for i, item := range items {
			if item.Kind == KindArticle && item.Story.ID == opts.StartStoryID {
				d.position = i
				d.showHint = true
				break
			}
		}
	}

	return d
}

// Prime evaluates pagination once against the initial batch, so a deck built
// from a short or deep-linked batch starts loading immediately.
func (d *Deck) Prime(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.maybeFetchMoreLocked(ctx)
}

// Advance commits a like/skip for the current item and, after the exit delay,
// moves to the next one. A second call while an exit is in flight is a no-op.
// Reactions on the intro item are not recorded. Returns whether the advance
// was accepted.
func (d *Deck) Advance(ctx context.Context, reaction domain.Reaction) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed || d.exiting || d.position >= len(d.items) {
		return false
	}

	item := d.items[d.position]
	if item.Kind == KindArticle && d.recorder != nil {
		storyID := item.Story.ID
		go func() {
			// Fire-and-forget: a failed tracking call never stalls or rolls
			// back the swipe.
			if err := d.recorder.RecordReaction(ctx, storyID, reaction); err != nil {
				d.logger.Debug("reaction not recorded", "story_id", storyID, "error", err)
			}
		}()
	}

	d.exiting = true
	gen := d.gen
	time.AfterFunc(d.opts.ExitDelay, func() {
		d.settleAdvance(ctx, gen)
	})
	return true
}

func (d *Deck) settleAdvance(ctx context.Context, gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed || gen != d.gen {
		return
	}
	d.position++
	d.exiting = false
	d.showHint = false
	d.maybeFetchMoreLocked(ctx)
}

// Undo steps back one card. It cannot return to the intro, cannot run while
// an exit animation is in flight, and never retracts a recorded reaction.
func (d *Deck) Undo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed || d.exiting || d.position <= 1 {
		return false
	}
	d.position--
	return true
}

// maybeFetchMoreLocked issues a background page fetch once the unseen
// remainder drops to the low-water mark. At most one fetch is in flight; a
// trigger while one is pending is ignored, not queued.
func (d *Deck) maybeFetchMoreLocked(ctx context.Context) {
	remaining := len(d.items) - d.position - 1
	if remaining > d.opts.LowWaterMark || !d.hasMore || d.pendingFetch {
		return
	}

	d.pendingFetch = true
	offset := len(d.items) - 1 // articles loaded so far
	gen := d.gen

	go d.fetchPage(ctx, offset, gen)
}

func (d *Deck) fetchPage(ctx context.Context, offset int, gen uint64) {
	page, err := d.fetcher.FetchPage(ctx, offset, d.opts.PageSize)

	d.mu.Lock()
	defer d.mu.Unlock()

	// The guard clears regardless of outcome; a late result for a torn-down
	// deck is dropped.
	d.pendingFetch = false
	if d.closed || gen != d.gen {
		return
	}

	if err != nil {
		// Silently absorbed: hasMore is unchanged so the next low-water
		// trigger retries.
		d.logger.Debug("page fetch failed", "offset", offset, "error", err)
		return
	}

	seen := make(map[int64]struct{}, len(d.items))
	for _, item := range d.items {
		if item.Kind == KindArticle {
			seen[item.Story.ID] = struct{}{}
		}
	}

	appended := 0
	for i := range page.Stories {
		story := page.Stories[i]
		if _, dup := seen[story.ID]; dup {
			continue
		}
		seen[story.ID] = struct{}{}
		d.items = append(d.items, Item{Kind: KindArticle, Story: &story})
		appended++
	}

	d.hasMore = page.HasMore
	d.logger.Debug("appended page", "offset", offset, "new", appended, "has_more", d.hasMore)
}

// Key dispatches a keyboard equivalent: right arrow commits a like, left
// arrow a skip, up arrow an undo.
func (d *Deck) Key(ctx context.Context, key Key) bool {
	switch key {
	case KeyRight:
		return d.Advance(ctx, domain.ReactionLike)
	case KeyLeft:
		return d.Advance(ctx, domain.ReactionSkip)
	case KeyUp:
		return d.Undo()
	}
	return false
}

// Close tears the deck down. Late fetch completions and pending exit timers
// become no-ops.
func (d *Deck) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	d.gen++
}

func (d *Deck) Position() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.position
}

func (d *Deck) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.items)
}

// Current returns the item under the cursor, false when the deck ran out.
func (d *Deck) Current() (Item, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.position >= len(d.items) {
		return Item{}, false
	}
	return d.items[d.position], true
}

// Items returns a snapshot copy of the current item list.
func (d *Deck) Items() []Item {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Item, len(d.items))
	copy(out, d.items)
	return out
}

func (d *Deck) CanUndo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.position > 1 && !d.exiting
}

func (d *Deck) HasMore() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hasMore
}

func (d *Deck) FetchPending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pendingFetch
}

// ConsumeHint reports whether the one-time deep-link hint should show, and
// disarms it.
func (d *Deck) ConsumeHint() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	hint := d.showHint
	d.showHint = false
	return hint
}
