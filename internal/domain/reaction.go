package domain

import "errors"

// ErrInvalidReaction is returned for a tracking request whose id or reaction
// value fails validation.
var ErrInvalidReaction = errors.New("invalid reaction")

// Reaction is a committed swipe decision.
type Reaction string

const (
	ReactionLike Reaction = "like"
	ReactionSkip Reaction = "skip"
)

func (r Reaction) Valid() bool {
	return r == ReactionLike || r == ReactionSkip
}
