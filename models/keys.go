package models

import (
	"fmt"
	"strconv"
)

// JournalKey identifies a single journal entry on the remote site.
type JournalKey struct {
	ID uint64 `json:"id"`
}

// ViewKey identifies a single submission page on the remote site.
type ViewKey struct {
	ID uint64 `json:"id"`
}

// String returns the path segment used by the remote API for the view.
func (k ViewKey) String() string {
	return strconv.FormatUint(k.ID, 10)
}

// CommentTarget is the kind of page a comment lives on.
type CommentTarget string

const (
	// CommentTargetView marks a comment posted under a submission.
	CommentTargetView CommentTarget = "view"
	// CommentTargetJournal marks a comment posted under a journal.
	CommentTargetJournal CommentTarget = "journal"
)

// CommentReplyKey addresses an existing comment that a reply is posted under.
// CommentID of zero means a top-level comment on the page itself.
type CommentReplyKey struct {
	Target    CommentTarget `json:"target"`
	ID        uint64        `json:"id"`
	CommentID uint64        `json:"comment_id"`
}

// FavKey is the pair needed to toggle a favorite: the submission and the
// per-session anti-forgery token the site embeds in every view page.
type FavKey struct {
	ViewID uint64 `json:"view_id"`
	Token  string `json:"token"`
}

// SubmissionOrder selects the direction the submissions inbox is paged in.
type SubmissionOrder string

const (
	// OrderOldest pages the inbox from the oldest notification forward.
	OrderOldest SubmissionOrder = "old"
	// OrderNewest pages the inbox from the newest notification backward.
	OrderNewest SubmissionOrder = "new"
)

// DefaultSubmissionsPerPage is the page size the site uses when none is given.
const DefaultSubmissionsPerPage = 72

// SubmissionsKey addresses one page of the submissions inbox.
// A zero From starts at the beginning of the inbox for the given order.
type SubmissionsKey struct {
	Order   SubmissionOrder `json:"order"`
	From    uint64          `json:"from,omitempty"`
	PerPage int             `json:"per_page,omitempty"`
}

// OldestSubmissions returns the key for the first page of the inbox, oldest first.
func OldestSubmissions() SubmissionsKey {
	return SubmissionsKey{Order: OrderOldest, PerPage: DefaultSubmissionsPerPage}
}

// NewestSubmissions returns the key for the first page of the inbox, newest first.
func NewestSubmissions() SubmissionsKey {
	return SubmissionsKey{Order: OrderNewest, PerPage: DefaultSubmissionsPerPage}
}

// Path renders the key as the inbox path segment, e.g. "old@72/~1234".
func (k SubmissionsKey) Path() string {
	order := k.Order
	if order == "" {
		order = OrderNewest
	}
	perPage := k.PerPage
	if perPage <= 0 {
		perPage = DefaultSubmissionsPerPage
	}

	path := fmt.Sprintf("%s@%d", order, perPage)
	if k.From != 0 {
		path += "/~" + strconv.FormatUint(k.From, 10)
	}
	return path
}
