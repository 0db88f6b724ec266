package models

import "time"

// User is the public profile summary of a site member.
type User struct {
	Slug   string `json:"slug"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Comment is a single comment on a view or journal page.
type Comment struct {
	ID       uint64    `json:"id"`
	ParentID uint64    `json:"parent_id,omitempty"`
	Author   User      `json:"author"`
	Text     string    `json:"text"`
	Posted   time.Time `json:"posted"`
}

// Journal is a journal entry together with its comments.
type Journal struct {
	Key      JournalKey `json:"key"`
	Author   User       `json:"author"`
	Title    string     `json:"title"`
	Content  string     `json:"content"`
	Posted   time.Time  `json:"posted"`
	Comments []Comment  `json:"comments"`
}

// View is a submission page. FavKey is only populated for authenticated
// sessions, since the token is tied to the logged-in user.
type View struct {
	Key         ViewKey   `json:"key"`
	Artist      User      `json:"artist"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Download    string    `json:"download"`
	Posted      time.Time `json:"posted"`
	Faved       bool      `json:"faved"`
	FavKey      *FavKey   `json:"fav_key,omitempty"`
	Comments    []Comment `json:"comments"`
}

// PreviewSize is one of the thumbnail sizes the site serves.
type PreviewSize int

const (
	PreviewS  PreviewSize = 200
	PreviewM  PreviewSize = 300
	PreviewL  PreviewSize = 400
	PreviewXL PreviewSize = 600
)

// Submission is an entry of the submissions inbox.
type Submission struct {
	Key      ViewKey        `json:"key"`
	Title    string         `json:"title"`
	Artist   User           `json:"artist"`
	Previews map[int]string `json:"previews,omitempty"`
	Rating   string         `json:"rating,omitempty"`
}

// Preview returns the thumbnail URL for size, falling back to the largest
// available one smaller than size.
func (s Submission) Preview(size PreviewSize) string {
	if uri, ok := s.Previews[int(size)]; ok {
		return uri
	}

	best, bestURI := 0, ""
	for px, uri := range s.Previews {
		if px <= int(size) && px > best {
			best, bestURI = px, uri
		}
	}
	return bestURI
}

// Submissions is one page of the inbox. Prev and Next are nil at the edges.
type Submissions struct {
	Items []Submission    `json:"items"`
	Prev  *SubmissionsKey `json:"prev,omitempty"`
	Next  *SubmissionsKey `json:"next,omitempty"`
}

// Others aggregates every non-submission notification of the inbox.
type Others struct {
	Watches   []User    `json:"watches"`
	Comments  []Comment `json:"comments"`
	Journals  []Journal `json:"journals"`
	Favorites []ViewKey `json:"favorites"`
	Shouts    []Comment `json:"shouts"`
}
