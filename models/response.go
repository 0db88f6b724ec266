package models

// Notifications holds the unread counters the site reports with every page.
type Notifications struct {
	Submissions int `json:"submissions"`
	Watches     int `json:"watches"`
	Comments    int `json:"comments"`
	Favorites   int `json:"favorites"`
	Journals    int `json:"journals"`
	Notes       int `json:"notes"`
}

// Total returns the sum of all counters.
func (n Notifications) Total() int {
	return n.Submissions + n.Watches + n.Comments + n.Favorites + n.Journals + n.Notes
}

// Response is a fetched page along with the notification counters that were
// attached to it.
type Response[T any] struct {
	Page          T
	Notifications Notifications
}
