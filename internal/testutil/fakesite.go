// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package testutil provides an in-process fake of the remote site for tests
// that exercise the HTTP adapter end to end.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/labrat-client/models"
)

// The cookie the fake site accepts as a logged in session.
const (
	SessionCookieName  = "a"
	SessionCookieValue = "session-token"
	SessionCookie      = SessionCookieName + "=" + SessionCookieValue
)

// Reply is a comment reply received by the fake site.
type Reply struct {
	Target    string
	ID        uint64
	CommentID uint64
	Message   string
}

// FakeSite serves the remote API from memory.
type FakeSite struct {
	Server *httptest.Server

	mu            sync.Mutex
	journals      map[uint64]models.Journal
	views         map[uint64]models.View
	faved         map[uint64]bool
	inbox         map[uint64]models.Submission
	others        models.Others
	notifications models.Notifications
	replies       []Reply
	requests      int
}

// NewFakeSite starts a fake site that is closed when t ends.
func NewFakeSite(t testing.TB) *FakeSite {
	t.Helper()

	s := &FakeSite{
		journals: make(map[uint64]models.Journal),
		views:    make(map[uint64]models.View),
		faved:    make(map[uint64]bool),
		inbox:    make(map[uint64]models.Submission),
	}
	s.Server = httptest.NewServer(s.Router())
	t.Cleanup(s.Server.Close)

	return s
}

// URL is the base URL of the fake site.
func (s *FakeSite) URL() string {
	return s.Server.URL
}

// Router builds the route tree of the fake site.
func (s *FakeSite) Router() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withNotifications)

	router.Get("/journal/{id}/", s.journal)
	router.Get("/view/{id}/", s.view)

	// routes that require a session
	router.Group(func(r chi.Router) {
		r.Use(session)

		r.Post("/{target}/{id}/reply/", s.reply)
		r.Post("/fav/{id}/", s.fav(true))
		r.Post("/unfav/{id}/", s.fav(false))
		r.Get("/msg/others/", s.getOthers)
		r.Post("/msg/submissions/clear/", s.clearSubmissions)
		r.Get("/msg/submissions/{page}/", s.submissions)
		r.Get("/msg/submissions/{page}/{from}/", s.submissions)
	})

	return router
}

// PutJournal stores a journal served at /journal/{id}/.
func (s *FakeSite) PutJournal(j models.Journal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.journals[j.Key.ID] = j
}

// PutView stores a view served at /view/{id}/.
func (s *FakeSite) PutView(v models.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[v.Key.ID] = v
}

// PutSubmissions adds entries to the submissions inbox.
func (s *FakeSite) PutSubmissions(items ...models.Submission) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range items {
		s.inbox[it.Key.ID] = it
	}
}

// SetOthers sets the payload of /msg/others/.
func (s *FakeSite) SetOthers(o models.Others) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.others = o
}

// SetNotifications sets the counters sent with every response.
func (s *FakeSite) SetNotifications(n models.Notifications) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = n
}

// Replies returns the replies posted so far.
func (s *FakeSite) Replies() []Reply {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Reply(nil), s.replies...)
}

// Faved reports whether the view is in the session's favorites.
func (s *FakeSite) Faved(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.faved[id]
}

// InboxSize is the number of entries left in the submissions inbox.
func (s *FakeSite) InboxSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inbox)
}

// Requests is the number of requests served so far.
func (s *FakeSite) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

// FavToken is the anti-forgery token the fake site hands out for a view.
func FavToken(id uint64) string {
	return "tok-" + strconv.FormatUint(id, 10)
}

func (s *FakeSite) withNotifications(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests++
		n := s.notifications
		s.mu.Unlock()

		h := w.Header()
		h.Set("X-Notifications-Submissions", strconv.Itoa(n.Submissions))
		h.Set("X-Notifications-Watches", strconv.Itoa(n.Watches))
		h.Set("X-Notifications-Comments", strconv.Itoa(n.Comments))
		h.Set("X-Notifications-Favorites", strconv.Itoa(n.Favorites))
		h.Set("X-Notifications-Journals", strconv.Itoa(n.Journals))
		h.Set("X-Notifications-Notes", strconv.Itoa(n.Notes))

		next.ServeHTTP(w, r)
	})
}

func session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !hasSession(r) {
			http.Error(w, "not logged in", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func hasSession(r *http.Request) bool {
	c, err := r.Cookie(SessionCookieName)
	return err == nil && c.Value == SessionCookieValue
}

func (s *FakeSite) journal(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	j, found := s.journals[id]
	s.mu.Unlock()

	if !found {
		http.Error(w, "journal not found", http.StatusNotFound)
		return
	}
	writeJSON(w, j)
}

func (s *FakeSite) view(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	v, found := s.renderView(id, hasSession(r))
	if !found {
		http.Error(w, "view not found", http.StatusNotFound)
		return
	}
	writeJSON(w, v)
}

func (s *FakeSite) renderView(id uint64, loggedIn bool) (models.View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, found := s.views[id]
	if !found {
		return v, false
	}

	v.Faved = false
	v.FavKey = nil
	if loggedIn {
		v.Faved = s.faved[id]
		v.FavKey = &models.FavKey{ViewID: id, Token: FavToken(id)}
	}
	return v, true
}

func (s *FakeSite) reply(w http.ResponseWriter, r *http.Request) {
	target := chi.URLParam(r, "target")
	if target != string(models.CommentTargetView) && target != string(models.CommentTargetJournal) {
		http.NotFound(w, r)
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var body struct {
		CommentID uint64 `json:"comment_id"`
		Message   string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.Message) == "" {
		http.Error(w, "empty message", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.replies = append(s.replies, Reply{Target: target, ID: id, CommentID: body.CommentID, Message: body.Message})
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (s *FakeSite) fav(faved bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		if r.URL.Query().Get("key") != FavToken(id) {
			http.Error(w, "bad fav token", http.StatusForbidden)
			return
		}

		s.mu.Lock()
		_, found := s.views[id]
		if found {
			s.faved[id] = faved
		}
		s.mu.Unlock()

		v, found := s.renderView(id, true)
		if !found {
			http.Error(w, "view not found", http.StatusNotFound)
			return
		}
		writeJSON(w, v)
	}
}

func (s *FakeSite) getOthers(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	o := s.others
	s.mu.Unlock()

	writeJSON(w, o)
}

func (s *FakeSite) submissions(w http.ResponseWriter, r *http.Request) {
	key, err := parseSubmissionsKey(chi.URLParam(r, "page"), chi.URLParam(r, "from"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	items := make([]models.Submission, 0, len(s.inbox))
	for _, it := range s.inbox {
		items = append(items, it)
	}
	s.mu.Unlock()

	writeJSON(w, paginate(items, key))
}

func (s *FakeSite) clearSubmissions(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ViewIDs []uint64 `json:"view_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	for _, id := range body.ViewIDs {
		delete(s.inbox, id)
	}
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

// parseSubmissionsKey is the inverse of [models.SubmissionsKey.Path].
func parseSubmissionsKey(page, from string) (models.SubmissionsKey, error) {
	order, perPage, found := strings.Cut(page, "@")
	if !found {
		return models.SubmissionsKey{}, fmt.Errorf("malformed page %q", page)
	}

	key := models.SubmissionsKey{Order: models.SubmissionOrder(order)}
	if key.Order != models.OrderOldest && key.Order != models.OrderNewest {
		return key, fmt.Errorf("unknown order %q", order)
	}

	n, err := strconv.Atoi(perPage)
	if err != nil || n <= 0 {
		return key, fmt.Errorf("malformed page size %q", perPage)
	}
	key.PerPage = n

	if from != "" {
		id, err := strconv.ParseUint(strings.TrimPrefix(from, "~"), 10, 64)
		if err != nil || !strings.HasPrefix(from, "~") {
			return key, fmt.Errorf("malformed start %q", from)
		}
		key.From = id
	}

	return key, nil
}

func paginate(items []models.Submission, key models.SubmissionsKey) models.Submissions {
	oldest := key.Order == models.OrderOldest
	sort.Slice(items, func(i, j int) bool {
		if oldest {
			return items[i].Key.ID < items[j].Key.ID
		}
		return items[i].Key.ID > items[j].Key.ID
	})

	start := 0
	if key.From != 0 {
		start = sort.Search(len(items), func(i int) bool {
			if oldest {
				return items[i].Key.ID >= key.From
			}
			return items[i].Key.ID <= key.From
		})
	}
	end := min(start+key.PerPage, len(items))

	page := models.Submissions{Items: append([]models.Submission{}, items[start:end]...)}
	if end < len(items) {
		page.Next = &models.SubmissionsKey{Order: key.Order, From: items[end].Key.ID, PerPage: key.PerPage}
	}
	if start > 0 {
		prev := max(start-key.PerPage, 0)
		page.Prev = &models.SubmissionsKey{Order: key.Order, From: items[prev].Key.ID, PerPage: key.PerPage}
	}

	return page
}

func idParam(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "malformed id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
