package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/labrat-client/internal/config"
	"github.com/MKhiriev/labrat-client/internal/logger"
	"github.com/MKhiriev/labrat-client/internal/utils"
	"github.com/MKhiriev/labrat-client/models"
	"github.com/go-resty/resty/v2"
)

// Response headers carrying the notification counters.
const (
	headerSubmissions = "X-Notifications-Submissions"
	headerWatches     = "X-Notifications-Watches"
	headerComments    = "X-Notifications-Comments"
	headerFavorites   = "X-Notifications-Favorites"
	headerJournals    = "X-Notifications-Journals"
	headerNotes       = "X-Notifications-Notes"
)

// headerRequestID carries the bridge request id to the remote side.
const headerRequestID = "X-Request-ID"

type httpRemoteAPI struct {
	client  *utils.HTTPClient
	cookies []*http.Cookie

	logger *logger.Logger
}

// NewHTTPRemoteAPI constructs an anonymous HTTP/JSON implementation of
// [RemoteAPI]. It normalises and validates the base URL from cfg.BaseURL and
// configures the underlying HTTP client with the resolved base URL, request
// timeout and user agent.
//
// Returns an error wrapping [ErrInvalidBaseURL] if cfg.BaseURL is empty or
// cannot be parsed as a valid URL.
func NewHTTPRemoteAPI(cfg config.ClientAdapter, logger *logger.Logger) (RemoteAPI, error) {
	api, err := newHTTPRemoteAPI(cfg, nil, logger)
	if err != nil {
		return nil, err
	}

	return api, nil
}

// NewHTTPRemoteAPIWithCookies constructs a [RemoteAPI] bound to the session
// carried by cookies. Fails if the base URL is invalid or the cookie string
// is empty or malformed; see [ParseCookies].
func NewHTTPRemoteAPIWithCookies(cfg config.ClientAdapter, cookies string, logger *logger.Logger) (RemoteAPI, error) {
	parsed, err := ParseCookies(cookies)
	if err != nil {
		return nil, err
	}

	api, err := newHTTPRemoteAPI(cfg, parsed, logger)
	if err != nil {
		return nil, err
	}

	return api, nil
}

func newHTTPRemoteAPI(cfg config.ClientAdapter, cookies []*http.Cookie, logger *logger.Logger) (*httpRemoteAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(cfg.RequestTimeout),
		utils.WithUserAgent(cfg.UserAgent),
		utils.WithCookies(cookies),
	)

	return &httpRemoteAPI{client: client, cookies: cookies, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Journal implements [RemoteAPI]. GET /journal/{id}/.
func (h *httpRemoteAPI) Journal(ctx context.Context, key models.JournalKey) (models.Response[models.Journal], error) {
	return fetch[models.Journal](h.logger, h.request(ctx), http.MethodGet,
		fmt.Sprintf("/journal/%d/", key.ID), "journal")
}

// View implements [RemoteAPI]. GET /view/{id}/.
func (h *httpRemoteAPI) View(ctx context.Context, key models.ViewKey) (models.Response[models.View], error) {
	return fetch[models.View](h.logger, h.request(ctx), http.MethodGet,
		fmt.Sprintf("/view/%d/", key.ID), "view")
}

// Reply implements [RemoteAPI]. POST /{target}/{id}/reply/ with the parent
// comment id and message as JSON.
func (h *httpRemoteAPI) Reply(ctx context.Context, key models.CommentReplyKey, text string) error {
	if err := h.requireSession("reply"); err != nil {
		return err
	}

	switch key.Target {
	case models.CommentTargetView, models.CommentTargetJournal:
	default:
		return fmt.Errorf("%w: unknown comment target %q", ErrInvalidKey, key.Target)
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"comment_id": key.CommentID, "message": text}).
		Post(fmt.Sprintf("/%s/%d/reply/", key.Target, key.ID))
	if err != nil {
		return fmt.Errorf("reply request: %w", err)
	}

	return mapHTTPError(resp)
}

// Fav implements [RemoteAPI]. POST /fav/{view_id}/?key={token}.
func (h *httpRemoteAPI) Fav(ctx context.Context, key models.FavKey) (models.Response[models.View], error) {
	if err := h.requireSession("fav"); err != nil {
		return models.Response[models.View]{}, err
	}

	return fetch[models.View](h.logger, h.request(ctx).SetQueryParam("key", key.Token), http.MethodPost,
		fmt.Sprintf("/fav/%d/", key.ViewID), "fav")
}

// Unfav implements [RemoteAPI]. POST /unfav/{view_id}/?key={token}.
func (h *httpRemoteAPI) Unfav(ctx context.Context, key models.FavKey) (models.Response[models.View], error) {
	if err := h.requireSession("unfav"); err != nil {
		return models.Response[models.View]{}, err
	}

	return fetch[models.View](h.logger, h.request(ctx).SetQueryParam("key", key.Token), http.MethodPost,
		fmt.Sprintf("/unfav/%d/", key.ViewID), "unfav")
}

// Others implements [RemoteAPI]. GET /msg/others/.
func (h *httpRemoteAPI) Others(ctx context.Context) (models.Response[models.Others], error) {
	if err := h.requireSession("others"); err != nil {
		return models.Response[models.Others]{}, err
	}

	return fetch[models.Others](h.logger, h.request(ctx), http.MethodGet, "/msg/others/", "others")
}

// Submissions implements [RemoteAPI]. GET /msg/submissions/{order}@{per_page}[/~{from}]/.
func (h *httpRemoteAPI) Submissions(ctx context.Context, key models.SubmissionsKey) (models.Response[models.Submissions], error) {
	if err := h.requireSession("submissions"); err != nil {
		return models.Response[models.Submissions]{}, err
	}

	return fetch[models.Submissions](h.logger, h.request(ctx), http.MethodGet,
		"/msg/submissions/"+key.Path()+"/", "submissions")
}

// ClearSubmissions implements [RemoteAPI]. POST /msg/submissions/clear/ with
// the view ids as JSON. An empty keys slice is a no-op.
func (h *httpRemoteAPI) ClearSubmissions(ctx context.Context, keys []models.ViewKey) error {
	if err := h.requireSession("clear submissions"); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	ids := make([]uint64, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, k.ID)
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"view_ids": ids}).
		Post("/msg/submissions/clear/")
	if err != nil {
		return fmt.Errorf("clear submissions request: %w", err)
	}

	return mapHTTPError(resp)
}

// request starts a request bound to ctx, tagged with the caller's request
// id when there is one.
func (h *httpRemoteAPI) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if id, ok := utils.GetRequestIDFromContext(ctx); ok {
		req.SetHeader(headerRequestID, id)
	}
	return req
}

func (h *httpRemoteAPI) requireSession(op string) error {
	if len(h.cookies) == 0 {
		return fmt.Errorf("%w: %s requires a logged in session", ErrUnauthorized, op)
	}
	return nil
}

func fetch[T any](log *logger.Logger, req *resty.Request, method, path, op string) (models.Response[T], error) {
	var out models.Response[T]

	resp, err := req.Execute(method, path)
	if err != nil {
		return out, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Debug().Err(err).
			Str("op", op).
			Int("status", resp.StatusCode()).
			Msg("remote API returned an error")
		return out, err
	}

	if err = json.Unmarshal(resp.Body(), &out.Page); err != nil {
		return out, fmt.Errorf("decode %s response: %w", op, err)
	}
	out.Notifications = parseNotifications(resp.Header())

	return out, nil
}

func parseNotifications(h http.Header) models.Notifications {
	count := func(name string) int {
		n, err := strconv.Atoi(strings.TrimSpace(h.Get(name)))
		if err != nil || n < 0 {
			return 0
		}
		return n
	}

	return models.Notifications{
		Submissions: count(headerSubmissions),
		Watches:     count(headerWatches),
		Comments:    count(headerComments),
		Favorites:   count(headerFavorites),
		Journals:    count(headerJournals),
		Notes:       count(headerNotes),
	}
}
