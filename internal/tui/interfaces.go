package tui

import (
	"context"

	"github.com/MKhiriev/labrat-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/tui_mock.go -package=mock

// Remote is the part of the bridge the UI talks to. *bridge.Handle
// implements it.
type Remote interface {
	Login(ctx context.Context, cookies string) error
	Logout(ctx context.Context) error
	View(ctx context.Context, key models.ViewKey) (models.View, error)
	Reply(ctx context.Context, key models.CommentReplyKey, text string) error
	Fav(ctx context.Context, key models.FavKey) (models.View, error)
	Unfav(ctx context.Context, key models.FavKey) (models.View, error)
	Submissions(ctx context.Context, key models.SubmissionsKey) (models.Submissions, error)
	ClearSubmissions(ctx context.Context, keys []models.ViewKey) error
}
