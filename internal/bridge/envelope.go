package bridge

import (
	"github.com/MKhiriev/labrat-client/internal/adapter"
	"github.com/MKhiriev/labrat-client/models"
)

// envelope is one unit of work for the worker. The set of implementations
// is closed: the worker switches on the concrete type.
type envelope interface {
	// op names the operation for logs.
	op() string
	// abandon resolves the reply channel, if any, without a value.
	abandon()
}

// meta is embedded in every request that carries a reply.
type meta struct {
	id string
}

func (m meta) requestID() string { return m.id }

type stopRequest struct{}

func (stopRequest) op() string { return "stop" }
func (stopRequest) abandon() {}

type replaceRequest struct {
	meta
	api adapter.RemoteAPI
	ack *reply[struct{}]
}

func (*replaceRequest) op() string { return "replace" }
func (r *replaceRequest) abandon() { r.ack.abandon() }

type journalRequest struct {
	meta
	key   models.JournalKey
	reply *reply[result[models.Response[models.Journal]]]
}

func (*journalRequest) op() string { return "journal" }
func (r *journalRequest) abandon() { r.reply.abandon() }

type viewRequest struct {
	meta
	key   models.ViewKey
	reply *reply[result[models.Response[models.View]]]
}

func (*viewRequest) op() string { return "view" }
func (r *viewRequest) abandon() { r.reply.abandon() }

type replyRequest struct {
	meta
	key   models.CommentReplyKey
	text  string
	reply *reply[error]
}

func (*replyRequest) op() string { return "reply" }
func (r *replyRequest) abandon() { r.reply.abandon() }

type favRequest struct {
	meta
	key   models.FavKey
	reply *reply[result[models.Response[models.View]]]
}

func (*favRequest) op() string { return "fav" }
func (r *favRequest) abandon() { r.reply.abandon() }

type unfavRequest struct {
	meta
	key   models.FavKey
	reply *reply[result[models.Response[models.View]]]
}

func (*unfavRequest) op() string { return "unfav" }
func (r *unfavRequest) abandon() { r.reply.abandon() }

type othersRequest struct {
	meta
	reply *reply[result[models.Response[models.Others]]]
}

func (*othersRequest) op() string { return "others" }
func (r *othersRequest) abandon() { r.reply.abandon() }

type submissionsRequest struct {
	meta
	key   models.SubmissionsKey
	reply *reply[result[models.Response[models.Submissions]]]
}

func (*submissionsRequest) op() string { return "submissions" }
func (r *submissionsRequest) abandon() { r.reply.abandon() }

type clearSubmissionsRequest struct {
	meta
	keys  []models.ViewKey
	reply *reply[error]
}

func (*clearSubmissionsRequest) op() string { return "clear_submissions" }
func (r *clearSubmissionsRequest) abandon() { r.reply.abandon() }
