package tui

import "github.com/MKhiriev/labrat-client/models"

type sessionMsg struct {
	loggedIn bool
	err      error
}

type inboxLoadedMsg struct {
	key  models.SubmissionsKey
	page models.Submissions
	err  error
}

type viewLoadedMsg struct {
	view models.View
	err  error
}

type favDoneMsg struct {
	view models.View
	err  error
}

type clearedMsg struct {
	keys []models.ViewKey
	err  error
}

type replySentMsg struct {
	err error
}

type loggedOutMsg struct {
	err error
}

type notificationsMsg struct {
	others models.Others
	err    error
}

type countersMsg struct {
	counters models.Notifications
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
