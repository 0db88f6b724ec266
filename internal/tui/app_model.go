// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/labrat-client/internal/bridge"
	"github.com/MKhiriev/labrat-client/internal/secrets"
	"github.com/MKhiriev/labrat-client/models"
)

type screen int

const (
	screenInbox screen = iota
	screenView
)

type appModel struct {
	ctx       context.Context
	remote    Remote
	secrets   secrets.Secrets
	baseURL   string
	buildInfo models.BuildInfo

	currentScreen screen
	inbox         inboxModel
	view          viewScreen

	loggedIn      bool
	others        *models.Others
	counters      *models.Notifications
	status        string
	showError     bool
	errorMessage  string
	showBuildInfo bool

	// err is why the program ended.
	err error
}

func newAppModel(ctx context.Context, remote Remote, store secrets.Secrets, baseURL string, info models.BuildInfo) appModel {
	return appModel{
		ctx:       ctx,
		remote:    remote,
		secrets:   store,
		baseURL:   strings.TrimRight(baseURL, "/"),
		buildInfo: info,
		inbox:     newInboxModel(),
		view:      newViewScreen(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.inbox.spinner.Tick, m.cmdRestoreSession())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case sessionMsg:
		m.loggedIn = msg.loggedIn
		if msg.err != nil {
			m.inbox.loading = false
			return m.fail(msg.err)
		}
		if !m.loggedIn {
			m.inbox.loading = false
			m.status = "Not logged in"
			return m, nil
		}
		m.inbox.loading = true
		return m, m.cmdLoadInbox(m.inbox.key)
	case inboxLoadedMsg:
		m.inbox.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.inbox.key = msg.key
		m.inbox.page = msg.page
		m.inbox.idx = 0
		m.inbox.selected = make(map[uint64]bool)
		return m, nil
	case viewLoadedMsg:
		m.view.loading = false
		if msg.err != nil {
			m.currentScreen = screenInbox
			return m.fail(msg.err)
		}
		m.view.view = msg.view
		return m, nil
	case favDoneMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.view.view = msg.view
		if msg.view.Faved {
			m.status = "Added to favorites"
		} else {
			m.status = "Removed from favorites"
		}
		return m, cmdClearStatus()
	case clearedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.inbox.remove(msg.keys)
		m.status = "Cleared " + countLabel(len(msg.keys), "submission")
		if len(m.inbox.page.Items) == 0 {
			m.inbox.loading = true
			return m, tea.Batch(m.cmdLoadInbox(m.inbox.key), cmdClearStatus())
		}
		return m, cmdClearStatus()
	case replySentMsg:
		m.view.sending = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.view.replying = false
		m.view.input.Reset()
		m.view.input.Blur()
		m.status = "Comment posted"
		return m, tea.Batch(m.cmdLoadView(m.view.view.Key), cmdClearStatus())
	case loggedOutMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.loggedIn = false
		m.others = nil
		m.counters = nil
		m.inbox.page = models.Submissions{}
		m.inbox.clamp()
		m.currentScreen = screenInbox
		m.status = "Logged out"
		return m, nil
	case notificationsMsg:
		if msg.err == nil {
			others := msg.others
			m.others = &others
		}
		return m, nil
	case countersMsg:
		counters := msg.counters
		m.counters = &counters
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.status = "Link copied"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.inbox.spinner, cmd = m.inbox.spinner.Update(msg)
		return m, cmd
	}

	if m.view.replying {
		var cmd tea.Cmd
		m.view.input, cmd = m.view.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorMessage = ""
		}
		return m, nil
	}
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenView:
		if m.view.replying {
			return m.updateReply(msg)
		}
		return m.updateView(msg)
	default:
		return m.updateInbox(msg)
	}
}

func (m appModel) updateInbox(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.inbox.idx > 0 {
			m.inbox.idx--
		}
	case key.Matches(msg, keys.down):
		if m.inbox.idx < len(m.inbox.page.Items)-1 {
			m.inbox.idx++
		}
	case key.Matches(msg, keys.selectOne):
		m.inbox.toggle()
	case key.Matches(msg, keys.enter):
		it, ok := m.inbox.current()
		if !ok {
			return m, nil
		}
		m.currentScreen = screenView
		m.view.loading = true
		m.view.view = models.View{Key: it.Key}
		return m, m.cmdLoadView(it.Key)
	case key.Matches(msg, keys.reload):
		if m.inbox.loading {
			return m, nil
		}
		m.inbox.loading = true
		return m, tea.Batch(m.inbox.spinner.Tick, m.cmdLoadInbox(m.inbox.key))
	case key.Matches(msg, keys.next):
		return m.page(m.inbox.page.Next)
	case key.Matches(msg, keys.prev):
		return m.page(m.inbox.page.Prev)
	case key.Matches(msg, keys.clear):
		if toClear := m.inbox.toClear(); len(toClear) > 0 {
			return m, m.cmdClear(toClear)
		}
	case key.Matches(msg, keys.copyLink):
		if it, ok := m.inbox.current(); ok {
			return m, cmdCopyToClipboard(m.link(it.Key))
		}
	case key.Matches(msg, keys.logout):
		if m.loggedIn {
			return m, m.cmdLogout()
		}
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	}
	return m, nil
}

func (m appModel) page(to *models.SubmissionsKey) (tea.Model, tea.Cmd) {
	if to == nil || m.inbox.loading {
		return m, nil
	}
	m.inbox.loading = true
	return m, tea.Batch(m.inbox.spinner.Tick, m.cmdLoadInbox(*to))
}

func (m appModel) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenInbox
	case key.Matches(msg, keys.reload):
		m.view.loading = true
		return m, m.cmdLoadView(m.view.view.Key)
	case key.Matches(msg, keys.fav), key.Matches(msg, keys.unfav):
		if m.view.loading {
			return m, nil
		}
		if m.view.view.FavKey == nil {
			m.status = "Log in to change favorites"
			return m, cmdClearStatus()
		}
		return m, m.cmdFav(*m.view.view.FavKey, key.Matches(msg, keys.fav))
	case key.Matches(msg, keys.copyLink):
		return m, cmdCopyToClipboard(m.link(m.view.view.Key))
	case key.Matches(msg, keys.reply):
		if m.view.loading {
			return m, nil
		}
		m.view.replying = true
		m.view.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m appModel) updateReply(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.view.replying = false
		m.view.input.Reset()
		m.view.input.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		text := strings.TrimSpace(m.view.input.Value())
		if text == "" || m.view.sending {
			return m, nil
		}
		m.view.sending = true
		target := models.CommentReplyKey{Target: models.CommentTargetView, ID: m.view.view.Key.ID}
		return m, m.cmdReply(target, text)
	}

	var cmd tea.Cmd
	m.view.input, cmd = m.view.input.Update(msg)
	return m, cmd
}

// fail shows err to the user. A gone worker ends the program.
func (m appModel) fail(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, bridge.ErrExited) {
		m.err = err
		return m, tea.Quit
	}
	m.showError = true
	m.errorMessage = humanizeError(err)
	return m, nil
}

func (m appModel) link(k models.ViewKey) string {
	return m.baseURL + "/view/" + k.String() + "/"
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfo(m.buildInfo)
	}

	var title, data, help string
	switch m.currentScreen {
	case screenView:
		title = "Submission " + m.view.view.Key.String()
		data = m.view.View()
		if m.view.replying {
			help = "enter: send  esc: cancel"
		} else {
			help = "f: fav  u: unfav  m: comment  y: copy link  r: reload  esc: back  q: quit"
		}
	default:
		title = "Submissions"
		if !m.loggedIn {
			title += " (anonymous)"
		}
		data = m.inbox.View()
		help = "space: select  enter: open  c: clear  n/p: page  y: copy link  r: reload  x: logout  v: about  q: quit"
	}

	if badge := notificationBadge(m.counters, m.others); badge != "" {
		title += "   " + badge
	}
	if m.status != "" {
		data += "\n" + m.status + "\n"
	}
	if m.showError {
		data += "\n" + overlayBoxStyle.Render("Error\n\n"+m.errorMessage+"\n\nenter / esc close") + "\n"
	}

	return renderPage(title, data, help)
}
