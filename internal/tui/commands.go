// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/labrat-client/internal/secrets"
	"github.com/MKhiriev/labrat-client/models"
)

// Every call into the bridge happens inside one of these commands, so the
// Update loop never waits on the worker.

func (m appModel) cmdRestoreSession() tea.Cmd {
	return func() tea.Msg {
		cookies, err := m.secrets.Get(m.ctx)
		if errors.Is(err, secrets.ErrSecretNotFound) {
			return sessionMsg{}
		}
		if err != nil {
			return sessionMsg{err: fmt.Errorf("read stored cookies: %w", err)}
		}

		if err = m.remote.Login(m.ctx, cookies); err != nil {
			return sessionMsg{err: err}
		}
		return sessionMsg{loggedIn: true}
	}
}

func (m appModel) cmdLoadInbox(key models.SubmissionsKey) tea.Cmd {
	return func() tea.Msg {
		page, err := m.remote.Submissions(m.ctx, key)
		return inboxLoadedMsg{key: key, page: page, err: err}
	}
}

func (m appModel) cmdLoadView(key models.ViewKey) tea.Cmd {
	return func() tea.Msg {
		view, err := m.remote.View(m.ctx, key)
		return viewLoadedMsg{view: view, err: err}
	}
}

func (m appModel) cmdFav(key models.FavKey, fav bool) tea.Cmd {
	return func() tea.Msg {
		if fav {
			view, err := m.remote.Fav(m.ctx, key)
			return favDoneMsg{view: view, err: err}
		}
		view, err := m.remote.Unfav(m.ctx, key)
		return favDoneMsg{view: view, err: err}
	}
}

func (m appModel) cmdClear(keys []models.ViewKey) tea.Cmd {
	return func() tea.Msg {
		return clearedMsg{keys: keys, err: m.remote.ClearSubmissions(m.ctx, keys)}
	}
}

func (m appModel) cmdReply(key models.CommentReplyKey, text string) tea.Cmd {
	return func() tea.Msg {
		return replySentMsg{err: m.remote.Reply(m.ctx, key, text)}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	return func() tea.Msg {
		if err := m.secrets.Clear(m.ctx); err != nil {
			return loggedOutMsg{err: err}
		}
		return loggedOutMsg{err: m.remote.Logout(m.ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
