package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/labrat-client/models"
)

// inboxModel is one page of the submissions inbox.
type inboxModel struct {
	key      models.SubmissionsKey
	page     models.Submissions
	idx      int
	selected map[uint64]bool
	loading  bool
	spinner  spinner.Model
}

func newInboxModel() inboxModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return inboxModel{
		key:      models.OldestSubmissions(),
		selected: make(map[uint64]bool),
		loading:  true,
		spinner:  s,
	}
}

func (m inboxModel) current() (models.Submission, bool) {
	if m.idx < 0 || m.idx >= len(m.page.Items) {
		return models.Submission{}, false
	}
	return m.page.Items[m.idx], true
}

// toClear returns the selected submissions, or the one under the cursor
// when nothing is selected.
func (m inboxModel) toClear() []models.ViewKey {
	var keys []models.ViewKey
	for _, it := range m.page.Items {
		if m.selected[it.Key.ID] {
			keys = append(keys, it.Key)
		}
	}
	if len(keys) == 0 {
		if it, ok := m.current(); ok {
			keys = append(keys, it.Key)
		}
	}
	return keys
}

func (m *inboxModel) toggle() {
	if it, ok := m.current(); ok {
		if m.selected[it.Key.ID] {
			delete(m.selected, it.Key.ID)
		} else {
			m.selected[it.Key.ID] = true
		}
	}
}

// remove drops cleared submissions from the page without a reload.
func (m *inboxModel) remove(keys []models.ViewKey) {
	gone := make(map[uint64]bool, len(keys))
	for _, k := range keys {
		gone[k.ID] = true
		delete(m.selected, k.ID)
	}

	kept := m.page.Items[:0]
	for _, it := range m.page.Items {
		if !gone[it.Key.ID] {
			kept = append(kept, it)
		}
	}
	m.page.Items = kept
	m.clamp()
}

func (m *inboxModel) clamp() {
	if m.idx >= len(m.page.Items) {
		m.idx = len(m.page.Items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m inboxModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View() + " Loading...\n")
		return b.String()
	}
	if len(m.page.Items) == 0 {
		b.WriteString("Inbox is empty\n")
		return b.String()
	}

	for i, it := range m.page.Items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		mark := "[ ]"
		if m.selected[it.Key.ID] {
			mark = "[x]"
		}

		line := fmt.Sprintf("%s%s %s by %s", cursor, mark, fitText(it.Title, 48), it.Artist.Name)
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}
