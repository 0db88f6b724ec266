package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/labrat-client/models"
)

// viewScreen shows one submission and hosts the reply input.
type viewScreen struct {
	view     models.View
	loading  bool
	replying bool
	input    textinput.Model
	sending  bool
}

func newViewScreen() viewScreen {
	in := textinput.New()
	in.Placeholder = "Write a comment"
	in.Width = 60
	in.CharLimit = 2000
	return viewScreen{input: in}
}

func (m viewScreen) View() string {
	if m.loading {
		return "Loading...\n"
	}

	var b strings.Builder
	v := m.view

	b.WriteString(titleStyle.Render(v.Title) + "\n")
	fmt.Fprintf(&b, "by %s\n\n", v.Artist.Name)
	if v.Description != "" {
		b.WriteString(v.Description + "\n\n")
	}

	fav := "not in favorites"
	if v.Faved {
		fav = "in favorites"
	}
	if v.FavKey == nil {
		fav += " (log in to change)"
	}
	b.WriteString(fav + "\n")

	if len(v.Comments) > 0 {
		fmt.Fprintf(&b, "\nComments (%d)\n", len(v.Comments))
		for _, c := range v.Comments {
			fmt.Fprintf(&b, "  %s: %s\n", c.Author.Name, fitText(c.Text, 70))
		}
	}

	if m.replying {
		b.WriteString("\n" + m.input.View() + "\n")
		if m.sending {
			b.WriteString("Sending...\n")
		}
	}

	return b.String()
}
