package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/labrat-client/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")
	b.WriteString(data)
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
	}

	return appStyle.Render(b.String())
}

func renderBuildInfo(info models.BuildInfo) string {
	data := "labrat client\n" +
		"Version: " + info.Version + "\n" +
		"Date:    " + info.Date + "\n" +
		"Commit:  " + info.Commit + "\n"
	return renderPage("ABOUT", data, "esc: back")
}

// notificationBadge renders the unread counters of the last page and the
// notifications fetched by the poller. Either may be missing.
func notificationBadge(n *models.Notifications, o *models.Others) string {
	var parts []string
	if n != nil {
		parts = append(parts,
			strconv.Itoa(n.Total())+" unread",
			countLabel(n.Submissions, "submission"),
			countLabel(n.Notes, "note"),
		)
	}
	if o != nil {
		parts = append(parts,
			countLabel(len(o.Watches), "watch"),
			countLabel(len(o.Comments), "comment"),
			countLabel(len(o.Journals), "journal"),
			countLabel(len(o.Favorites), "fav"),
			countLabel(len(o.Shouts), "shout"),
		)
	}
	if len(parts) == 0 {
		return ""
	}
	return badgeStyle.Render(strings.Join(parts, "  "))
}

func countLabel(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	if strings.HasSuffix(noun, "h") {
		return strconv.Itoa(n) + " " + noun + "es"
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
