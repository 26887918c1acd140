// Package ui renders the client core to a terminal. It only reads state:
// grouping and compactness come from projection, paging from client.Feed.
package ui

import (
	"fmt"
	"io"
	"strings"
	"team-chat/client"
	"team-chat/domain"
	"team-chat/projection"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

const defaultAuthorName = "Member"

type Renderer struct {
	out     io.Writer
	loc     *time.Location
	now     func() time.Time
	colours bool
}

func NewRenderer(out io.Writer, loc *time.Location, colours bool) *Renderer {
	if loc == nil {
		loc = time.Local
	}
	return &Renderer{out: out, loc: loc, now: time.Now, colours: colours}
}

// WithClock fixes "now" for day labels and relative times.
func (r *Renderer) WithClock(now func() time.Time) *Renderer {
	r.now = now
	return r
}

func (r *Renderer) paint(style color.Style, s string) string {
	if !r.colours {
		return s
	}
	return style.Render(s)
}

// Feed prints a feed oldest day first, one table per day.
func (r *Renderer) Feed(title string, messages []domain.Message, status client.FeedStatus) {
	fmt.Fprintln(r.out, r.paint(color.New(color.FgCyan, color.OpBold), "# "+title))
	switch status {
	case client.LoadingFirstPage:
		fmt.Fprintln(r.out, "Loading...")
		return
	case client.CanLoadMore:
		fmt.Fprintln(r.out, r.paint(color.New(color.FgGray), "(older messages available)"))
	case client.LoadingMore:
		fmt.Fprintln(r.out, r.paint(color.New(color.FgGray), "(loading older messages...)"))
	}
	if len(messages) == 0 {
		fmt.Fprintln(r.out, "No messages yet.")
		return
	}
	now := r.now().In(r.loc)
	for _, group := range projection.GroupByDay(messages, r.loc) {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, r.paint(color.New(color.FgYellow, color.OpBold), "── "+projection.DayLabel(group.Key, now)+" ──"))
		r.table(group.Entries)
	}
}

// Thread prints the root message followed by its replies.
func (r *Renderer) Thread(root domain.Message, replies []domain.Message, status client.FeedStatus) {
	fmt.Fprintln(r.out, r.paint(color.New(color.FgCyan, color.OpBold), "# Thread"))
	r.table([]projection.Entry{{Message: root}})
	r.Feed(fmt.Sprintf("%d %s", len(replies), plural(len(replies), "reply", "replies")), replies, status)
}

func (r *Renderer) Toasts(toasts []client.Toast) {
	for _, t := range toasts {
		style := color.New(color.FgGreen)
		if t.Level == client.ToastError {
			style = color.New(color.FgRed, color.OpBold)
		}
		fmt.Fprintln(r.out, r.paint(style, fmt.Sprintf("[%s] %s", t.Level, t.Message)))
	}
}

func (r *Renderer) table(entries []projection.Entry) {
	table := tablewriter.NewWriter(r.out)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	for _, e := range entries {
		table.Append(r.row(e))
	}
	table.Render()
}

// row leaves time and author blank for compact entries.
func (r *Renderer) row(e projection.Entry) []string {
	m := e.Message
	var at, author string
	if !e.Compact {
		at = m.CreatedAt.In(r.loc).Format("03:04 PM")
		author = r.paint(color.New(color.OpBold), lo.CoalesceOrEmpty(m.AuthorName, defaultAuthorName))
	}
	lines := []string{m.Body}
	if m.Image != "" {
		lines = append(lines, r.paint(color.New(color.FgBlue), "[image] "+m.Image))
	}
	if m.UpdatedAt != nil {
		lines = append(lines, r.paint(color.New(color.FgGray), "(edited)"))
	}
	if len(m.Reactions) > 0 {
		lines = append(lines, strings.Join(lo.Map(m.Reactions, func(a domain.ReactionAggregate, _ int) string {
			return fmt.Sprintf("%s %d", a.Value, a.Count)
		}), "  "))
	}
	if bar := r.threadBar(m.Thread); bar != "" {
		lines = append(lines, bar)
	}
	return []string{at, author, strings.Join(lines, "\n")}
}

// threadBar is empty when the message has no replies.
func (r *Renderer) threadBar(t domain.ThreadSummary) string {
	if t.Count == 0 || t.LastReplyAt == nil {
		return ""
	}
	replies := r.paint(color.New(color.FgLightBlue, color.OpBold), fmt.Sprintf("%d %s", t.Count, plural(t.Count, "reply", "replies")))
	return fmt.Sprintf("%s  Last reply %s by %s", replies,
		Ago(r.now().Sub(*t.LastReplyAt)), lo.CoalesceOrEmpty(t.LastName, defaultAuthorName))
}

// Ago formats a duration the way a "last reply" hint reads.
func Ago(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "less than a minute ago"
	case d < time.Hour:
		n := int(d / time.Minute)
		return fmt.Sprintf("%d %s ago", n, plural(n, "minute", "minutes"))
	case d < 24*time.Hour:
		n := int(d / time.Hour)
		return fmt.Sprintf("about %d %s ago", n, plural(n, "hour", "hours"))
	default:
		n := int(d / (24 * time.Hour))
		return fmt.Sprintf("%d %s ago", n, plural(n, "day", "days"))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
