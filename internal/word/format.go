package word

import (
	"strings"
	"time"
)

// FormatDate renders a Word.Date relative to now: "Today", "Yesterday", or "Jan 2, 2006".
// Calendar days are compared in now's location.
func FormatDate(date string, now time.Time) string {
	t, err := ParseDate(date)
	if err != nil {
		return "Unknown date"
	}
	t = t.In(now.Location())

	if sameDay(t, now) {
		return "Today"
	}
	if sameDay(t, now.AddDate(0, 0, -1)) {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Markdown renders w as a markdown card: heading, pronunciation line, definition, example.
func Markdown(w *Word) string {
	var b strings.Builder

	b.WriteString("# ")
	b.WriteString(w.Word)
	b.WriteString("\n")

	var meta []string
	if w.Phonetic != nil {
		meta = append(meta, "`"+*w.Phonetic+"`")
	}
	if w.PartOfSpeech != nil {
		meta = append(meta, "*"+*w.PartOfSpeech+"*")
	}
	if len(meta) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(meta, " · "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(w.Definition)
	b.WriteString("\n")

	if w.Example != nil {
		b.WriteString("\n> ")
		b.WriteString(*w.Example)
		b.WriteString("\n")
	}

	return b.String()
}
