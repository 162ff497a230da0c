// Package label implements the display labels used by the workspace strip:
// token templates, their substitution and the width metric used for budgets.
package label

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// DefaultTruncateSuffix is appended when a clamped token exceeds its maximum width.
const DefaultTruncateSuffix = "..."

// Label is a text template containing %tokens%.
//
// The template is kept so that ResetTokens can restore it; ReplaceToken
// works on the current text. A token may carry a clamp spec of the form
// %token:min:max% or %token:min:max:suffix%: the substituted value is
// right-padded with spaces up to min cells and truncated to max cells.
type Label struct {
	template string
	text     string
}

// New creates a label from a template.
func New(template string) *Label {
	return &Label{template: template, text: template}
}

// Clone returns an independent copy sharing the same template.
func (l *Label) Clone() *Label {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}

// ResetTokens restores the text to the unsubstituted template.
func (l *Label) ResetTokens() {
	l.text = l.template
}

// Template returns the raw template.
func (l *Label) Template() string {
	return l.template
}

// Text returns the current, possibly substituted, text.
func (l *Label) Text() string {
	if l == nil {
		return ""
	}
	return l.text
}

// Width returns the number of characters in the current text.
func (l *Label) Width() int {
	return Width(l.Text())
}

// Empty reports whether the label is missing or renders nothing.
func (l *Label) Empty() bool {
	return l == nil || l.text == ""
}

// Width is the budget metric: the number of characters (code points) in
// s. Wide and zero-width runes count once each.
func Width(s string) int {
	return utf8.RuneCountInString(s)
}

// ReplaceToken substitutes every occurrence of token (e.g. "%name%"),
// including its clamped forms, with value.
func (l *Label) ReplaceToken(token, value string) {
	if len(token) < 3 || token[0] != '%' || token[len(token)-1] != '%' {
		l.text = strings.ReplaceAll(l.text, token, value)
		return
	}

	stem := token[:len(token)-1]
	rest := l.text
	var b strings.Builder

	for {
		i := strings.Index(rest, stem)
		if i < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:i])
		after := rest[i+len(stem):]

		switch {
		case strings.HasPrefix(after, "%"):
			b.WriteString(value)
			rest = after[1:]
		case strings.HasPrefix(after, ":"):
			end := strings.IndexByte(after, '%')
			if end < 0 {
				b.WriteString(stem)
				rest = after
				continue
			}
			c, ok := parseClamp(after[1:end])
			if !ok {
				b.WriteString(stem)
				rest = after
				continue
			}
			b.WriteString(c.apply(value))
			rest = after[end+1:]
		default:
			// Longer token sharing the stem, e.g. %name% vs %names%.
			b.WriteString(stem)
			rest = after
		}
	}

	l.text = b.String()
}

type clamp struct {
	min    int
	max    int
	suffix string
}

func parseClamp(spec string) (clamp, bool) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return clamp{}, false
	}

	c := clamp{suffix: DefaultTruncateSuffix}
	var err error
	if parts[0] != "" {
		if c.min, err = strconv.Atoi(parts[0]); err != nil || c.min < 0 {
			return clamp{}, false
		}
	}
	if parts[1] != "" {
		if c.max, err = strconv.Atoi(parts[1]); err != nil || c.max < 0 {
			return clamp{}, false
		}
	}
	if len(parts) == 3 {
		c.suffix = parts[2]
	}
	return c, true
}

func (c clamp) apply(value string) string {
	if c.max > 0 && runewidth.StringWidth(value) > c.max {
		suffix := c.suffix
		if runewidth.StringWidth(suffix) >= c.max {
			suffix = ""
		}
		value = runewidth.Truncate(value, c.max, suffix)
	}
	if w := runewidth.StringWidth(value); w < c.min {
		value += strings.Repeat(" ", c.min-w)
	}
	return value
}
