package analysis

import (
	"html"
	"regexp"
	"sort"
	"strings"
)

// Inline markers used by the annotated output.
const (
	warnOpen  = `<span style="background-color:#fff3cd;color:#d9534f">`
	okOpen    = `<span style="background-color:#d4edda;color:#1e7e34">`
	spanClose = `</span>`

	warnHeadingOpen  = `<h3 style="color:#d9534f">`
	warnHeadingClose = `</h3>`
	warnParaOpen     = `<p style="background-color:#fff3cd;color:#d9534f">`
	warnParaClose    = `</p>`
)

type spanKind int

const (
	spanSectionHeading spanKind = iota
	spanMissingKeyword
)

type span struct {
	start, end int
	kind       spanKind
}

var (
	bulletLineRe = regexp.MustCompile(`^\s*[•\-*]\s+`)
	numberLineRe = regexp.MustCompile(`^\s*\d+\.\s+`)
)

type listKind int

const (
	listNone listKind = iota
	listBullet
	listNumber
)

// Annotate renders the text as HTML with problem markers: detected section
// headings get a success marker, occurrences of keywords from the missing
// list get a warning marker, bullet and numbered lines become list items, and
// every missing section gets a synthetic warning block appended after the
// original content.
//
// All match spans are collected over the original text and rendered in a
// single pass, so markers never wrap previously inserted markup. Original
// content is preserved verbatim inside the markup, list markers included.
func (r *Ruleset) Annotate(text string, missingKeywords []string, missingSections []string) string {
	spans := r.collectSpans(text, missingKeywords, missingSections)

	var b strings.Builder
	b.Grow(len(text) + len(text)/4)

	open := listNone
	pos := 0
	for pos <= len(text) {
		lineEnd := strings.IndexByte(text[pos:], '\n')
		termEnd := 0
		if lineEnd < 0 {
			lineEnd = len(text)
		} else {
			lineEnd += pos
			termEnd = 1
		}
		line := text[pos:lineEnd]

		kind := classifyLine(line)
		if kind != open {
			closeList(&b, open)
			openList(&b, kind)
			open = kind
		}

		inner := renderRange(text, pos, lineEnd, spans)
		if kind == listNone {
			b.WriteString(inner)
		} else {
			b.WriteString("<li>")
			b.WriteString(inner)
			b.WriteString("</li>")
		}
		b.WriteString(text[lineEnd : lineEnd+termEnd])

		pos = lineEnd + termEnd
		if termEnd == 0 {
			break
		}
	}
	closeList(&b, open)

	for _, id := range missingSections {
		sec, ok := r.sectionByID(id)
		if !ok {
			continue
		}
		b.WriteString(warnHeadingOpen)
		b.WriteString(html.EscapeString(sec.DisplayName))
		b.WriteString(warnHeadingClose)
		b.WriteString(warnParaOpen)
		b.WriteString(html.EscapeString(sec.Placeholder))
		b.WriteString(warnParaClose)
	}

	return b.String()
}

func classifyLine(line string) listKind {
	switch {
	case bulletLineRe.MatchString(line):
		return listBullet
	case numberLineRe.MatchString(line):
		return listNumber
	default:
		return listNone
	}
}

func openList(b *strings.Builder, kind listKind) {
	switch kind {
	case listBullet:
		b.WriteString("<ul>")
	case listNumber:
		b.WriteString("<ol>")
	}
}

func closeList(b *strings.Builder, kind listKind) {
	switch kind {
	case listBullet:
		b.WriteString("</ul>")
	case listNumber:
		b.WriteString("</ol>")
	}
}

// collectSpans gathers non-overlapping highlight spans over the original
// text. Section headings win over keyword occurrences when they overlap.
// Both use the same compiled patterns as the scorers, so the annotator can
// never disagree with the scores about what counts as found.
func (r *Ruleset) collectSpans(text string, missingKeywords []string, missingSections []string) []span {
	missingSec := make(map[string]bool, len(missingSections))
	for _, id := range missingSections {
		missingSec[id] = true
	}

	var sections []span
	for i, sec := range r.Sections {
		if missingSec[sec.ID] {
			continue
		}
		if loc := r.sectionPatterns[i].FindStringIndex(text); loc != nil {
			sections = append(sections, span{start: loc[0], end: loc[1], kind: spanSectionHeading})
		}
	}

	var keywords []span
	for _, kw := range missingKeywords {
		pat := r.keywordPattern(kw)
		if pat == nil {
			continue
		}
		for _, loc := range pat.FindAllStringIndex(text, -1) {
			keywords = append(keywords, span{start: loc[0], end: loc[1], kind: spanMissingKeyword})
		}
	}

	accepted := make([]span, 0, len(sections)+len(keywords))
	for _, sp := range sortSpans(sections) {
		if !overlapsAny(accepted, sp) {
			accepted = append(accepted, sp)
		}
	}
	for _, sp := range sortSpans(keywords) {
		if !overlapsAny(accepted, sp) {
			accepted = append(accepted, sp)
		}
	}
	return sortSpans(accepted)
}

func (r *Ruleset) keywordPattern(kw string) *regexp.Regexp {
	for i, candidate := range r.Keywords {
		if candidate == kw {
			return r.keywordPatterns[i]
		}
	}
	return nil
}

func sortSpans(spans []span) []span {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end > spans[j].end
	})
	return spans
}

func overlapsAny(accepted []span, sp span) bool {
	for _, a := range accepted {
		if sp.start < a.end && a.start < sp.end {
			return true
		}
	}
	return false
}

// renderRange escapes text[start:end] and wraps the parts covered by spans in
// their markers. Spans outside the range are clipped.
func renderRange(text string, start, end int, spans []span) string {
	var b strings.Builder
	pos := start
	for _, sp := range spans {
		if sp.end <= start || sp.start >= end {
			continue
		}
		s, e := sp.start, sp.end
		if s < start {
			s = start
		}
		if e > end {
			e = end
		}
		if s > pos {
			b.WriteString(html.EscapeString(text[pos:s]))
		}
		if sp.kind == spanSectionHeading {
			b.WriteString(okOpen)
		} else {
			b.WriteString(warnOpen)
		}
		b.WriteString(html.EscapeString(text[s:e]))
		b.WriteString(spanClose)
		pos = e
	}
	if pos < end {
		b.WriteString(html.EscapeString(text[pos:end]))
	}
	return b.String()
}
