package qalog

import (
	"net/url"
	"regexp"
	"strings"
)

// ImagePrefix starts every image reference produced by the document export.
const ImagePrefix = "images/"

var (
	anchorRe   = regexp.MustCompile(`<a.*? href="(.*?)".*?>(.*?)</a>`)
	tagRe      = regexp.MustCompile(`<.+?>`)
	entityRe   = regexp.MustCompile(`&(?:nbsp|amp|lt|gt);`)
	linkRunRe  = regexp.MustCompile(`\[( +)\]\(.*?\)(\[.*?\]\(.*?\))`)
	redirectRe = regexp.MustCompile(`^https://(?:www\.)?google\.com`)
)

var entities = map[string]string{
	"&nbsp;": " ",
	"&amp;":  "&",
	"&lt;":   "<",
	"&gt;":   ">",
}

// EscapeMarkdown escapes backslash runs and the characters in avoid so the
// result can be embedded in markdown link syntax.
//
// Every run of backslashes that precedes an avoided character or an
// ordinary character is emitted with an odd length, so an avoided character
// is always escaped. A run at the end of s is emitted with an even length so
// it cannot escape whatever structural character follows the fragment.
func EscapeMarkdown(s, avoid string) string {
	var b strings.Builder
	b.Grow(len(s))

	run := 0
	flush := func(odd bool) {
		if odd && run%2 == 0 {
			run++
		} else if !odd && run%2 == 1 {
			run++
		}
		b.WriteString(strings.Repeat(`\`, run))
		run = 0
	}

	for _, r := range s {
		switch {
		case strings.ContainsRune(avoid, r):
			flush(true)
		case r == '\\':
			run++
			continue
		case run > 0:
			flush(true)
		}
		b.WriteRune(r)
	}
	if run > 0 {
		flush(false)
	}
	return b.String()
}

// UnwrapRedirectURL returns the target of a document-host redirect link,
// taken from its q= query parameter. Other URLs are returned unchanged.
func UnwrapRedirectURL(s string) string {
	if !redirectRe.MatchString(s) {
		return s
	}

	i := strings.IndexByte(s, '?')
	if i < 0 {
		return s
	}

	for _, param := range strings.Split(s[i+1:], "&") {
		if !strings.HasPrefix(param, "q=") {
			continue
		}
		target, err := url.PathUnescape(param[2:])
		if err != nil {
			return s
		}
		return target
	}
	return s
}

// StripHTML converts serialized inner markup to plain text with markdown
// links. Anchors become [text](url), <br> becomes a newline, every other tag
// is removed and the entities &nbsp; &amp; &lt; &gt; are decoded.
func StripHTML(s string) string {
	s = convertLinks(s)
	s = strings.ReplaceAll(s, "<br>", "\n")
	s = tagRe.ReplaceAllString(s, "")
	s = entityRe.ReplaceAllStringFunc(s, func(e string) string {
		return entities[e]
	})

	// "[ ](http...)[text](link)" => " [text](link)"
	return linkRunRe.ReplaceAllString(s, "${1}${2}")
}

func convertLinks(s string) string {
	matches := anchorRe.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		text := EscapeMarkdown(s[m[4]:m[5]], "]()")
		link := UnwrapRedirectURL(EscapeMarkdown(s[m[2]:m[3]], ")"))

		b.WriteString(s[last:m[0]])
		b.WriteString("[" + text + "](" + link + ")")
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// Normalize replaces the typographic apostrophe with an ASCII one. When
// trimNewlines is set, a single leading and a single trailing newline are
// removed first.
func Normalize(s string, trimNewlines bool) string {
	if trimNewlines {
		s = strings.TrimPrefix(s, "\n")
		s = strings.TrimSuffix(s, "\n")
	}
	return strings.ReplaceAll(s, "\u2019", "'")
}
