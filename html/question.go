package html

import (
	"regexp"
	"strings"

	"github.com/fwojciec/qalog"
)

// colonRe matches a leading separator fragment: ":" optionally followed by
// one character.
var colonRe = regexp.MustCompile(`(?s)^:.?$`)

// IsQuestion reports whether list n has the shape of a question block: at
// most two items, the first item opening with a bold span (the asker) and
// continuing with ": " or ":\n".
func IsQuestion(n *Node, boldClass string) bool {
	children := n.Elements()
	if len(children) == 0 || len(children) > 2 {
		return false
	}

	item := children[0]
	if item.Tag() != "li" {
		return false
	}

	parts := item.Elements()
	if len(parts) == 0 || parts[0].Tag() != "span" {
		return false
	}
	if class, ok := parts[0].Attr("class"); !ok || class != boldClass {
		return false
	}

	var joined string
	for _, p := range parts[1:] {
		if len(joined) >= 2 {
			break
		}
		joined += qalog.StripHTML(p.Text())
	}
	return strings.HasPrefix(joined, ": ") || strings.HasPrefix(joined, ":\n")
}

// ConvertQuestion converts a question block into a Question. A second list
// item, if present, becomes the quoted context. Callers check IsQuestion
// first; other shapes are not guarded against.
func ConvertQuestion(n *Node) qalog.Question {
	var q qalog.Question

	children := n.Elements()
	if len(children) == 2 && children[1].Tag() == "li" {
		q.Context = qalog.Normalize(qalog.StripHTML(children[1].InnerHTML()), false)
	}

	var spans []*Node
	for _, e := range children[0].Elements() {
		if e.Tag() == "span" {
			spans = append(spans, e)
		}
	}

	var content []string
	for _, span := range spans[1:] {
		kids := span.Elements()
		if len(kids) > 0 && !allBreaks(kids) {
			for _, k := range kids {
				if src, ok := k.Attr("src"); ok {
					content = append(content, src)
				} else {
					content = append(content, qalog.StripHTML(k.InnerHTML()))
				}
			}
			continue
		}
		content = append(content, qalog.StripHTML(span.InnerHTML()))
	}

	// A separator fragment is dropped and put back as ": " once the images
	// have been moved. A bare ":" takes the following fragment with it.
	colon := false
	if len(content) > 0 && colonRe.MatchString(content[0]) {
		colon = true
		drop := 3 - len([]rune(content[0]))
		if drop > len(content) {
			drop = len(content)
		}
		content = content[drop:]
	}

	content, firstImage := groupImages(content)

	if colon {
		firstImage++
		content = append([]string{": "}, content...)
	}

	q.Asker = qalog.Normalize(qalog.StripHTML(spans[0].InnerHTML()), false)
	q.Query = qalog.Normalize(dropRunes(strings.Join(content[:firstImage], ""), 2), true)
	q.Attachments = make([]string, 0, len(content)-firstImage)
	for _, a := range content[firstImage:] {
		q.Attachments = append(q.Attachments, qalog.Normalize(a, true))
	}
	return q
}

// groupImages moves a leading run of image fragments in front of the first
// later image, or to the end when there is none, and returns the index
// where attachments start.
func groupImages(content []string) ([]string, int) {
	if len(content) == 0 || !isImage(content[0]) {
		for i, s := range content {
			if isImage(s) {
				return content, i
			}
		}
		return content, len(content)
	}

	start := -1
	for i, s := range content {
		if !isImage(s) {
			start = i
			break
		}
	}
	if start < 0 {
		return content, 0
	}

	images := append([]string(nil), content[:start]...)
	rest := append([]string(nil), content[start:]...)

	at := len(rest)
	for i, s := range rest {
		if isImage(s) {
			at = i
			break
		}
	}

	out := make([]string, 0, len(content))
	out = append(out, rest[:at]...)
	out = append(out, images...)
	out = append(out, rest[at:]...)
	return out, at
}

func isImage(s string) bool {
	return strings.HasPrefix(s, qalog.ImagePrefix)
}

func allBreaks(nodes []*Node) bool {
	for _, n := range nodes {
		if n.Tag() != "br" {
			return false
		}
	}
	return true
}

// dropRunes removes the first n runes of s.
func dropRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}
