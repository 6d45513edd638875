package html

import (
	"strconv"

	"github.com/fwojciec/qalog"
)

// ExpandReplies converts a list of answers or self-replies into normalized
// reply strings, one per item in source order. Items of an ordered list are
// numbered from the list's start attribute.
//
// When every item holds nothing but spans wrapping an image, the list is a
// gallery and each image becomes a reply of its own.
func ExpandReplies(n *Node) []string {
	var items []*Node
	for _, e := range n.Elements() {
		if e.Tag() == "li" {
			items = append(items, e)
		}
	}

	if isGallery(items) {
		var out []string
		for _, item := range items {
			for _, span := range item.Elements() {
				out = append(out, imageReply(span.FirstElement(), span.Text()))
			}
		}
		return out
	}

	ordered := n.Tag() == "ol"
	start := 1
	if v, ok := n.Attr("start"); ok {
		if s, err := strconv.Atoi(v); err == nil {
			start = s
		}
	}

	out := make([]string, 0, len(items))
	for i, item := range items {
		if img := spanImage(item.FirstElement()); img != nil {
			out = append(out, imageReply(img, item.InnerHTML()))
			continue
		}

		content := qalog.StripHTML(item.InnerHTML())
		if ordered {
			content = strconv.Itoa(start+i) + ". " + content
		}
		out = append(out, qalog.Normalize(content, true))
	}
	return out
}

// isGallery reports whether every item consists solely of spans whose first
// element is an image.
func isGallery(items []*Node) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		spans := item.Elements()
		if len(spans) == 0 {
			return false
		}
		for _, span := range spans {
			if spanImage(span) == nil {
				return false
			}
		}
	}
	return true
}

// spanImage returns the image wrapped by span, or nil if n is not a span
// opening with an image.
func spanImage(n *Node) *Node {
	if n == nil || n.Tag() != "span" {
		return nil
	}
	if img := n.FirstElement(); img != nil && img.Tag() == "img" {
		return img
	}
	return nil
}

// imageReply returns the image source, falling back to the normalized
// fallback markup when the image has no src attribute.
func imageReply(img *Node, fallback string) string {
	if src, ok := img.Attr("src"); ok {
		return qalog.Normalize(src, true)
	}
	return qalog.Normalize(qalog.StripHTML(fallback), true)
}
