package html

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/qalog"
)

// UnknownDepth is returned by ListDepth when the list carries no depth class.
const UnknownDepth = -1

// boldRe matches the first CSS rule that only sets bold text, e.g. the c9
// in ".c9{font-weight:700}".
var boldRe = regexp.MustCompile(`\.([^.]+?)\{font-weight:700\}`)

// FindBoldClass returns the CSS class the export uses for bold text.
// root is the document's <html> element.
func FindBoldClass(root *Node) (string, error) {
	head := findElement(root, "head")
	var style *Node
	if head != nil {
		style = findElement(head, "style")
	}
	if style == nil {
		return "", qalog.Errorf(qalog.EINVALID, "could not find style element")
	}

	m := boldRe.FindStringSubmatch(style.Text())
	if m == nil {
		return "", qalog.Errorf(qalog.EINVALID, "no bold selector found")
	}
	return m[1], nil
}

// findElement returns the first child element of n with the given tag.
func findElement(n *Node, tag string) *Node {
	for _, e := range n.Elements() {
		if e.Tag() == tag {
			return e
		}
	}
	return nil
}

// ListDepth returns the indentation depth of a list. The depth is the
// trailing number of the second class name ("lst-kix_abc-2" gives 2).
// Ordered lists render one level shallower than unordered lists at the same
// logical depth, so they count one extra.
func ListDepth(n *Node) int {
	class, _ := n.Attr("class")
	fields := strings.Split(class, " ")
	if len(fields) < 2 {
		return UnknownDepth
	}

	parts := strings.Split(fields[1], "-")
	suffix := strings.TrimSpace(parts[len(parts)-1])

	depth := 0
	if suffix != "" {
		d, err := strconv.Atoi(suffix)
		if err != nil || d < 0 {
			return UnknownDepth
		}
		depth = d
	}

	if n.Tag() == "ol" {
		depth++
	}
	return depth
}

// isHeading reports whether n is an h1-h9 heading.
func isHeading(n *Node) bool {
	tag := n.Tag()
	return len(tag) == 2 && tag[0] == 'h' && tag[1] >= '0' && tag[1] <= '9'
}

// isList reports whether n is an ordered or unordered list.
func isList(n *Node) bool {
	return n.Tag() == "ul" || n.Tag() == "ol"
}
