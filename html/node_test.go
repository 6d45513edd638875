package html_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/qalog"
	"github.com/fwojciec/qalog/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xhtml "golang.org/x/net/html"
)

// parseBody parses a document with the given style and body markup and
// returns its <html> and <body> nodes.
func parseBody(t *testing.T, style, body string) (*html.Node, *html.Node) {
	t.Helper()

	src := "<html><head><style>" + style + "</style></head><body>" + body + "</body></html>"
	root, err := html.Parse(strings.NewReader(src))
	require.NoError(t, err)

	elems := root.Elements()
	require.Len(t, elems, 2)
	return root, elems[1]
}

// parseFirst returns the first element of the parsed body markup.
func parseFirst(t *testing.T, body string) *html.Node {
	t.Helper()

	_, b := parseBody(t, "", body)
	first := b.FirstElement()
	require.NotNil(t, first)
	return first
}

func TestNewNode(t *testing.T) {
	t.Parallel()

	t.Run("rejects nil", func(t *testing.T) {
		t.Parallel()

		_, err := html.NewNode(nil)

		require.Error(t, err)
		assert.Equal(t, qalog.EINVALID, qalog.ErrorCode(err))
	})

	t.Run("rejects text nodes", func(t *testing.T) {
		t.Parallel()

		_, err := html.NewNode(&xhtml.Node{Type: xhtml.TextNode, Data: "text"})

		require.Error(t, err)
		assert.Equal(t, qalog.EINVALID, qalog.ErrorCode(err))
	})

	t.Run("lowercases tag and keeps attributes", func(t *testing.T) {
		t.Parallel()

		n, err := html.NewNode(&xhtml.Node{
			Type: xhtml.ElementNode,
			Data: "UL",
			Attr: []xhtml.Attribute{{Key: "class", Val: "c1 lst-kix_a-2"}, {Key: "start", Val: "3"}},
		})

		require.NoError(t, err)
		assert.Equal(t, "ul", n.Tag())
		class, ok := n.Attr("class")
		assert.True(t, ok)
		assert.Equal(t, "c1 lst-kix_a-2", class)
		_, ok = n.Attr("missing")
		assert.False(t, ok)
	})

	t.Run("replaces non-breaking spaces in text", func(t *testing.T) {
		t.Parallel()

		n := parseFirst(t, "<p>a&nbsp;b c</p>")

		assert.Equal(t, "a b c", n.Text())
	})
}

func TestNode_Elements(t *testing.T) {
	t.Parallel()

	n := parseFirst(t, "<div>text<span>one</span> more <b>two</b></div>")

	elems := n.Elements()
	require.Len(t, elems, 2)
	assert.Equal(t, "span", elems[0].Tag())
	assert.Equal(t, "b", elems[1].Tag())
	assert.Equal(t, 2, n.ElementCount())
	assert.Equal(t, "span", n.FirstElement().Tag())
	assert.Len(t, n.Children(), 4)
}

func TestNode_FirstElement_None(t *testing.T) {
	t.Parallel()

	n := parseFirst(t, "<p>only text</p>")

	assert.Nil(t, n.FirstElement())
	assert.Equal(t, 0, n.ElementCount())
}

func TestNode_Text(t *testing.T) {
	t.Parallel()

	n := parseFirst(t, "<div>a<span>b<i>c</i></span>d</div>")

	assert.Equal(t, "abcd", n.Text())
}

func TestNode_InnerHTML(t *testing.T) {
	t.Parallel()

	t.Run("escapes markup characters in text", func(t *testing.T) {
		t.Parallel()

		n := parseFirst(t, "<p>1 &lt; 2 &amp;&amp; 3 &gt; 2</p>")

		assert.Equal(t, "1 &lt; 2 &amp;&amp; 3 &gt; 2", n.InnerHTML())
	})

	t.Run("serializes nested elements", func(t *testing.T) {
		t.Parallel()

		n := parseFirst(t, `<p><span class="c1">Hi<br>there</span></p>`)

		assert.Equal(t, `<span class="c1">Hi<br>there</span>`, n.InnerHTML())
	})
}

func TestNode_OuterHTML(t *testing.T) {
	t.Parallel()

	t.Run("escapes quotes in attribute values", func(t *testing.T) {
		t.Parallel()

		n := html.NewElement("a", []html.Attr{{Name: "title", Value: `say "hi" & go`}}, html.Text("x"))

		assert.Equal(t, `<a title="say &quot;hi&quot; &amp; go">x</a>`, n.OuterHTML())
	})

	t.Run("does not close empty void elements", func(t *testing.T) {
		t.Parallel()

		for tag := range html.VoidTags {
			n := html.NewElement(tag, nil)
			assert.Equal(t, "<"+tag+">", n.OuterHTML())
		}
	})

	t.Run("keeps attributes on void elements", func(t *testing.T) {
		t.Parallel()

		n := html.NewElement("IMG", []html.Attr{{Name: "src", Value: "images/image1.png"}})

		assert.Equal(t, `<img src="images/image1.png">`, n.OuterHTML())
	})

	t.Run("closes empty non-void elements", func(t *testing.T) {
		t.Parallel()

		for _, tag := range []string{"span", "p", "li", "ul", "a"} {
			n := html.NewElement(tag, nil)
			assert.Equal(t, "<"+tag+"></"+tag+">", n.OuterHTML())
		}
	})

	t.Run("closes void elements that carry content", func(t *testing.T) {
		t.Parallel()

		n := html.NewElement("br", nil, html.Text("x"))

		assert.Equal(t, "<br>x</br>", n.OuterHTML())
	})

	t.Run("deduplicates attribute names", func(t *testing.T) {
		t.Parallel()

		n := html.NewElement("span", []html.Attr{{Name: "class", Value: "a"}, {Name: "class", Value: "b"}})

		assert.Equal(t, `<span class="b"></span>`, n.OuterHTML())
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	root, err := html.Parse(strings.NewReader("<p>hi</p>"))

	require.NoError(t, err)
	assert.Equal(t, "html", root.Tag())
	elems := root.Elements()
	require.Len(t, elems, 2)
	assert.Equal(t, "head", elems[0].Tag())
	assert.Equal(t, "body", elems[1].Tag())
	assert.Equal(t, "hi", elems[1].Text())
}
