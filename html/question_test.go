package html_test

import (
	"testing"

	"github.com/fwojciec/qalog"
	"github.com/fwojciec/qalog/html"
	"github.com/stretchr/testify/assert"
)

func TestIsQuestion(t *testing.T) {
	t.Parallel()

	t.Run("accepts a bold asker followed by a colon", func(t *testing.T) {
		t.Parallel()

		n := parseFirst(t, `<ul class="c2 lst-kix_a-0"><li><span class="c9">Alice</span><span>: Hello <br>world</span></li></ul>`)

		assert.True(t, html.IsQuestion(n, "c9"))
	})

	t.Run("accepts a colon followed by a newline", func(t *testing.T) {
		t.Parallel()

		n := parseFirst(t, `<ul><li><span class="c9">Alice</span><span>:<br>Hello</span></li></ul>`)

		assert.False(t, html.IsQuestion(n, "c9"), "text content carries no newline for <br>")

		n = parseFirst(t, "<ul><li><span class=\"c9\">Alice</span><span>:\nHello</span></li></ul>")

		assert.True(t, html.IsQuestion(n, "c9"))
	})

	t.Run("accepts a colon split across spans", func(t *testing.T) {
		t.Parallel()

		n := parseFirst(t, `<ul><li><span class="c9">Bob</span><span>:</span><span> </span><span>What?</span></li></ul>`)

		assert.True(t, html.IsQuestion(n, "c9"))
	})

	t.Run("accepts a second item as context", func(t *testing.T) {
		t.Parallel()

		n := parseFirst(t, `<ul><li><span class="c9">Bob</span><span>: Why?</span></li><li><span>quoted</span></li></ul>`)

		assert.True(t, html.IsQuestion(n, "c9"))
	})

	t.Run("rejects a non-bold first span", func(t *testing.T) {
		t.Parallel()

		n := parseFirst(t, `<ul><li><span class="c3">Alice</span><span>: Hello</span></li></ul>`)

		assert.False(t, html.IsQuestion(n, "c9"))
	})

	t.Run("rejects a first span without class", func(t *testing.T) {
		t.Parallel()

		n := parseFirst(t, `<ul><li><span>an answer</span></li></ul>`)

		assert.False(t, html.IsQuestion(n, "c9"))
	})

	t.Run("rejects more than two items", func(t *testing.T) {
		t.Parallel()

		n := parseFirst(t, `<ul><li><span class="c9">A</span><span>: q</span></li><li>b</li><li>c</li></ul>`)

		assert.False(t, html.IsQuestion(n, "c9"))
	})

	t.Run("rejects text without the colon separator", func(t *testing.T) {
		t.Parallel()

		n := parseFirst(t, `<ul><li><span class="c9">Alice</span><span> said hello</span></li></ul>`)

		assert.False(t, html.IsQuestion(n, "c9"))
	})

	t.Run("rejects an empty list", func(t *testing.T) {
		t.Parallel()

		assert.False(t, html.IsQuestion(html.NewElement("ul", nil), "c9"))
	})

	t.Run("rejects a list whose first child is not an item", func(t *testing.T) {
		t.Parallel()

		n := html.NewElement("ul", nil, html.NewElement("p", nil, html.Text("x")))

		assert.False(t, html.IsQuestion(n, "c9"))
	})
}

func TestConvertQuestion(t *testing.T) {
	t.Parallel()

	t.Run("splits asker and query", func(t *testing.T) {
		t.Parallel()

		n := parseFirst(t, `<ul class="c2 lst-kix_a-0"><li><span class="c9">Alice</span><span>: Hello <br>world</span></li></ul>`)

		q := html.ConvertQuestion(n)

		assert.Equal(t, qalog.Question{Asker: "Alice", Query: "Hello \nworld", Attachments: []string{}}, q)
	})

	t.Run("restores a separate colon fragment", func(t *testing.T) {
		t.Parallel()

		n := parseFirst(t, `<ul><li><span class="c9">Bob</span><span>:</span><span> </span><span>What is this?</span></li></ul>`)

		q := html.ConvertQuestion(n)

		assert.Equal(t, "Bob", q.Asker)
		assert.Equal(t, "What is this?", q.Query)
		assert.Empty(t, q.Attachments)
	})

	t.Run("restores a two-character colon fragment", func(t *testing.T) {
		t.Parallel()

		n := parseFirst(t, `<ul><li><span class="c9">Bob</span><span>: </span><span>Where?</span></li></ul>`)

		q := html.ConvertQuestion(n)

		assert.Equal(t, "Where?", q.Query)
	})

	t.Run("moves trailing images to attachments", func(t *testing.T) {
		t.Parallel()

		n := parseFirst(t, `<ul><li><span class="c9">Cara</span><span>: Look</span><span><img src="images/image1.png"></span><span><img src="images/image2.png"></span></li></ul>`)

		q := html.ConvertQuestion(n)

		assert.Equal(t, "Look", q.Query)
		assert.Equal(t, []string{"images/image1.png", "images/image2.png"}, q.Attachments)
	})

	t.Run("moves leading images behind the text", func(t *testing.T) {
		t.Parallel()

		n := parseFirst(t, `<ul><li><span class="c9">Dan</span><span>:</span><span> </span><span><img src="images/image3.png"></span><span>Caption text</span></li></ul>`)

		q := html.ConvertQuestion(n)

		assert.Equal(t, "Caption text", q.Query)
		assert.Equal(t, []string{"images/image3.png"}, q.Attachments)
	})

	t.Run("keeps the query empty when only images follow", func(t *testing.T) {
		t.Parallel()

		n := parseFirst(t, `<ul><li><span class="c9">Eve</span><span>: </span><span><img src="images/image4.png"></span></li></ul>`)

		q := html.ConvertQuestion(n)

		assert.Empty(t, q.Query)
		assert.Equal(t, []string{"images/image4.png"}, q.Attachments)
	})

	t.Run("reads the second item as context", func(t *testing.T) {
		t.Parallel()

		n := parseFirst(t, `<ul><li><span class="c9">Bob</span><span>: Why?</span></li><li><span>It’s quoted</span></li></ul>`)

		q := html.ConvertQuestion(n)

		assert.Equal(t, "Why?", q.Query)
		assert.Equal(t, "It's quoted", q.Context)
	})
}
