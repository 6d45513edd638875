// Package markdown renders extracted transcripts as markdown documents
// using nao1215/markdown.
package markdown

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fwojciec/qalog"
	"github.com/nao1215/markdown"
)

// Ensure Renderer implements qalog.Renderer at compile time.
var _ qalog.Renderer = (*Renderer)(nil)

// Renderer writes a category tree as markdown. Each category becomes a
// level one heading, each top-level ask a level two heading and every
// nested ask a level three heading numbered by its position in the thread.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes categories to w.
func (r *Renderer) Render(w io.Writer, categories []*qalog.Category) error {
	md := markdown.NewMarkdown(w)

	if len(categories) > 0 {
		rows := make([][]string, 0, len(categories))
		for _, c := range categories {
			stats := qalog.CountTree([]*qalog.Category{c})
			rows = append(rows, []string{c.Header, strconv.Itoa(len(c.Questions)), strconv.Itoa(stats.Asks)})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Category", "Questions", "Asks"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	for _, c := range categories {
		md.H1(c.Header)
		md.PlainText("")
		for i, ask := range c.Questions {
			writeAsk(md, ask, strconv.Itoa(i+1), true)
		}
	}

	return md.Build()
}

func writeAsk(md *markdown.Markdown, ask *qalog.Ask, number string, top bool) {
	title := fmt.Sprintf("%s %s: %s", number, ask.Question.Asker, ask.Question.Query)
	if top {
		md.H2(title)
	} else {
		md.H3(title)
	}
	md.PlainText("")

	if ask.Question.Context != "" {
		md.Blockquote(ask.Question.Context)
		md.PlainText("")
	}
	if len(ask.Question.Attachments) > 0 {
		md.PlainText("Attachments:")
		md.BulletList(ask.Question.Attachments...)
		md.PlainText("")
	}
	if len(ask.Answers) > 0 {
		md.BulletList(ask.Answers...)
		md.PlainText("")
	}
	if len(ask.SelfReplies) > 0 {
		replies := make([]string, 0, len(ask.SelfReplies))
		for _, r := range ask.SelfReplies {
			replies = append(replies, ask.Question.Asker+": "+r.Content)
		}
		md.BulletList(replies...)
		md.PlainText("")
	}

	for i, sub := range ask.SubAsks {
		writeAsk(md, sub, number+"."+strconv.Itoa(i+1), false)
	}
}
