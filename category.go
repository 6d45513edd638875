package qalog

import "regexp"

// imageNameRe matches image references produced by the document export.
var imageNameRe = regexp.MustCompile(`images/(image\d+\.(?:png|jpg|gif))`)

// Category is a top-level section of a transcript, started by a heading.
type Category struct {
	Header    string `json:"header"`
	Questions []*Ask `json:"questions"`
}

// NewCategory returns an empty category with the given header.
func NewCategory(header string) *Category {
	return &Category{Header: header, Questions: []*Ask{}}
}

// LastAsk returns the most recent top-level ask, or nil if there is none.
func (c *Category) LastAsk() *Ask {
	if len(c.Questions) == 0 {
		return nil
	}
	return c.Questions[len(c.Questions)-1]
}

// Ask is one question node with its answers, self-replies and nested sub-asks.
//
// Index records the position of the ask among its siblings. Answers,
// self-replies and sub-asks share a single ordinal sequence on their parent.
type Ask struct {
	Question    Question `json:"question"`
	Answers     []string `json:"answers"`
	SubAsks     []*Ask   `json:"subAsks"`
	SelfReplies []Reply  `json:"selfReplies"`
	Index       int      `json:"index"`
}

// NewAsk returns an ask for q at the given sibling index.
func NewAsk(q Question, index int) *Ask {
	if q.Attachments == nil {
		q.Attachments = []string{}
	}
	return &Ask{
		Question:    q,
		Answers:     []string{},
		SubAsks:     []*Ask{},
		SelfReplies: []Reply{},
		Index:       index,
	}
}

// NextIndex returns the ordinal the next child of a will receive.
func (a *Ask) NextIndex() int {
	return len(a.Answers) + len(a.SelfReplies) + len(a.SubAsks)
}

// LastSubAsk returns the most recent sub-ask, or nil if there is none.
func (a *Ask) LastSubAsk() *Ask {
	if len(a.SubAsks) == 0 {
		return nil
	}
	return a.SubAsks[len(a.SubAsks)-1]
}

// AddSubAsk appends a sub-ask for q, indexed after every existing child.
func (a *Ask) AddSubAsk(q Question) *Ask {
	sub := NewAsk(q, a.NextIndex())
	a.SubAsks = append(a.SubAsks, sub)
	return sub
}

// AddSelfReplies appends contents as self-replies, continuing the shared
// ordinal sequence.
func (a *Ask) AddSelfReplies(contents ...string) {
	ind := a.NextIndex()
	for _, c := range contents {
		a.SelfReplies = append(a.SelfReplies, Reply{Index: ind, Content: c})
		ind++
	}
}

// Question is the opening block of an ask.
type Question struct {
	Asker       string   `json:"asker"`
	Query       string   `json:"query"`
	Attachments []string `json:"attachments"`
	Context     string   `json:"context,omitempty"`
}

// Reply is an indexed follow-up remark by the original asker.
type Reply struct {
	Index   int    `json:"index"`
	Content string `json:"content"`
}

// ResolveAncestor descends from base into the most recent sub-ask
// depth/2 - 1 times. Each two units of list indentation map to one level of
// question nesting. The walk stays put once a level has no sub-asks, so it
// never descends past the deepest existing ask.
//
// Given the tree
//
//	ask_0_0
//	+- ask_1_0
//	|  `- ask_2_0
//	`- ask_1_1
//	   +- ask_2_1
//	   `- ask_2_2
//
// depth 4 resolves to ask_1_1, depth 6 to ask_2_2, and depth 8 to ask_2_2 too.
func ResolveAncestor(base *Ask, depth int) *Ask {
	steps := floorDiv(depth, 2) - 1
	for n := 0; n < steps; n++ {
		sub := base.LastSubAsk()
		if sub == nil {
			break
		}
		base = sub
	}
	return base
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Stats summarises an extracted tree.
type Stats struct {
	Categories  int
	Asks        int
	Answers     int
	SelfReplies int
}

// CountTree walks categories and counts every node kind.
func CountTree(categories []*Category) Stats {
	var s Stats
	var visit func(a *Ask)
	visit = func(a *Ask) {
		s.Asks++
		s.Answers += len(a.Answers)
		s.SelfReplies += len(a.SelfReplies)
		for _, sub := range a.SubAsks {
			visit(sub)
		}
	}
	for _, c := range categories {
		s.Categories++
		for _, a := range c.Questions {
			visit(a)
		}
	}
	return s
}

// ImageNames returns the file names of every image referenced anywhere in
// the tree, deduplicated, in document order.
func ImageNames(categories []*Category) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(s string) {
		for _, m := range imageNameRe.FindAllStringSubmatch(s, -1) {
			if !seen[m[1]] {
				seen[m[1]] = true
				out = append(out, m[1])
			}
		}
	}
	var visit func(a *Ask)
	visit = func(a *Ask) {
		add(a.Question.Query)
		add(a.Question.Context)
		for _, s := range a.Question.Attachments {
			add(s)
		}
		for _, s := range a.Answers {
			add(s)
		}
		for _, r := range a.SelfReplies {
			add(r.Content)
		}
		for _, sub := range a.SubAsks {
			visit(sub)
		}
	}
	for _, c := range categories {
		add(c.Header)
		for _, a := range c.Questions {
			visit(a)
		}
	}
	return out
}
