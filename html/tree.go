package html

import "github.com/fwojciec/qalog"

// Options configures a walk.
type Options struct {
	// Document names the document being walked. It selects
	// document-specific repairs.
	Document string

	// Permissive makes the walk create placeholder categories and asks
	// instead of failing when a list shows up before any heading or
	// top-level question.
	Permissive bool
}

// skipRange is an inclusive range of body element indexes.
type skipRange struct {
	from, to int
}

// malformed lists body ranges known to be broken, by document name.
// Unordered lists inside a range are ignored.
var malformed = map[string]skipRange{
	"Miscellaneous": {from: 352, to: 363},
}

// Build extracts the category tree from a document's <html> element.
func Build(root *Node, opts Options) ([]*qalog.Category, error) {
	bold, err := FindBoldClass(root)
	if err != nil {
		return nil, err
	}

	body := findElement(root, "body")
	if body == nil {
		return nil, qalog.Errorf(qalog.EINVALID, "could not find the body element")
	}

	return Walk(body, bold, opts)
}

// Walk folds the child elements of body into categories. boldClass is the
// CSS class marking askers' names.
func Walk(body *Node, boldClass string, opts Options) ([]*qalog.Category, error) {
	w := &walker{
		bold:       boldClass,
		permissive: opts.Permissive,
		categories: []*qalog.Category{},
	}

	skip, hasSkip := malformed[opts.Document]
	for i, e := range body.Elements() {
		if hasSkip && e.Tag() == "ul" && i >= skip.from && i <= skip.to {
			continue
		}
		if err := w.visit(i, e); err != nil {
			return nil, err
		}
	}
	return w.categories, nil
}

// walker is the accumulator of one walk: the categories built so far and
// whether the current subtree is shifted. A shifted subtree swaps which
// depth parity holds answers, compensating for exports that indent a
// nested question one level deeper than its siblings.
type walker struct {
	bold       string
	permissive bool

	categories []*qalog.Category
	shifted    bool
}

// visit runs one step, turning a panic from an unexpected block shape into
// an error for this document.
func (w *walker) visit(i int, e *Node) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = qalog.Errorf(qalog.EINVALID, "malformed <%s> block at body index %d: %v", e.Tag(), i, r)
		}
	}()
	return w.step(e)
}

func (w *walker) step(e *Node) error {
	if isHeading(e) {
		header := qalog.Normalize(qalog.StripHTML(e.InnerHTML()), false)
		w.categories = append(w.categories, qalog.NewCategory(header))
		w.shifted = false
		return nil
	}
	if !isList(e) {
		return nil
	}

	cat, err := w.lastCategory()
	if err != nil {
		return err
	}

	depth := ListDepth(e)
	if depth == 0 {
		cat.Questions = append(cat.Questions, qalog.NewAsk(ConvertQuestion(e), len(cat.Questions)))
		w.shifted = false
		return nil
	}

	root, err := w.lastAsk(cat)
	if err != nil {
		return err
	}

	if w.answerParity(depth) {
		parent := qalog.ResolveAncestor(root, depth+1+w.shift())
		if IsQuestion(e, w.bold) {
			w.shifted = !w.shifted
			parent.AddSubAsk(ConvertQuestion(e))
			return nil
		}
		parent.Answers = append(parent.Answers, ExpandReplies(e)...)
		return nil
	}

	parent := qalog.ResolveAncestor(root, depth)
	if IsQuestion(e, w.bold) {
		parent.AddSubAsk(ConvertQuestion(e))
		return nil
	}

	replies := ExpandReplies(e)
	// At the top of a shifted subtree a depth-1 list continues the answers.
	if w.shifted && depth == 1 {
		parent.Answers = append(parent.Answers, replies...)
		return nil
	}
	parent.AddSelfReplies(replies...)
	return nil
}

// answerParity reports whether depth holds answers: odd depths normally,
// even depths inside a shifted subtree.
func (w *walker) answerParity(depth int) bool {
	if w.shifted {
		return depth%2 == 0
	}
	return depth%2 == 1
}

func (w *walker) shift() int {
	if w.shifted {
		return 1
	}
	return 0
}

func (w *walker) lastCategory() (*qalog.Category, error) {
	if n := len(w.categories); n > 0 {
		return w.categories[n-1], nil
	}
	if !w.permissive {
		return nil, qalog.Errorf(qalog.ENOTFOUND, "no categories present")
	}

	cat := qalog.NewCategory("(unknown category)")
	w.categories = append(w.categories, cat)
	return cat, nil
}

func (w *walker) lastAsk(cat *qalog.Category) (*qalog.Ask, error) {
	if ask := cat.LastAsk(); ask != nil {
		return ask, nil
	}
	if !w.permissive {
		return nil, qalog.Errorf(qalog.ENOTFOUND, "no questions found in category %q", cat.Header)
	}

	ask := qalog.NewAsk(qalog.Question{
		Asker: "(unknown asker)",
		Query: "(unknown query)",
	}, len(cat.Questions))
	cat.Questions = append(cat.Questions, ask)
	return ask, nil
}

