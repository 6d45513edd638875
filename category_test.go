package qalog_test

import (
	"testing"

	"github.com/fwojciec/qalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func q(query string) qalog.Question {
	return qalog.Question{Asker: "A", Query: query}
}

func TestResolveAncestor(t *testing.T) {
	t.Parallel()

	ask00 := qalog.NewAsk(q("0_0"), 0)
	ask10 := ask00.AddSubAsk(q("1_0"))
	ask10.AddSubAsk(q("2_0"))
	ask11 := ask00.AddSubAsk(q("1_1"))
	ask11.AddSubAsk(q("2_1"))
	ask22 := ask11.AddSubAsk(q("2_2"))

	t.Run("descends one level per two units of depth", func(t *testing.T) {
		t.Parallel()

		assert.Same(t, ask00, qalog.ResolveAncestor(ask00, 2))
		assert.Same(t, ask00, qalog.ResolveAncestor(ask00, 3))
		assert.Same(t, ask11, qalog.ResolveAncestor(ask00, 4))
		assert.Same(t, ask11, qalog.ResolveAncestor(ask00, 5))
		assert.Same(t, ask22, qalog.ResolveAncestor(ask00, 6))
	})

	t.Run("does not descend past the deepest ask", func(t *testing.T) {
		t.Parallel()

		assert.Same(t, ask22, qalog.ResolveAncestor(ask00, 8))
		assert.Same(t, ask22, qalog.ResolveAncestor(ask00, 20))
	})

	t.Run("stays put for shallow or negative depths", func(t *testing.T) {
		t.Parallel()

		assert.Same(t, ask00, qalog.ResolveAncestor(ask00, 1))
		assert.Same(t, ask00, qalog.ResolveAncestor(ask00, 0))
		assert.Same(t, ask00, qalog.ResolveAncestor(ask00, -1))
	})
}

func TestAsk_SharedIndex(t *testing.T) {
	t.Parallel()

	ask := qalog.NewAsk(q("root"), 0)
	ask.Answers = append(ask.Answers, "first")
	ask.AddSelfReplies("thanks", "one more")
	sub := ask.AddSubAsk(q("sub"))

	assert.Equal(t, []qalog.Reply{{Index: 1, Content: "thanks"}, {Index: 2, Content: "one more"}}, ask.SelfReplies)
	assert.Equal(t, 3, sub.Index)
	assert.Equal(t, 4, ask.NextIndex())
	assert.Same(t, sub, ask.LastSubAsk())
}

func TestNewAsk_EmptyCollections(t *testing.T) {
	t.Parallel()

	ask := qalog.NewAsk(q("x"), 0)

	assert.NotNil(t, ask.Question.Attachments)
	assert.NotNil(t, ask.Answers)
	assert.NotNil(t, ask.SubAsks)
	assert.NotNil(t, ask.SelfReplies)
	assert.Nil(t, ask.LastSubAsk())
}

func TestCountTree(t *testing.T) {
	t.Parallel()

	cat := qalog.NewCategory("Cat")
	ask := qalog.NewAsk(q("root"), 0)
	ask.Answers = append(ask.Answers, "a", "b")
	ask.AddSelfReplies("c")
	sub := ask.AddSubAsk(q("sub"))
	sub.Answers = append(sub.Answers, "d")
	cat.Questions = append(cat.Questions, ask)

	stats := qalog.CountTree([]*qalog.Category{cat, qalog.NewCategory("Empty")})

	assert.Equal(t, qalog.Stats{Categories: 2, Asks: 2, Answers: 3, SelfReplies: 1}, stats)
}

func TestImageNames(t *testing.T) {
	t.Parallel()

	cat := qalog.NewCategory("Cat")
	ask := qalog.NewAsk(qalog.Question{
		Asker:       "A",
		Query:       "see",
		Attachments: []string{"images/image1.png", "images/image2.jpg"},
	}, 0)
	ask.Answers = append(ask.Answers, "images/image3.gif", "text with images/image1.png inside")
	ask.AddSelfReplies("images/image4.png")
	cat.Questions = append(cat.Questions, ask)

	names := qalog.ImageNames([]*qalog.Category{cat})

	assert.Equal(t, []string{"image1.png", "image2.jpg", "image3.gif", "image4.png"}, names)
}

func TestMarshalCategories(t *testing.T) {
	t.Parallel()

	t.Run("renders the output contract", func(t *testing.T) {
		t.Parallel()

		cat := qalog.NewCategory("Intro")
		ask := qalog.NewAsk(qalog.Question{Asker: "Alice", Query: "a < b & c"}, 0)
		ask.AddSelfReplies("ok")
		cat.Questions = append(cat.Questions, ask)

		data, err := qalog.MarshalCategories([]*qalog.Category{cat})

		require.NoError(t, err)
		want := `[
   {
      "header": "Intro",
      "questions": [
         {
            "question": {
               "asker": "Alice",
               "query": "a < b & c",
               "attachments": []
            },
            "answers": [],
            "subAsks": [],
            "selfReplies": [
               {
                  "index": 0,
                  "content": "ok"
               }
            ],
            "index": 0
         }
      ]
   }
]`
		assert.Equal(t, want, string(data))
	})

	t.Run("includes context when present", func(t *testing.T) {
		t.Parallel()

		cat := qalog.NewCategory("C")
		cat.Questions = append(cat.Questions, qalog.NewAsk(qalog.Question{Asker: "A", Query: "Q", Context: "quoted"}, 0))

		data, err := qalog.MarshalCategories([]*qalog.Category{cat})

		require.NoError(t, err)
		assert.Contains(t, string(data), `"context": "quoted"`)
	})

	t.Run("renders nil as an empty array", func(t *testing.T) {
		t.Parallel()

		data, err := qalog.MarshalCategories(nil)

		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})
}
