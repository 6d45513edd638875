package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/qalog"
	"github.com/fwojciec/qalog/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where ResultWriter is expected
	var _ qalog.ResultWriter = &mock.ResultWriter{}
}

func TestResultWriter_WriteResult(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteResultFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *qalog.Document
		w := &mock.ResultWriter{
			WriteResultFn: func(_ context.Context, doc *qalog.Document, _ []*qalog.Category) (*qalog.Conversion, error) {
				calledWith = doc
				return &qalog.Conversion{Document: doc.Name}, nil
			},
		}

		doc := &qalog.Document{Name: "Places", Dir: "files/documents/Places"}

		conv, err := w.WriteResult(context.Background(), doc, nil)

		require.NoError(t, err)
		assert.Equal(t, doc, calledWith)
		assert.Equal(t, "Places", conv.Document)
	})
}
