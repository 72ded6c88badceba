// generator_test.go contains end-to-end tests for the document-to-prompt pipeline.
package prompts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shimizu-Technology/study-prompts-api/internal/services/pdf"
	"github.com/Shimizu-Technology/study-prompts-api/internal/testutil"
)

// stubExtractor returns canned pages or an error.
type stubExtractor struct {
	pages []string
	err   error
}

func (s stubExtractor) Extract(ctx context.Context, data []byte) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.pages, nil
}

func newPDFGenerator() *Generator {
	return NewGenerator(pdf.NewExtractor(pdf.Config{}), Options{})
}

func TestGenerate_EndToEnd(t *testing.T) {
	doc := testutil.BuildTextPDF("The mitochondria is the powerhouse of the cell. It performs cellular respiration constantly.")

	res, err := newPDFGenerator().Generate(context.Background(), doc)
	require.NoError(t, err)

	assert.Equal(t, "The mitochondria is the powerhouse of the cell. It performs cellular respiration constantly.\n", res.Text)
	assert.Equal(t, 1, res.PageCount)
	assert.Equal(t, []string{
		`Q1: What does this mean? → "The mitochondria is the powerhouse of the cell?"`,
		`Q2: What does this mean? → "It performs cellular respiration constantly?"`,
	}, res.Prompts)
	assert.False(t, res.Empty())
}

func TestGenerate_SinglePageText(t *testing.T) {
	doc := testutil.BuildTextPDF("A short page.")

	res, err := newPDFGenerator().Generate(context.Background(), doc)
	require.NoError(t, err)

	// The page text plus its single separator, nothing else.
	assert.Equal(t, "A short page.\n", res.Text)
	assert.True(t, res.Empty(), "a short page yields no prompts")
	assert.NotNil(t, res.Prompts)
}

func TestGenerate_ZeroPages(t *testing.T) {
	res, err := newPDFGenerator().Generate(context.Background(), testutil.BuildPDF())
	require.NoError(t, err)

	assert.Equal(t, "", res.Text)
	assert.Equal(t, []string{}, res.Prompts)
	assert.Equal(t, 0, res.PageCount)
}

func TestGenerate_MultiPageJoin(t *testing.T) {
	doc := testutil.BuildTextPDF(
		"Photosynthesis converts light energy into chemical energy",
		"Chlorophyll absorbs mostly blue and red wavelengths of light.",
	)

	res, err := newPDFGenerator().Generate(context.Background(), doc)
	require.NoError(t, err)

	assert.Equal(t, 2, res.PageCount)
	// Page 1 has no terminator, so its text runs into page 2's sentence.
	require.Len(t, res.Prompts, 1)
	assert.Equal(t,
		`Q1: What does this mean? → "Photosynthesis converts light energy into chemical energy Chlorophyll absorbs mostly blue and red wavelengths of light?"`,
		res.Prompts[0])
}

func TestGenerate_InvalidHeader(t *testing.T) {
	res, err := newPDFGenerator().Generate(context.Background(), []byte("this is plain text"))

	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, pdf.IsDecodeError(err))
}

func TestGenerate_ExtractorErrorPassesThrough(t *testing.T) {
	boom := errors.New("boom")
	g := NewGenerator(stubExtractor{err: boom}, Options{})

	res, err := g.Generate(context.Background(), nil)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res)
}

func TestGenerate_CapAndOrder(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 20; i++ {
		fmt.Fprintf(&b, "This is sentence number %d in a long list. ", i)
	}
	g := NewGenerator(stubExtractor{pages: []string{b.String()}}, Options{})

	res, err := g.Generate(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, res.Prompts, 5)
	for i, p := range res.Prompts {
		assert.Equal(t, fmt.Sprintf(`Q%d: What does this mean? → "This is sentence number %d in a long list?"`, i+1, i+1), p)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	pages := []string{"Enzymes lower the activation energy of reactions. Temperature affects enzyme activity strongly! Why do enzymes denature at high heat? Short one."}
	g := NewGenerator(stubExtractor{pages: pages}, Options{})

	first, err := g.Generate(context.Background(), nil)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := g.Generate(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Len(t, first.Prompts, 3)
}

func TestGenerate_Options(t *testing.T) {
	pages := []string{"Tiny. Also tiny. Still quite small here."}

	t.Run("defaults", func(t *testing.T) {
		res, err := NewGenerator(stubExtractor{pages: pages}, Options{}).Generate(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, res.Prompts)
	})

	t.Run("lower threshold and cap", func(t *testing.T) {
		g := NewGenerator(stubExtractor{pages: pages}, Options{MinCandidateLength: 3, MaxPrompts: 2})
		res, err := g.Generate(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, []string{
			`Q1: What does this mean? → "Tiny?"`,
			`Q2: What does this mean? → "Also tiny?"`,
		}, res.Prompts)
	})
}
