// Package pdf provides PDF page text extraction.
//
// We use the ledongthuc/pdf library for decoding. It's a pure Go
// implementation — no CGO or external dependencies required.
//
// Go Pattern: The extractor is configured through an explicit Config value
// passed to NewExtractor. Nothing is set up globally at package load, so two
// uploads in flight never share decoder state.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrInvalidHeader is returned when the buffer doesn't start with "%PDF-".
var ErrInvalidHeader = errors.New("missing %PDF- header")

// ErrTooManyPages is returned when a document exceeds Config.MaxPages.
var ErrTooManyPages = errors.New("document exceeds page limit")

// Config holds decoder settings for an Extractor.
type Config struct {
	// StrictValidation runs a pdfcpu structural validation pass before decoding.
	StrictValidation bool

	// MaxPages rejects documents with more pages than this (0 = unlimited).
	MaxPages int
}

// Extractor turns a PDF byte buffer into ordered per-page text.
type Extractor struct {
	config Config
}

// NewExtractor creates an Extractor with the given configuration.
func NewExtractor(config Config) *Extractor {
	return &Extractor{config: config}
}

// Extract decodes data and returns one string per page, page 1 first.
//
// Every text-showing operator in a page's content stream yields one fragment;
// fragments are joined with a single space in the order the decoder reports
// them. There is no layout reconstruction, so multi-column pages may come out
// interleaved.
//
// Inline images (BI ... ID ... EI) are not skipped by the decoder's lexer. A
// binary payload containing '(' swallows the rest of the stream, so text drawn
// after such an image on the same page is lost and the page can come back "".
//
// A malformed buffer fails with *DecodeError and no pages. A page without
// text (e.g. image-only) contributes "". If ctx is cancelled between pages,
// ctx.Err() is returned and the partial output is dropped.
func (e *Extractor) Extract(ctx context.Context, data []byte) (pages []string, err error) {
	// The decoder panics on some malformed inputs instead of returning errors.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = &DecodeError{Op: "decode", Err: fmt.Errorf("%v", r)}
		}
	}()

	if !ValidatePDF(data) {
		return nil, &DecodeError{Op: "header", Err: ErrInvalidHeader}
	}

	if e.config.StrictValidation {
		if err := validateStructure(data); err != nil {
			return nil, &DecodeError{Op: "validate", Err: err}
		}
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &DecodeError{Op: "open", Err: err}
	}

	pageCount := reader.NumPage()
	if e.config.MaxPages > 0 && pageCount > e.config.MaxPages {
		return nil, &DecodeError{
			Op:  "open",
			Err: fmt.Errorf("%w: %d pages, limit %d", ErrTooManyPages, pageCount, e.config.MaxPages),
		}
	}

	pages = make([]string, 0, pageCount)
	for i := 1; i <= pageCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, err := pageText(reader.Page(i))
		if err != nil {
			return nil, &DecodeError{Op: fmt.Sprintf("page %d", i), Err: err}
		}
		pages = append(pages, text)
	}

	return pages, nil
}

// pageText interprets the page's content streams and joins the text
// fragments with single spaces.
func pageText(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("content stream: %v", r)
		}
	}()

	if page.V.IsNull() {
		return "", nil
	}

	contents := page.V.Key("Contents")
	if contents.IsNull() {
		return "", nil
	}

	encoders := make(map[string]pdf.TextEncoding)
	for _, name := range page.Fonts() {
		encoders[name] = page.Font(name).Encoder()
	}

	var fragments []string
	collect := func(strm pdf.Value) {
		var enc pdf.TextEncoding
		decode := func(raw string) string {
			if enc == nil {
				return raw
			}
			return enc.Decode(raw)
		}

		pdf.Interpret(strm, func(stk *pdf.Stack, op string) {
			n := stk.Len()
			args := make([]pdf.Value, n)
			for i := n - 1; i >= 0; i-- {
				args[i] = stk.Pop()
			}

			switch op {
			case "Tf":
				if n < 2 {
					return
				}
				enc = encoders[args[0].Name()]
			case "Tj", "'", "\"":
				// The string is always the last operand.
				if n < 1 {
					return
				}
				fragments = append(fragments, decode(args[n-1].RawString()))
			case "TJ":
				if n < 1 {
					return
				}
				var b strings.Builder
				arr := args[0]
				for j := 0; j < arr.Len(); j++ {
					if x := arr.Index(j); x.Kind() == pdf.String {
						b.WriteString(decode(x.RawString()))
					}
				}
				fragments = append(fragments, b.String())
			}
		})
	}

	// Contents is either a single stream or an array of streams.
	if contents.Kind() == pdf.Array {
		for i := 0; i < contents.Len(); i++ {
			collect(contents.Index(i))
		}
	} else {
		collect(contents)
	}

	return strings.Join(fragments, " "), nil
}

// ValidatePDF checks if the data looks like a valid PDF by checking the magic bytes.
func ValidatePDF(data []byte) bool {
	// PDF files start with "%PDF-"
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}
