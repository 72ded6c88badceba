// Package testutil builds small, well-formed PDF documents in memory for tests.
//
// The documents are minimal but real: correct xref offsets, one Helvetica
// font with WinAnsiEncoding, and either one Tj operator per text fragment or
// caller-supplied content streams. That's enough for the decoder to walk
// pages the same way it walks uploads.
package testutil

import (
	"bytes"
	"fmt"
	"strings"
)

// BuildPDF returns a PDF with one page per argument. Each string in a page
// becomes its own Tj fragment. A page with no fragments gets no content
// stream at all, which is how image-only pages look to a text extractor.
func BuildPDF(pages ...[]string) []byte {
	streams := make([][]string, len(pages))
	for i, fragments := range pages {
		if len(fragments) > 0 {
			streams[i] = []string{textContent(fragments)}
		}
	}
	return BuildPDFContent(streams...)
}

// BuildPDFContent returns a PDF with one page per argument, each page given
// as raw content streams written byte for byte. The font resource is /F1.
// A single stream is referenced directly; two or more become a /Contents
// array. A page with no streams has no /Contents.
func BuildPDFContent(pages ...[]string) []byte {
	// Objects 1-3 are fixed: catalog, page tree, font.
	// Each page then takes a page object plus its content streams.
	var objects []string
	objects = append(objects, "<< /Type /Catalog /Pages 2 0 R >>")
	objects = append(objects, "") // page tree, filled in below
	objects = append(objects, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	var kids []string
	for _, streams := range pages {
		pageNum := len(objects) + 1
		kids = append(kids, fmt.Sprintf("%d 0 R", pageNum))

		var refs []string
		for i := range streams {
			refs = append(refs, fmt.Sprintf("%d 0 R", pageNum+1+i))
		}

		switch len(refs) {
		case 0:
			objects = append(objects, pageObject(""))
		case 1:
			objects = append(objects, pageObject(" /Contents "+refs[0]))
		default:
			objects = append(objects, pageObject(" /Contents ["+strings.Join(refs, " ")+"]"))
		}
		for _, body := range streams {
			objects = append(objects, streamObject(body))
		}
	}

	objects[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages))

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefOffset)

	return buf.Bytes()
}

// BuildTextPDF is a shortcut for a document where every page is a single fragment.
func BuildTextPDF(pages ...string) []byte {
	frags := make([][]string, len(pages))
	for i, p := range pages {
		if p != "" {
			frags[i] = []string{p}
		}
	}
	return BuildPDF(frags...)
}

func pageObject(contents string) string {
	return "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] " +
		"/Resources << /Font << /F1 3 0 R >> >>" + contents + " >>"
}

// textContent lays out one Tj line per fragment inside a single text object.
func textContent(fragments []string) string {
	var body strings.Builder
	body.WriteString("BT\n/F1 12 Tf\n72 720 Td\n")
	for i, f := range fragments {
		if i > 0 {
			body.WriteString("0 -14 Td\n")
		}
		fmt.Fprintf(&body, "(%s) Tj\n", escape(f))
	}
	body.WriteString("ET")
	return body.String()
}

func streamObject(body string) string {
	return fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(body), body)
}

// escape quotes the characters that are special inside a PDF literal string.
func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
