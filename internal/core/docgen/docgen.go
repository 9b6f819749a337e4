// Package docgen renders generated draft text into downloadable documents.
// The docx and txt renderings share one paragraph layout so both formats are
// semantically identical modulo markup.
package docgen

import (
	"strings"
	"time"

	docx "github.com/fumiama/go-docx"
)

// DraftBanner marks a document as unreviewed work product.
const DraftBanner = "*** DRAFT - REQUIRES ATTORNEY REVIEW ***"

type Options struct {
	Title    string
	Content  string
	FirmName string
	IsDraft  bool
}

// Paragraphs is the canonical ordered layout: firm name, draft banner when
// applicable, date, title, then one paragraph per non-blank content line.
func Paragraphs(opts Options, now time.Time) []string {
	firm := opts.FirmName
	if firm == "" {
		firm = "[Your Firm Name]"
	}

	out := []string{firm}
	if opts.IsDraft {
		out = append(out, DraftBanner)
	}
	out = append(out, "Date: "+now.Format("January 2, 2006"), opts.Title)

	for _, line := range strings.Split(opts.Content, "\n") {
		if line = strings.TrimRight(line, "\r"); strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// Docx builds a word-processor document from the canonical layout.
func Docx(opts Options, now time.Time) *docx.Docx {
	paras := Paragraphs(opts, now)
	w := docx.New().WithDefaultTheme()

	// firm name heading
	p := w.AddParagraph().Justification("center")
	p.AddText(paras[0]).Size("32").Bold()
	paras = paras[1:]

	if opts.IsDraft {
		p = w.AddParagraph().Justification("center")
		p.AddText(paras[0]).Size("24").Bold().Color("FF0000")
		paras = paras[1:]
	}

	// date
	w.AddParagraph().AddText(paras[0])
	paras = paras[1:]

	// title
	w.AddParagraph().AddText(paras[0]).Size("28").Bold()
	paras = paras[1:]

	for _, line := range paras {
		w.AddParagraph().AddText(line)
	}
	return w
}

// Text renders the canonical layout as plain text with underline separators.
func Text(opts Options, now time.Time) string {
	paras := Paragraphs(opts, now)

	var b strings.Builder
	b.WriteString(paras[0] + "\n")
	b.WriteString(strings.Repeat("=", len(paras[0])) + "\n\n")
	paras = paras[1:]

	if opts.IsDraft {
		b.WriteString(paras[0] + "\n\n")
		paras = paras[1:]
	}

	b.WriteString(paras[0] + "\n\n")
	paras = paras[1:]

	b.WriteString(paras[0] + "\n")
	b.WriteString(strings.Repeat("-", len(paras[0])) + "\n\n")
	paras = paras[1:]

	for _, line := range paras {
		b.WriteString(line + "\n")
	}
	return b.String()
}
