package formatter

import (
	"bytes"

	"github.com/futig/blog-generator/internal/entity"
	"github.com/yuin/goldmark"
)

const (
	htmlContentType   = "text/html; charset=utf-8"
	htmlFileExtension = ".html"
)

// HTMLFormatter renders the markdown export through goldmark. Raw HTML in
// the generated text is not passed through.
type HTMLFormatter struct {
	md       goldmark.Markdown
	markdown *MarkdownFormatter
}

func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{
		md:       goldmark.New(),
		markdown: NewMarkdownFormatter(),
	}
}

func (hf *HTMLFormatter) Format(blog *entity.BlogResult) ([]byte, error) {
	src, err := hf.markdown.Format(blog)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>" + baseTitle + "</title></head><body>\n")
	if err := hf.md.Convert(src, &buf); err != nil {
		return nil, err
	}
	buf.WriteString("</body></html>\n")
	return buf.Bytes(), nil
}

func (hf *HTMLFormatter) ContentType() string {
	return htmlContentType
}

func (hf *HTMLFormatter) FileExtension() string {
	return htmlFileExtension
}
