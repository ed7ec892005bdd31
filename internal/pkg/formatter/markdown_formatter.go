package formatter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/futig/blog-generator/internal/entity"
)

// destinationEscaper keeps a URL inside an angle-bracket link destination.
var destinationEscaper = strings.NewReplacer(
	"<", "%3C",
	">", "%3E",
	"\n", "%0A",
	"\r", "%0D",
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(blog *entity.BlogResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n%s\n", baseTitle, blog.GeneratedText)
	for _, s := range sections(blog) {
		fmt.Fprintf(&buf, "\n## %s\n\n%s\n", s.title, s.body)
	}
	fmt.Fprintf(&buf, "\n## %s\n\n![%s](<%s>)\n", imageTitle, imageAltText, destinationEscaper.Replace(blog.ImageURL))
	return buf.Bytes(), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
