package formatter

import (
	"fmt"

	"github.com/futig/blog-generator/internal/entity"
)

const (
	baseTitle      = "Generated Blog"
	baseFileName   = "generated-blog"
	imageAltText   = "Generated Visual"
	summaryTitle   = "Summary"
	sentimentTitle = "Sentiment"
	categoryTitle  = "Category"
	imageTitle     = "Image"
)

type Formatter interface {
	Format(blog *entity.BlogResult) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(format entity.ExportFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatHTML:
		return NewHTMLFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: %s", entity.ErrUnsupportedFormat, format)
	}
}

// Export renders blog with the formatter for format.
func (f *Factory) Export(format entity.ExportFormat, blog *entity.BlogResult) (*entity.ExportedDocument, error) {
	fm, err := f.Create(format)
	if err != nil {
		return nil, err
	}

	content, err := fm.Format(blog)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", format, err)
	}

	return &entity.ExportedDocument{
		Content:     content,
		ContentType: fm.ContentType(),
		FileName:    baseFileName + fm.FileExtension(),
	}, nil
}

// section is one titled block of the exported document, in display order.
type section struct {
	title string
	body  string
}

func sections(blog *entity.BlogResult) []section {
	return []section{
		{title: summaryTitle, body: blog.Summary},
		{title: sentimentTitle, body: blog.Sentiment},
		{title: categoryTitle, body: blog.Category},
	}
}
