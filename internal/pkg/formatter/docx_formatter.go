package formatter

import (
	"bytes"

	"github.com/futig/blog-generator/internal/entity"
	"github.com/unidoc/unioffice/document"
)

const (
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	docxFileExtension = ".docx"
)

type DOCXFormatter struct{}

func NewDOCXFormatter() *DOCXFormatter {
	return &DOCXFormatter{}
}

func (df *DOCXFormatter) Format(blog *entity.BlogResult) ([]byte, error) {
	doc := document.New()
	defer doc.Close()

	addHeading(doc, "Heading1", baseTitle)
	addText(doc, blog.GeneratedText)

	for _, s := range sections(blog) {
		addHeading(doc, "Heading2", s.title)
		addText(doc, s.body)
	}

	addHeading(doc, "Heading2", imageTitle)
	addText(doc, blog.ImageURL)

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addHeading(doc *document.Document, style, text string) {
	par := doc.AddParagraph()
	par.SetStyle(style)
	par.AddRun().AddText(text)
}

func addText(doc *document.Document, text string) {
	doc.AddParagraph().AddRun().AddText(text)
}

func (df *DOCXFormatter) ContentType() string {
	return docxContentType
}

func (df *DOCXFormatter) FileExtension() string {
	return docxFileExtension
}
