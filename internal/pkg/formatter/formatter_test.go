package formatter

import (
	"bytes"
	"testing"

	"github.com/futig/blog-generator/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBlog() *entity.BlogResult {
	return &entity.BlogResult{
		GeneratedText: "Data science asks questions; machine learning builds models.",
		Summary:       "Two related fields.",
		Sentiment:     "Neutral",
		Category:      "Technology",
		ImageURL:      "https://bucket.example/blog.png",
	}
}

func TestFactory_Create(t *testing.T) {
	f := NewFactory()

	tests := []struct {
		format      entity.ExportFormat
		contentType string
		ext         string
	}{
		{entity.FormatMarkdown, markdownContentType, ".md"},
		{entity.FormatHTML, htmlContentType, ".html"},
		{entity.FormatPDF, pdfContentType, ".pdf"},
		{entity.FormatDOCX, docxContentType, ".docx"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			fm, err := f.Create(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.contentType, fm.ContentType())
			assert.Equal(t, tt.ext, fm.FileExtension())
		})
	}
}

func TestFactory_UnsupportedFormat(t *testing.T) {
	_, err := NewFactory().Create("odt")
	assert.ErrorIs(t, err, entity.ErrUnsupportedFormat)

	_, err = NewFactory().Export("odt", testBlog())
	assert.ErrorIs(t, err, entity.ErrUnsupportedFormat)
}

func TestMarkdownFormatter_AllSections(t *testing.T) {
	out, err := NewMarkdownFormatter().Format(testBlog())
	require.NoError(t, err)

	md := string(out)
	assert.Contains(t, md, "# Generated Blog\n\nData science asks questions; machine learning builds models.")
	assert.Contains(t, md, "## Summary\n\nTwo related fields.")
	assert.Contains(t, md, "## Sentiment\n\nNeutral")
	assert.Contains(t, md, "## Category\n\nTechnology")
	assert.Contains(t, md, "![Generated Visual](<https://bucket.example/blog.png>)")
}

func TestHTMLFormatter_RendersMarkdown(t *testing.T) {
	blog := testBlog()
	blog.GeneratedText = "Intro <script>alert(1)</script>"

	out, err := NewHTMLFormatter().Format(blog)
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<h1>Generated Blog</h1>")
	assert.Contains(t, html, "<h2>Summary</h2>")
	assert.Contains(t, html, `<img src="https://bucket.example/blog.png" alt="Generated Visual">`)
	assert.NotContains(t, html, "<script>")
}

func TestMarkdownFormatter_ImageURLWithSpacesAndParens(t *testing.T) {
	blog := testBlog()
	blog.ImageURL = "https://bucket.example/a (1).png"

	md, err := NewMarkdownFormatter().Format(blog)
	require.NoError(t, err)
	assert.Contains(t, string(md), "![Generated Visual](<https://bucket.example/a (1).png>)\n")

	html, err := NewHTMLFormatter().Format(blog)
	require.NoError(t, err)
	assert.Contains(t, string(html), `<img src="https://bucket.example/a%20(1).png" alt="Generated Visual">`)
}

func TestPDFFormatter_ProducesPDF(t *testing.T) {
	out, err := NewPDFFormatter().Format(testBlog())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestFactory_ExportNames(t *testing.T) {
	doc, err := NewFactory().Export(entity.FormatMarkdown, testBlog())
	require.NoError(t, err)
	assert.Equal(t, "generated-blog.md", doc.FileName)
	assert.Equal(t, markdownContentType, doc.ContentType)
	assert.NotEmpty(t, doc.Content)
}
