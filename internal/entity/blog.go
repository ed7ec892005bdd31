package entity

// GenerateBlogRequest is the body sent to the generation endpoint
type GenerateBlogRequest struct {
	Prompt string `json:"prompt"`
}

// BlogResult is the five-field response consumed verbatim for display
type BlogResult struct {
	GeneratedText string `json:"generated_text"`
	Summary       string `json:"summary"`
	Sentiment     string `json:"sentiment"`
	Category      string `json:"category"`
	ImageURL      string `json:"image_url"`
}

// Contributor is one entry of the credits panel
type Contributor struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// ErrorResponse is the JSON error body of the HTTP API
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type ExportFormat string

const (
	FormatMarkdown ExportFormat = "md"
	FormatHTML     ExportFormat = "html"
	FormatPDF      ExportFormat = "pdf"
	FormatDOCX     ExportFormat = "docx"
)

// ExportedDocument is a rendered BlogResult ready to be downloaded
type ExportedDocument struct {
	Content     []byte
	ContentType string
	FileName    string
}
