package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/futig/blog-generator/internal/entity"
	"github.com/futig/blog-generator/internal/view"
)

const (
	// Welcome messages
	MsgWelcome = `👋 AI Blog Generator Bot

Generate engaging blog content with AI!

Send me a blog topic (e.g., Difference between Data Science and Machine Learning) and I will write the post, a summary, its sentiment, a category and a cover image.`

	MsgHelp = `🤖 Commands:

/start - Show the welcome message
/help - Show this help
/credits - Show or hide the developer credits

Any other text is used as the blog topic.`

	// Generation
	MsgGenerating      = "⏳ " + view.SubmitLabelLoading
	MsgStillGenerating = `⏳ Still generating your previous blog. I will send it as soon as it is ready.`

	// Credits
	MsgCreditsClosed = `👥 Developer credits closed.`

	// Errors
	ErrGeneric          = `❌ Something went wrong. Please try again.`
	ErrEmptyPrompt      = `✏️ Please send the blog topic as text.`
	ErrNothingToExport  = `❌ Nothing to download yet. Send a topic first.`
	ErrUnsupportedFile  = `❌ This download format is not supported.`
	ErrUnknownCommand   = `❌ Unknown command. Use /help`
	ErrInvalidSelection = `❌ Invalid selection`
)

// RenderResult formats a generated blog in the order the page shows it
func RenderResult(blog *entity.BlogResult) string {
	var sb strings.Builder
	sb.WriteString("📝 Generated Blog\n\n")
	sb.WriteString(blog.GeneratedText)
	sb.WriteString("\n\n📌 Summary\n")
	sb.WriteString(blog.Summary)
	sb.WriteString("\n\n💬 Sentiment\n")
	sb.WriteString(blog.Sentiment)
	sb.WriteString("\n\n🏷 Category\n")
	sb.WriteString(blog.Category)
	sb.WriteString("\n\n🖼 Image\n")
	sb.WriteString(blog.ImageURL)
	return sb.String()
}

// RenderCredits formats the credits roster
func RenderCredits(credits []entity.Contributor) string {
	var sb strings.Builder
	sb.WriteString("👥 Developer Credits\n")
	for _, c := range credits {
		sb.WriteString(fmt.Sprintf("\n• %s (%s)", c.Name, c.ID))
	}
	return sb.String()
}

// RenderOutcome formats a resolved view: the blog on success, the fixed
// failure message otherwise
func RenderOutcome(state view.State) string {
	if blog := state.Result(); blog != nil {
		return RenderResult(blog)
	}
	if msg := state.ErrorMessage(); msg != "" {
		return "❌ " + msg
	}
	return ErrGeneric
}

// ClassifyError maps a usecase error to a user-facing message
func ClassifyError(err error) string {
	switch {
	case errors.Is(err, entity.ErrEmptyPrompt):
		return ErrEmptyPrompt
	case errors.Is(err, entity.ErrRequestInFlight):
		return MsgStillGenerating
	case errors.Is(err, entity.ErrNoResult):
		return ErrNothingToExport
	case errors.Is(err, entity.ErrUnsupportedFormat):
		return ErrUnsupportedFile
	case errors.Is(err, entity.ErrRequestFailed):
		return "❌ " + entity.RequestFailureMessage
	default:
		return ErrGeneric
	}
}
