package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("AI Blog Generator Bot"))
	sb.WriteString("\n")
	sb.WriteString(subtitleStyle.Render("Generate engaging blog content with AI!"))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(m.renderButton())
	sb.WriteString("\n\n")

	if msg := m.state.ErrorMessage(); msg != "" {
		sb.WriteString(errorStyle.Render(msg))
		sb.WriteString("\n\n")
	}
	if m.status != "" {
		sb.WriteString(statusStyle.Render(m.status))
		sb.WriteString("\n\n")
	}

	if m.state.Result() != nil {
		sb.WriteString(m.output.View())
		sb.WriteString("\n")
	}

	sb.WriteString(m.help.View(m.keys))

	screen := sb.String()
	if m.state.CreditsVisible() {
		return m.renderCredits(screen)
	}
	return screen
}

func (m Model) renderButton() string {
	label := m.state.SubmitLabel()
	if m.state.Loading() {
		return disabledButtonStyle.Render(m.spinner.View() + " " + label)
	}
	if !m.state.CanSubmit() {
		return disabledButtonStyle.Render(label)
	}
	return buttonStyle.Render(label)
}

// renderResult lays out the five fields in page order.
func (m Model) renderResult() string {
	blog := m.state.Result()
	if blog == nil {
		return ""
	}

	body := lipgloss.NewStyle().Width(max(m.width-6, 20))

	var sb strings.Builder
	sb.WriteString(sectionStyle.Render("Generated Blog"))
	sb.WriteString("\n")
	sb.WriteString(body.Render(blog.GeneratedText))
	for _, s := range []struct{ title, value string }{
		{"Summary", blog.Summary},
		{"Sentiment", blog.Sentiment},
		{"Category", blog.Category},
		{"Image", blog.ImageURL},
	} {
		sb.WriteString("\n\n")
		sb.WriteString(sectionStyle.Render(s.title))
		sb.WriteString("\n")
		sb.WriteString(body.Render(s.value))
	}
	return sb.String()
}

func (m Model) renderCredits(background string) string {
	var sb strings.Builder
	sb.WriteString(sectionStyle.Render("Developer Credits"))
	sb.WriteString("\n")
	for _, c := range m.credits {
		sb.WriteString("\n• " + c.Name + " (" + c.ID + ")")
	}
	sb.WriteString("\n\n")
	sb.WriteString(subtitleStyle.Render("esc to close"))

	overlay := overlayStyle.Render(sb.String())
	if m.width == 0 || m.height == 0 {
		return overlay + "\n" + background
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
}
