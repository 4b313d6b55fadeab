package view

import (
	"context"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/finchat/internal/chat"
)

const handleTimeout = 30 * time.Second

var (
	boldTag  = regexp.MustCompile(`(?s)<b>(.*?)</b>`)
	otherTag = regexp.MustCompile(`</?(?:i|u|s|code|pre)>`)
)

// Render turns a reply body into terminal text. HTML replies keep their bold
// segments and lose every other tag.
func Render(text string, markup chat.Markup) string {
	if markup != chat.MarkupHTML {
		return text
	}

	text = boldTag.ReplaceAllStringFunc(text, func(s string) string {
		return boldStyle.Render(boldTag.FindStringSubmatch(s)[1])
	})
	text = otherTag.ReplaceAllString(text, "")

	return strings.TrimRight(html.UnescapeString(text), "\n")
}

func handleCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), handleTimeout)
}
