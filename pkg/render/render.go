package render

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/uikit/pkg/notifications"
)

// ContainerID is the element id of the notification container.
const ContainerID = "notifications-container"

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Text strips every tag from s and escapes the rest, so user supplied
// messages render as plain text.
func Text(s string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(textPolicy.Sanitize(s))
}

// Container renders the notification container with one element per entry
// in display order.
func Container(entries []notifications.Notification) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="%s" class="notifications-container" aria-live="polite">`, ContainerID); err != nil {
			return err
		}
		for _, n := range entries {
			if err := Notification(n).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// Notification renders a single entry with its close button.
func Notification(n notifications.Notification) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		id := templ.EscapeString(n.ID)
		typ := templ.EscapeString(string(notifications.ParseType(string(n.Type))))
		_, err := fmt.Fprintf(w,
			`<div class="notification notification-%s" data-id="%s" role="status">`+
				`<span class="notification-message">%s</span>`+
				`<button type="button" class="notification-close" data-dismiss="%s" aria-label="Close">&times;</button>`+
				`</div>`,
			typ, id, Text(n.Message), id,
		)
		return err
	})
}

// FieldError renders the inline error shown next to an invalid field.
func FieldError(field, message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<span class="field-error" data-field="%s">%s</span>`,
			templ.EscapeString(field), Text(message))
		return err
	})
}

// Render renders a component to a string.
func Render(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
