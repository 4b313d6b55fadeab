// Package chat holds the payloads exchanged with the messaging gateway.
package chat

import "strings"

// Event is an inbound message or button press from a user.
type Event struct {
	UserID int64
	Name   string // display name reported by the gateway, if any
	Text   string
	// Payload is the opaque value of a pressed option. Empty for typed text.
	Payload string
}

// Input returns the button payload when present, otherwise the trimmed text.
func (e Event) Input() string {
	if e.Payload != "" {
		return e.Payload
	}

	return strings.TrimSpace(e.Text)
}

type Markup string

const (
	MarkupNone Markup = ""
	MarkupHTML Markup = "html"
)

// Option is an inline button. Value round-trips as Event.Payload.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Attachment is an image or file sent along with a reply.
type Attachment struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// Reply is one outbound message.
type Reply struct {
	Text     string      `json:"text,omitempty"`
	Markup   Markup      `json:"markup,omitempty"`
	Options  []Option    `json:"options,omitempty"`
	Keyboard [][]string  `json:"keyboard,omitempty"`
	Image    *Attachment `json:"image,omitempty"`
	File     *Attachment `json:"file,omitempty"`
}

func Text(s string) Reply {
	return Reply{Text: s}
}

func HTML(s string) Reply {
	return Reply{Text: s, Markup: MarkupHTML}
}

// WithMenu attaches the main reply keyboard.
func (r Reply) WithMenu() Reply {
	r.Keyboard = MainMenu
	return r
}

// Main menu button labels.
const (
	MenuAddExpense   = "💸 Adicionar Despesa"
	MenuAddIncome    = "💰 Adicionar Receita"
	MenuReports      = "📊 Relatórios"
	MenuBudgets      = "💰 Orçamentos"
	MenuReminders    = "🔔 Lembretes"
	MenuFutureIncome = "📆 Receitas Futuras"
	MenuExport       = "📤 Exportar"
	MenuHelp         = "❓ Ajuda"
)

var MainMenu = [][]string{
	{MenuAddExpense, MenuAddIncome},
	{MenuReports, MenuBudgets},
	{MenuReminders, MenuFutureIncome},
	{MenuExport, MenuHelp},
}
