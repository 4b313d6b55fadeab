package view

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/finchat/internal/chat"
)

// choice is a selectable option or menu button. Options answer with their
// payload, menu buttons with their label as text.
type choice struct {
	label   string
	payload string
}

func (c choice) event(user int64, name string) chat.Event {
	if c.payload != "" {
		return chat.Event{UserID: user, Name: name, Payload: c.payload}
	}

	return chat.Event{UserID: user, Name: name, Text: c.label}
}

type repliesMsg struct {
	replies []chat.Reply
	saved   []string
	err     error
}

type ChatModel struct {
	dispatcher Dispatcher
	userID     int64
	name       string
	filesDir   string

	input      textinput.Model
	transcript viewport.Model
	spinner    spinner.Model

	lines   []string
	choices []choice
	cursor  int
	picking bool
	waiting bool
	width   int
}

// NewChatModel starts a conversation as user. Images and files sent by the
// bot are written to filesDir.
func NewChatModel(d Dispatcher, userID int64, name, filesDir string) ChatModel {
	ti := textinput.New()
	ti.Placeholder = "Escreva uma mensagem ou /ajuda"
	ti.Prompt = "› "
	ti.CharLimit = 500
	ti.Width = 60
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ChatModel{
		dispatcher: d,
		userID:     userID,
		name:       name,
		filesDir:   filesDir,
		input:      ti,
		transcript: viewport.New(80, 20),
		spinner:    s,
		width:      80,
	}
}

func (m ChatModel) Title() string { return "FinChat" }

func (m ChatModel) ShortHelp() string {
	if m.picking {
		return "↑/↓: escolher | Enter: enviar | Esc: voltar a digitar"
	}

	if len(m.choices) > 0 {
		return "Enter: enviar | Tab: opções | Ctrl+C: sair"
	}

	return "Enter: enviar | Ctrl+C: sair"
}

func (m ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		m.transcript.Width = msg.Width
		m.transcript.Height = max(msg.Height-lipgloss.Height(m.footer())-2, 5)
		m.refresh()

		return m, nil
	case repliesMsg:
		return m.receive(msg), nil
	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.transcript, cmd = m.transcript.Update(msg)

	return m, cmd
}

func (m ChatModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.waiting {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.transcript, cmd = m.transcript.Update(msg)

		return m, cmd
	case tea.KeyTab:
		if len(m.choices) > 0 {
			m.picking = !m.picking
		}

		return m, nil
	}

	if m.picking {
		switch msg.Type {
		case tea.KeyUp:
			m.cursor = (m.cursor - 1 + len(m.choices)) % len(m.choices)
		case tea.KeyDown:
			m.cursor = (m.cursor + 1) % len(m.choices)
		case tea.KeyEsc:
			m.picking = false
		case tea.KeyEnter:
			c := m.choices[m.cursor]
			m.picking = false

			return m.send(c.label, c.event(m.userID, m.name))
		}

		return m, nil
	}

	if msg.Type == tea.KeyEnter {
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}

		m.input.Reset()

		return m.send(text, chat.Event{UserID: m.userID, Name: m.name, Text: text})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m ChatModel) send(shown string, ev chat.Event) (tea.Model, tea.Cmd) {
	m.lines = append(m.lines, userStyle.Render("Você: ")+shown)
	m.waiting = true
	m.refresh()

	return m, tea.Batch(m.dispatch(ev), m.spinner.Tick)
}

// dispatch runs the dispatcher off the update loop and saves attachments.
func (m ChatModel) dispatch(ev chat.Event) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := handleCtx()
		defer cancel()

		replies, err := m.dispatcher.Handle(ctx, ev)
		if err != nil {
			return repliesMsg{err: err}
		}

		var saved []string

		for _, r := range replies {
			for _, a := range []*chat.Attachment{r.Image, r.File} {
				if a == nil {
					continue
				}

				path, err := save(m.filesDir, a)
				if err != nil {
					saved = append(saved, errorStyle.Render(fmt.Sprintf("Falha ao salvar %s: %v", a.Name, err)))
					continue
				}

				saved = append(saved, noteStyle.Render(fmt.Sprintf("📎 %s salvo em %s", a.Name, path)))
			}
		}

		return repliesMsg{replies: replies, saved: saved}
	}
}

func save(dir string, a *chat.Attachment) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, filepath.Base(a.Name))
	if err := os.WriteFile(path, a.Data, 0o644); err != nil {
		return "", err
	}

	return path, nil
}

// receive appends the replies. The last reply carrying options or a menu
// decides what can be picked next.
func (m ChatModel) receive(msg repliesMsg) ChatModel {
	m.waiting = false

	if msg.err != nil {
		m.lines = append(m.lines, errorStyle.Render(fmt.Sprintf("Erro: %v", msg.err)))
		m.refresh()

		return m
	}

	var (
		options []choice
		menu    []choice
	)

	for _, r := range msg.replies {
		if r.Text != "" {
			m.lines = append(m.lines, botStyle.Render("FinChat: ")+Render(r.Text, r.Markup))
		}

		if len(r.Options) > 0 {
			options = options[:0]
			for _, o := range r.Options {
				options = append(options, choice{label: o.Label, payload: o.Value})
			}
		}

		if len(r.Keyboard) > 0 {
			menu = menu[:0]
			for _, row := range r.Keyboard {
				for _, label := range row {
					menu = append(menu, choice{label: label})
				}
			}
		}
	}

	m.lines = append(m.lines, msg.saved...)
	m.choices = append(options, menu...)
	m.cursor = 0
	m.refresh()

	return m
}

func (m *ChatModel) refresh() {
	wrap := lipgloss.NewStyle().Width(max(m.transcript.Width, 20))

	rendered := make([]string, len(m.lines))
	for i, l := range m.lines {
		rendered[i] = wrap.Render(l)
	}

	m.transcript.SetContent(strings.Join(rendered, "\n\n"))
	m.transcript.GotoBottom()
}

func (m ChatModel) footer() string {
	var b strings.Builder

	if len(m.choices) > 0 {
		items := make([]string, len(m.choices))
		for i, c := range m.choices {
			if m.picking && i == m.cursor {
				items[i] = cursorStyle.Render("> " + c.label)
			} else {
				items[i] = "  " + c.label
			}
		}

		b.WriteString(choicesStyle.Render(strings.Join(items, "\n")))
		b.WriteString("\n")
	}

	if m.waiting {
		b.WriteString(m.spinner.View() + " pensando...\n")
	} else {
		b.WriteString(m.input.View() + "\n")
	}

	b.WriteString(noteStyle.Render(m.ShortHelp()))

	return b.String()
}

func (m ChatModel) View() string {
	header := titleStyle.Render(fmt.Sprintf("%s · %s", m.Title(), m.name))

	return lipgloss.JoinVertical(lipgloss.Left, header, m.transcript.View(), m.footer())
}
