package cli

import (
	"context"
	"fmt"
	"strings"

	"esgcompass/internal/advisor"
	"esgcompass/internal/cli/formatter"
	"esgcompass/internal/router"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// turnMsg carries a finished advisor turn back into the update loop.
type turnMsg struct {
	out advisor.TurnOutput
}

// chatModel is the interactive conversation surface. One scrollback of
// rendered messages, a text input, and a spinner while the advisor is
// composing. All conversation state lives in the session; the model
// only renders.
type chatModel struct {
	app  *App
	sess *router.Session

	input   textinput.Model
	spin    spinner.Model
	waiting bool
	quit    bool

	messages []string
}

func newChatModel(app *App, sess *router.Session) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	m := &chatModel{
		app:   app,
		sess:  sess,
		input: ti,
		spin:  sp,
	}

	welcome, question := app.Discovery.Opening(sess)
	m.messages = append(m.messages, welcome, "", question)
	return m
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			m.quit = true
			return m, tea.Quit
		}
		if m.waiting {
			return m, nil
		}
		if msg.Type == tea.KeyEnter {
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			if exitWords[strings.ToLower(line)] {
				m.quit = true
				return m, tea.Quit
			}
			return m.submit(line)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case turnMsg:
		m.waiting = false
		m.append(msg.out)
		if msg.out.Completed {
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) submit(line string) (tea.Model, tea.Cmd) {
	m.messages = append(m.messages, "", formatter.Dim("You: ")+line)
	m.waiting = true

	turn := func() tea.Msg {
		return turnMsg{out: m.app.Discovery.Turn(context.Background(), m.sess, line)}
	}
	return m, tea.Batch(m.spin.Tick, turn)
}

func (m *chatModel) append(out advisor.TurnOutput) {
	m.messages = append(m.messages, out.Reply)
	m.messages = append(m.messages, captureNotes(out)...)
	if out.NextQuestion != "" {
		m.messages = append(m.messages, "", out.NextQuestion)
	}
	if out.Completed {
		m.messages = append(m.messages, "", advisor.ClosingMessage)
	}
}

func (m *chatModel) View() string {
	var b strings.Builder
	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(formatter.FormatSessionProgress(m.sess.Progress()))
	b.WriteString("\n")

	if m.waiting {
		b.WriteString(m.spin.View() + formatter.Dim(" thinking..."))
	} else {
		prompt := formatter.StylePurple.Render("you") + formatter.Dim("> ")
		b.WriteString(prompt + m.input.View())
	}
	b.WriteString("\n")
	return b.String()
}

// runChatTUI runs the conversation in the terminal UI until the agenda
// completes or the user quits.
func runChatTUI(app *App, sess *router.Session) error {
	model := newChatModel(app, sess)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("running chat: %w", err)
	}
	return nil
}
