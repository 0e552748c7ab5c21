// Package chat implements the interactive chat TUI against the planning
// backend. Assistant replies are re-rendered through the markup engine on
// every view; nothing formatted is persisted.
package chat

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/itszrong/evacplan/internal/config"
	"github.com/itszrong/evacplan/internal/planner"
	"github.com/itszrong/evacplan/internal/session"
	"github.com/itszrong/evacplan/internal/ui"
)

// chatPage is the context page reported with every message from this TUI.
const chatPage = "chat"

// Model is the main chat TUI model
type Model struct {
	width  int
	height int

	textarea textarea.Model
	spinner  spinner.Model
	styles   *ui.Styles
	keyMap   KeyMap

	cfg    *config.Config
	client *planner.Client
	store  session.Store
	sess   *session.Session

	messages []session.Message
	role     string

	sending    bool
	cancelSend context.CancelFunc

	quitting bool
}

// assistantReplyMsg carries the assistant's reply (or a synthesized
// fallback) back into the update loop.
type assistantReplyMsg struct {
	content string
}

type sendFailedMsg struct {
	err error
}

// New creates a chat model.
func New(cfg *config.Config, client *planner.Client, store session.Store) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask about evacuation planning..."
	ta.Prompt = "│ "
	ta.SetHeight(2)
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	styles := ui.NewStyles(os.Stderr)
	sp.Style = styles.Spinner

	return Model{
		textarea: ta,
		spinner:  sp,
		styles:   styles,
		keyMap:   DefaultKeyMap(),
		cfg:      cfg,
		client:   client,
		store:    store,
		role:     cfg.Role,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(msg.Width - 2)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			m.quitting = true
			if m.cancelSend != nil {
				m.cancelSend()
			}
			return m, tea.Quit

		case key.Matches(msg, m.keyMap.Cancel):
			if m.sending && m.cancelSend != nil {
				m.cancelSend()
				m.sending = false
				m.appendLocal(session.RoleSystem, "Request cancelled.")
			}
			return m, nil

		case key.Matches(msg, m.keyMap.Clear):
			m.messages = nil
			m.sess = nil
			return m, nil

		case key.Matches(msg, m.keyMap.Newline):
			m.textarea.InsertString("\n")
			return m, nil

		case key.Matches(msg, m.keyMap.Send):
			if m.sending {
				return m, nil
			}
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			m.textarea.Reset()

			if handled, model, cmd := m.handleCommand(input); handled {
				return model, cmd
			}
			return m.send(input)
		}

	case assistantReplyMsg:
		if !m.sending {
			// The request was cancelled before the reply arrived.
			return m, nil
		}
		m.sending = false
		m.cancelSend = nil
		m.appendStored(session.RoleAssistant, msg.content)
		return m, nil

	case sendFailedMsg:
		// A cancelled send still resolves with an error; the transcript
		// already shows the cancellation notice, nothing else to add.
		if !m.sending {
			return m, nil
		}
		// The transcript never shows a raw failure; synthesize a
		// contextual assistant message instead.
		m.sending = false
		m.cancelSend = nil
		m.appendStored(session.RoleAssistant, planner.FallbackMessage(m.role, chatPage))
		return m, nil

	case spinner.TickMsg:
		if !m.sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// send appends the user's message and fires the backend request.
func (m Model) send(input string) (tea.Model, tea.Cmd) {
	history := m.history()
	m.appendStored(session.RoleUser, input)

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelSend = cancel
	m.sending = true

	client := m.client
	role := m.role
	sendCmd := func() tea.Msg {
		reply, err := client.SendMessage(ctx, planner.ChatRequest{
			Message: input,
			Role:    role,
			Context: planner.ChatContext{
				Page:      chatPage,
				Tab:       "main",
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			},
			ConversationHistory: history,
		})
		if err != nil {
			return sendFailedMsg{err: err}
		}
		return assistantReplyMsg{content: reply}
	}

	return m, tea.Batch(sendCmd, m.spinner.Tick)
}

// history converts the transcript to the wire format. The client trims to
// its own limit; user and assistant turns only.
func (m Model) history() []planner.HistoryMessage {
	var h []planner.HistoryMessage
	for _, msg := range m.messages {
		if msg.Role == session.RoleSystem {
			continue
		}
		h = append(h, planner.HistoryMessage{Role: string(msg.Role), Content: msg.Content})
	}
	return h
}

// appendStored appends a message and persists it to the session store.
func (m *Model) appendStored(role session.Role, content string) {
	msg := session.Message{
		Role:      role,
		Content:   content,
		Page:      chatPage,
		Tab:       "main",
		CreatedAt: time.Now(),
		Sequence:  len(m.messages),
	}
	m.messages = append(m.messages, msg)

	ctx := context.Background()
	if m.sess == nil {
		sess := &session.Session{Role: m.role}
		if err := m.store.Create(ctx, sess); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to create session: %v\n", err)
			return
		}
		m.sess = sess
	}
	if err := m.store.AddMessage(ctx, m.sess.ID, &msg); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save message: %v\n", err)
	}
}

// appendLocal appends a message without persisting it (system notices).
func (m *Model) appendLocal(role session.Role, content string) {
	m.messages = append(m.messages, session.Message{
		Role:     role,
		Content:  content,
		Sequence: len(m.messages),
	})
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := m.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder

	for _, msg := range m.messages {
		switch msg.Role {
		case session.RoleUser:
			b.WriteString(m.styles.UserLabel.Render("You"))
		case session.RoleAssistant:
			b.WriteString(m.styles.AssistantLabel.Render("Planner"))
		default:
			b.WriteString(m.styles.Muted.Render("·"))
		}
		b.WriteString("\n")
		if msg.Role == session.RoleSystem {
			b.WriteString(m.styles.Muted.Render(msg.Content))
		} else {
			b.WriteString(m.styles.RenderMessage(msg.Content, width-2))
		}
		b.WriteString("\n\n")
	}

	if m.sending {
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.Muted.Render(" contacting planning service..."))
		b.WriteString("\n\n")
	}

	b.WriteString(m.textarea.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(
		fmt.Sprintf("role: %s · enter send · ctrl+j newline · ctrl+k clear · ctrl+c quit", m.role)))

	return b.String()
}
