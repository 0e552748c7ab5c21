package chat

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/itszrong/evacplan/internal/config"
	"github.com/itszrong/evacplan/internal/planner"
	"github.com/itszrong/evacplan/internal/session"
)

func testModel() Model {
	cfg := &config.Config{Role: "planner"}
	client := planner.NewClient("http://localhost:0", 0)
	return New(cfg, client, &session.NoopStore{})
}

func TestHandleCommandPassthrough(t *testing.T) {
	m := testModel()
	handled, _, _ := m.handleCommand("what is the clearance time?")
	if handled {
		t.Error("plain input treated as command")
	}
}

func TestHandleCommandHelp(t *testing.T) {
	m := testModel()
	handled, model, _ := m.handleCommand("/help")
	if !handled {
		t.Fatal("/help not handled")
	}
	got := model.(Model)
	if len(got.messages) != 1 || !strings.Contains(got.messages[0].Content, "/role") {
		t.Errorf("help message missing: %+v", got.messages)
	}
}

func TestHandleCommandRoleSwitch(t *testing.T) {
	m := testModel()
	handled, model, _ := m.handleCommand("/role analyst")
	if !handled {
		t.Fatal("/role not handled")
	}
	got := model.(Model)
	if got.role != "analyst" {
		t.Errorf("role = %q, want analyst", got.role)
	}
}

func TestHandleCommandUnknownRole(t *testing.T) {
	m := testModel()
	_, model, _ := m.handleCommand("/role mayor")
	got := model.(Model)
	if got.role != "planner" {
		t.Errorf("role changed to invalid value %q", got.role)
	}
	if len(got.messages) == 0 || !strings.Contains(got.messages[0].Content, "Unknown role") {
		t.Errorf("no feedback for unknown role: %+v", got.messages)
	}
}

func TestHandleCommandClear(t *testing.T) {
	m := testModel()
	m.appendLocal(session.RoleUser, "hello")
	_, model, _ := m.handleCommand("/clear")
	got := model.(Model)
	if len(got.messages) != 0 {
		t.Errorf("messages not cleared: %d remain", len(got.messages))
	}
}

func TestHandleCommandSuggestions(t *testing.T) {
	m := testModel()
	_, model, _ := m.handleCommand("/suggestions")
	got := model.(Model)
	if len(got.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(got.messages))
	}
	want := planner.Suggestions("planner")[0]
	if !strings.Contains(got.messages[0].Content, want) {
		t.Errorf("suggestions message %q missing %q", got.messages[0].Content, want)
	}
}

func TestHandleCommandUnknown(t *testing.T) {
	m := testModel()
	handled, model, _ := m.handleCommand("/frobnicate")
	if !handled {
		t.Fatal("unknown command not handled")
	}
	got := model.(Model)
	if len(got.messages) == 0 || !strings.Contains(got.messages[0].Content, "/help") {
		t.Errorf("no hint for unknown command: %+v", got.messages)
	}
}

func TestCancelledSendDropsLateFailure(t *testing.T) {
	m := testModel()
	model, _ := m.send("clearance time?")
	got := model.(Model)
	if !got.sending {
		t.Fatal("send did not mark a request in flight")
	}

	model, _ = got.Update(tea.KeyMsg{Type: tea.KeyEsc})
	got = model.(Model)
	if got.sending {
		t.Fatal("esc did not cancel the in-flight request")
	}
	before := len(got.messages)

	// The cancelled command still resolves with an error; the transcript
	// must not gain a fallback assistant message on top of the notice.
	model, _ = got.Update(sendFailedMsg{err: context.Canceled})
	got = model.(Model)
	if len(got.messages) != before {
		t.Errorf("cancelled request appended message: %+v", got.messages[len(got.messages)-1])
	}
}

func TestCancelledSendDropsLateReply(t *testing.T) {
	m := testModel()
	model, _ := m.send("question")
	got := model.(Model)

	model, _ = got.Update(tea.KeyMsg{Type: tea.KeyEsc})
	got = model.(Model)
	before := len(got.messages)

	model, _ = got.Update(assistantReplyMsg{content: "stale answer"})
	got = model.(Model)
	if len(got.messages) != before {
		t.Errorf("stale reply appended after cancel: %+v", got.messages[len(got.messages)-1])
	}
}

func TestHistorySkipsSystemMessages(t *testing.T) {
	m := testModel()
	m.appendLocal(session.RoleUser, "question")
	m.appendLocal(session.RoleSystem, "Role switched to analyst.")
	m.appendLocal(session.RoleAssistant, "answer")

	h := m.history()
	if len(h) != 2 {
		t.Fatalf("history length = %d, want 2", len(h))
	}
	if h[0].Role != "user" || h[1].Role != "assistant" {
		t.Errorf("history roles: %v", h)
	}
}
