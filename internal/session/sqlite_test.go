package session

import (
	"context"
	"testing"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	store, err := NewSQLiteStore()
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreateAndGet(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	sess := &Session{Role: "planner", Borough: "Camden"}
	if err := store.Create(ctx, sess); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("Create did not assign an ID")
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Role != "planner" || got.Borough != "Camden" {
		t.Errorf("got %+v", got)
	}
}

func TestGetMissing(t *testing.T) {
	store := testStore(t)
	if _, err := store.Get(context.Background(), "nope"); err == nil {
		t.Error("Get of missing session succeeded")
	}
}

func TestMessagesRoundTrip(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	sess := &Session{Role: "planner"}
	if err := store.Create(ctx, sess); err != nil {
		t.Fatalf("Create: %v", err)
	}

	msgs := []Message{
		{Role: RoleUser, Content: "clearance time for **Newham**?", Page: "chat", Sequence: 0},
		{Role: RoleAssistant, Content: "- about 3 hours", Page: "chat", Sequence: 1},
	}
	for i := range msgs {
		if err := store.AddMessage(ctx, sess.ID, &msgs[i]); err != nil {
			t.Fatalf("AddMessage: %v", err)
		}
	}

	got, err := store.Messages(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Messages: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d messages, want 2", len(got))
	}
	if got[0].Role != RoleUser || got[1].Role != RoleAssistant {
		t.Errorf("roles out of order: %v %v", got[0].Role, got[1].Role)
	}
	if got[0].Content != "clearance time for **Newham**?" {
		t.Errorf("content = %q", got[0].Content)
	}
}

func TestFirstUserMessageBecomesSummary(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	sess := &Session{Role: "analyst"}
	if err := store.Create(ctx, sess); err != nil {
		t.Fatalf("Create: %v", err)
	}
	msg := &Message{Role: RoleUser, Content: "explain the fairness index\nsecond line", Sequence: 0}
	if err := store.AddMessage(ctx, sess.ID, msg); err != nil {
		t.Fatalf("AddMessage: %v", err)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Summary != "explain the fairness index" {
		t.Errorf("summary = %q", got.Summary)
	}
}

func TestListOrdersByRecency(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	first := &Session{Role: "planner"}
	second := &Session{Role: "responder"}
	if err := store.Create(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := store.Create(ctx, second); err != nil {
		t.Fatal(err)
	}
	// Touch the first session so it becomes most recent.
	if err := store.AddMessage(ctx, first.ID, &Message{Role: RoleUser, Content: "hi", Sequence: 0}); err != nil {
		t.Fatal(err)
	}

	summaries, err := store.List(ctx, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries", len(summaries))
	}
	if summaries[0].ID != first.ID {
		t.Errorf("most recently updated session not first")
	}
	if summaries[0].MessageCount != 1 {
		t.Errorf("message count = %d, want 1", summaries[0].MessageCount)
	}
}

func TestDeleteCascades(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	sess := &Session{Role: "planner"}
	if err := store.Create(ctx, sess); err != nil {
		t.Fatal(err)
	}
	if err := store.AddMessage(ctx, sess.ID, &Message{Role: RoleUser, Content: "x", Sequence: 0}); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	msgs, err := store.Messages(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Messages: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("messages survived session delete: %d", len(msgs))
	}
}
