package session

import "context"

// NoopStore is a Store that does nothing, used when sessions are disabled.
type NoopStore struct{}

func (n *NoopStore) Create(ctx context.Context, s *Session) error { return nil }

func (n *NoopStore) Get(ctx context.Context, id string) (*Session, error) {
	return nil, nil
}

func (n *NoopStore) Delete(ctx context.Context, id string) error { return nil }

func (n *NoopStore) List(ctx context.Context, limit int) ([]Summary, error) {
	return nil, nil
}

func (n *NoopStore) AddMessage(ctx context.Context, sessionID string, msg *Message) error {
	return nil
}

func (n *NoopStore) Messages(ctx context.Context, sessionID string) ([]Message, error) {
	return nil, nil
}

func (n *NoopStore) Close() error { return nil }
