package service

import (
	"context"
	"sort"

	"rag-chat-storage/internal/entity"
	"rag-chat-storage/internal/repository/contract"
	"rag-chat-storage/internal/repository/specification"
	"rag-chat-storage/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory doubles for the repository contracts. They interpret the same
// specifications the real implementations receive.

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.ChatSession
	failWith error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.ChatSession)}
}

func (f *fakeSessionRepo) Create(_ context.Context, e *entity.ChatSession) error {
	if f.failWith != nil {
		return f.failWith
	}
	cp := *e
	f.sessions[e.Id] = &cp
	return nil
}

func (f *fakeSessionRepo) Save(_ context.Context, e *entity.ChatSession) error {
	if f.failWith != nil {
		return f.failWith
	}
	cp := *e
	f.sessions[e.Id] = &cp
	return nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessionRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, sp := range specs {
		if byID, ok := sp.(specification.ByID); ok {
			if s, found := f.sessions[byID.ID]; found {
				cp := *s
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.ChatSession, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]*entity.ChatSession, 0, len(f.sessions))
	for _, s := range f.sessions {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeSessionRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return int64(len(f.sessions)), nil
}

type fakeMessageRepo struct {
	messages []*entity.ChatMessage
	failWith error
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{}
}

func (f *fakeMessageRepo) Create(_ context.Context, e *entity.ChatMessage) error {
	if f.failWith != nil {
		return f.failWith
	}
	cp := *e
	f.messages = append(f.messages, &cp)
	return nil
}

func (f *fakeMessageRepo) Save(_ context.Context, e *entity.ChatMessage) error {
	return f.Create(context.Background(), e)
}

func (f *fakeMessageRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := f.messages[:0]
	for _, m := range f.messages {
		if m.Id != id {
			kept = append(kept, m)
		}
	}
	f.messages = kept
	return nil
}

func (f *fakeMessageRepo) DeleteBySessionId(_ context.Context, sessionId uuid.UUID) error {
	if f.failWith != nil {
		return f.failWith
	}
	kept := f.messages[:0]
	for _, m := range f.messages {
		if m.SessionId != sessionId {
			kept = append(kept, m)
		}
	}
	f.messages = kept
	return nil
}

func (f *fakeMessageRepo) FindOne(_ context.Context, _ ...specification.Specification) (*entity.ChatMessage, error) {
	return nil, nil
}

func (f *fakeMessageRepo) matching(specs []specification.Specification) []*entity.ChatMessage {
	var sessionId *uuid.UUID
	for _, sp := range specs {
		if bySession, ok := sp.(specification.BySessionID); ok {
			id := bySession.SessionID
			sessionId = &id
		}
	}

	out := make([]*entity.ChatMessage, 0)
	for _, m := range f.messages {
		if sessionId == nil || m.SessionId == *sessionId {
			out = append(out, m)
		}
	}
	// Stable sort: ties on timestamp keep insertion order, like the id
	// tiebreak does against a real store.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

func (f *fakeMessageRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}

	out := f.matching(specs)
	for _, sp := range specs {
		if page, ok := sp.(specification.Pagination); ok {
			if page.Offset >= len(out) {
				return []*entity.ChatMessage{}, nil
			}
			out = out[page.Offset:]
			if page.Limit < len(out) {
				out = out[:page.Limit]
			}
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return int64(len(f.matching(specs))), nil
}

type fakeUnitOfWork struct {
	sessionRepo *fakeSessionRepo
	messageRepo *fakeMessageRepo

	begun      int
	committed  int
	rolledBack int
}

func (u *fakeUnitOfWork) Begin(_ context.Context) error { u.begun++; return nil }
func (u *fakeUnitOfWork) Commit() error                 { u.committed++; return nil }
func (u *fakeUnitOfWork) Rollback() error               { u.rolledBack++; return nil }

func (u *fakeUnitOfWork) ChatSessionRepository() contract.ChatSessionRepository {
	return u.sessionRepo
}

func (u *fakeUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return u.messageRepo
}

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{uow: &fakeUnitOfWork{
		sessionRepo: newFakeSessionRepo(),
		messageRepo: newFakeMessageRepo(),
	}}
}

func (f *fakeFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
