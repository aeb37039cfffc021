package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/GoArmGo/BlogApp/internal/messaging/payloads"
	"github.com/google/uuid"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserStorage is an in-memory ports.UserStorage preserving insertion order.
type fakeUserStorage struct {
	users     []*domain.User
	createErr error
	lookupErr error
	createCnt int
}

func (f *fakeUserStorage) CreateUser(ctx context.Context, user *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createCnt++
	copied := *user
	f.users = append(f.users, &copied)
	return nil
}

func (f *fakeUserStorage) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStorage) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStorage) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStorage) ListUsers(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

// fakeSessionStorage is an in-memory ports.SessionStorage.
type fakeSessionStorage struct {
	sessions map[string]*domain.Session
}

func newFakeSessionStorage() *fakeSessionStorage {
	return &fakeSessionStorage{sessions: make(map[string]*domain.Session)}
}

func (f *fakeSessionStorage) CreateSession(ctx context.Context, session *domain.Session) error {
	copied := *session
	f.sessions[session.Token] = &copied
	return nil
}

func (f *fakeSessionStorage) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	s, ok := f.sessions[token]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSessionStorage) DeleteSession(ctx context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func (f *fakeSessionStorage) DeleteUserSessions(ctx context.Context, userID uuid.UUID) error {
	for token, s := range f.sessions {
		if s.UserID == userID {
			delete(f.sessions, token)
		}
	}
	return nil
}

func (f *fakeSessionStorage) DeleteExpiredSessions(ctx context.Context) error {
	return nil
}

// fakePostStorage is an in-memory ports.PostStorage preserving insertion order.
type fakePostStorage struct {
	posts []*domain.Post
}

func (f *fakePostStorage) SavePost(ctx context.Context, post *domain.Post) error {
	copied := *post
	f.posts = append(f.posts, &copied)
	return nil
}

func (f *fakePostStorage) GetPostByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakePostStorage) ListPosts(ctx context.Context) ([]domain.Post, error) {
	out := make([]domain.Post, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, *p)
	}
	return out, nil
}

// fakePublisher records published post events.
type fakePublisher struct {
	events     []payloads.PostPublishedPayload
	publishErr error
}

func (f *fakePublisher) PublishPostEvent(ctx context.Context, payload payloads.PostPublishedPayload) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.events = append(f.events, payload)
	return nil
}
