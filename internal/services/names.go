package services

import (
	"context"

	"mddrc-backend/internal/models"
	"mddrc-backend/internal/store"
)

const unknown = "Unknown"

// names resolves display names for foreign keys, defaulting to "Unknown".
type names struct {
	st *store.Stores
}

func (n *names) company(ctx context.Context, id string) string {
	if id == "" {
		return unknown
	}
	c, err := n.st.Companies.Get(ctx, id)
	if err != nil || c.Name == "" {
		return unknown
	}
	return c.Name
}

func (n *names) program(ctx context.Context, id string) string {
	p, ok := n.programDoc(ctx, id)
	if !ok || p.Name == "" {
		return unknown
	}
	return p.Name
}

func (n *names) programDoc(ctx context.Context, id string) (models.Program, bool) {
	if id == "" {
		return models.Program{}, false
	}
	p, err := n.st.Programs.Get(ctx, id)
	return p, err == nil
}

func (n *names) user(ctx context.Context, id string) (models.User, bool) {
	if id == "" {
		return models.User{}, false
	}
	u, err := n.st.Users.Get(ctx, id)
	return u, err == nil
}

func (n *names) userName(ctx context.Context, id string) string {
	u, ok := n.user(ctx, id)
	if !ok {
		return unknown
	}
	return u.FullName
}

func (n *names) session(ctx context.Context, id string) (models.Session, bool) {
	if id == "" {
		return models.Session{}, false
	}
	s, err := n.st.Sessions.Get(ctx, id)
	return s, err == nil
}

func (n *names) sessionName(ctx context.Context, id string) string {
	s, ok := n.session(ctx, id)
	if !ok {
		return unknown
	}
	return s.Name
}
