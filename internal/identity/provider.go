package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/my_errors"
)

// Provider is the trusted identity collaborator. It knows who a user is;
// it never checks passwords.
type Provider interface {
	Lookup(ctx context.Context, usernameOrEmail string) (*domain.UserInfo, error)
	ByID(ctx context.Context, userID string) (*domain.UserInfo, error)
}

type StaticProvider struct {
	byID    map[string]domain.UserInfo
	byLogin map[string]domain.UserInfo
	byEmail map[string]domain.UserInfo
}

func NewStaticProvider(users []domain.UserInfo) *StaticProvider {
	p := &StaticProvider{
		byID:    make(map[string]domain.UserInfo, len(users)),
		byLogin: make(map[string]domain.UserInfo, len(users)),
		byEmail: make(map[string]domain.UserInfo, len(users)),
	}
	for _, u := range users {
		p.byID[u.ID] = u
		p.byLogin[strings.ToLower(u.Login)] = u
		p.byEmail[strings.ToLower(u.Email)] = u
	}
	return p
}

// LoadFromFile reads a JSON array of users from path.
func LoadFromFile(path string) (*StaticProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read identity file: %w", err)
	}
	var users []domain.UserInfo
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to parse identity file: %w", err)
	}
	return NewStaticProvider(users), nil
}

// DefaultUsers seeds the directory when no identity file is configured.
func DefaultUsers() []domain.UserInfo {
	return []domain.UserInfo{
		{ID: "u-octocat", Login: "octocat", Email: "octocat@example.com", AvatarURL: "https://avatars.example.com/octocat.png", IsOwner: true},
		{ID: "u-hubot", Login: "hubot", Email: "hubot@example.com", AvatarURL: "https://avatars.example.com/hubot.png"},
		{ID: "u-monalisa", Login: "monalisa", Email: "monalisa@example.com", AvatarURL: "https://avatars.example.com/monalisa.png"},
	}
}

func (p *StaticProvider) Lookup(ctx context.Context, usernameOrEmail string) (*domain.UserInfo, error) {
	key := strings.ToLower(strings.TrimSpace(usernameOrEmail))
	if u, ok := p.byLogin[key]; ok {
		return &u, nil
	}
	if u, ok := p.byEmail[key]; ok {
		return &u, nil
	}
	return nil, fmt.Errorf("%w", my_errors.ErrUserNotFound)
}

func (p *StaticProvider) ByID(ctx context.Context, userID string) (*domain.UserInfo, error) {
	if u, ok := p.byID[userID]; ok {
		return &u, nil
	}
	return nil, fmt.Errorf("%w", my_errors.ErrUserNotFound)
}
