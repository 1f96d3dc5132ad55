package client

import (
	"context"
	"sync"
)

// SessionState is the authentication state of a Session.
type SessionState int

const (
	StateAnonymous SessionState = iota
	StateAuthenticating
	StateAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// User is the client-side view of an authenticated account.
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Bio            string `json:"bio,omitempty"`
	Phone          string `json:"phone,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// authResponse mirrors the server's register/login response.
type authResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Session tracks the current authenticated user. State moves
// Anonymous -> Authenticating -> Authenticated, back to Anonymous on a failed
// attempt or logout. Tokens are never refreshed: an expired token surfaces as
// a 401 APIError on the next request and the caller re-authenticates.
type Session struct {
	client *Client

	mu    sync.RWMutex
	state SessionState
	user  *User
}

// NewSession creates a Session on top of an API client. If the client's token
// store already holds a token (e.g. file-backed store from a previous run)
// the session still starts Anonymous; the user is only known after a login.
func NewSession(client *Client) *Session {
	return &Session{
		client: client,
		state:  StateAnonymous,
	}
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns the currently authenticated user, or nil when Anonymous.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Login exchanges credentials for a session token. On failure the returned
// error is an *APIError carrying the server's message and the session drops
// back to Anonymous.
func (s *Session) Login(ctx context.Context, email, password string) (*User, error) {
	s.setState(StateAuthenticating, nil)

	body, contentType, err := jsonBody(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		s.setState(StateAnonymous, nil)
		return nil, err
	}

	var resp authResponse
	err = s.client.do(ctx, request{
		method:      "POST",
		path:        "/api/auth/login",
		body:        body,
		contentType: contentType,
		loadingMsg:  "Signing in...",
	}, &resp)
	if err != nil {
		s.setState(StateAnonymous, nil)
		return nil, err
	}

	if err := s.client.tokens.SetToken(resp.Token); err != nil {
		s.setState(StateAnonymous, nil)
		return nil, err
	}
	s.setState(StateAuthenticated, resp.User)
	return resp.User, nil
}

// Register creates an account with the chosen role (client or trainer) and
// starts a session for it. Same success/failure contract as Login.
func (s *Session) Register(ctx context.Context, name, email, password, role string) (*User, error) {
	s.setState(StateAuthenticating, nil)

	body, contentType, err := jsonBody(map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     role,
	})
	if err != nil {
		s.setState(StateAnonymous, nil)
		return nil, err
	}

	var resp authResponse
	err = s.client.do(ctx, request{
		method:      "POST",
		path:        "/api/auth/register",
		body:        body,
		contentType: contentType,
		loadingMsg:  "Creating account...",
	}, &resp)
	if err != nil {
		s.setState(StateAnonymous, nil)
		return nil, err
	}

	if err := s.client.tokens.SetToken(resp.Token); err != nil {
		s.setState(StateAnonymous, nil)
		return nil, err
	}
	s.setState(StateAuthenticated, resp.User)
	return resp.User, nil
}

// Logout clears the stored token and the in-memory user synchronously. No
// network call is made; the token simply stops being sent.
func (s *Session) Logout() {
	_ = s.client.tokens.Clear()
	s.setState(StateAnonymous, nil)
}

func (s *Session) setState(state SessionState, user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.user = user
}
