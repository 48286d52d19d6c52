package session

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"eatgo/internal/actions"
	"eatgo/internal/domain"
	"eatgo/internal/state"
)

var (
	// ErrMissingCredentials is returned when the email or password field is
	// empty. Other values are posted as typed and the login service decides.
	ErrMissingCredentials = errors.New("email and password are required")
)

// Service performs login and logout against the API and the token store.
type Service struct {
	api    domain.APIClient
	tokens domain.TokenStore
	log    *zap.Logger
}

// New constructs a session service with the given API client and token store.
func New(api domain.APIClient, tokens domain.TokenStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{api: api, tokens: tokens, log: log.Named("session")}
}

// RequestLogin exchanges the login form's email and password for a token,
// saves it to durable storage and then dispatches it.
//
// Steps:
//  1. Read email and password from the login fields.
//  2. Post them to the login service.
//  3. Persist the returned token under domain.AccessTokenKey.
//  4. Dispatch setAccessToken.
func (s *Service) RequestLogin() state.Thunk {
	return func(ctx context.Context, d state.Dispatcher, get state.GetState) error {
		fields := get().LoginFields
		creds := domain.Credentials{
			Email:    fields.Get("email"),
			Password: fields.Get("password"),
		}
		if creds.Email == "" || creds.Password == "" {
			return state.Fail(d, actions.FlowLogin, ErrMissingCredentials)
		}

		token, err := s.api.PostLogin(ctx, creds)
		if err != nil {
			return state.Fail(d, actions.FlowLogin, fmt.Errorf("login: %w", err))
		}
		if err := s.tokens.SaveItem(domain.AccessTokenKey, token.String()); err != nil {
			return state.Fail(d, actions.FlowLogin, fmt.Errorf("save access token: %w", err))
		}

		d.Dispatch(actions.SetAccessToken(token))
		state.Recover(d, get, actions.FlowLogin)
		s.log.Info("logged in",
			zap.String("email", creds.Email),
			zap.String("token", token.Fingerprint()),
		)
		return nil
	}
}

// Logout removes the stored token and then dispatches logout. If the stored
// copy cannot be removed, the in-memory token is kept so the two stay equal.
func (s *Service) Logout() state.Thunk {
	return func(ctx context.Context, d state.Dispatcher, get state.GetState) error {
		if err := s.tokens.RemoveItem(domain.AccessTokenKey); err != nil {
			return state.Fail(d, actions.FlowLogin, fmt.Errorf("remove access token: %w", err))
		}
		d.Dispatch(actions.Logout())
		s.log.Info("logged out")
		return nil
	}
}

// RestoreSession dispatches a token saved by a previous run, if any.
func (s *Service) RestoreSession() state.Thunk {
	return func(ctx context.Context, d state.Dispatcher, get state.GetState) error {
		token, ok, err := s.tokens.LoadItem(domain.AccessTokenKey)
		if err != nil {
			return fmt.Errorf("load access token: %w", err)
		}
		if !ok || token == "" {
			return nil
		}
		restored := domain.AccessToken(token)
		d.Dispatch(actions.SetAccessToken(restored))
		s.log.Debug("session restored", zap.String("token", restored.Fingerprint()))
		return nil
	}
}
