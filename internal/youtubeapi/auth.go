package youtubeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

// AuthState is the adapter's credential state machine (spec §4.2,
// §9): Unauthenticated -> CachedCreds -> Ready, with DiscardCreds
// dropping back to Unauthenticated whenever the API reports 401/403.
type AuthState int

const (
	StateUnauthenticated AuthState = iota
	StateCachedCreds
	StateReady
)

var dataScopes = []string{yt.YoutubeReadonlyScope}

// Auth owns the oauth2 config and cached token for one service
// account / user, and hands out a ready-to-use *youtube.Service.
type Auth struct {
	oauth         *oauth2.Config
	tokenCachePath string
	state         AuthState
	token         *oauth2.Token
}

// NewAuth builds an Auth from a downloaded OAuth client-secret JSON
// file and a path where the exchanged token is cached between runs.
func NewAuth(clientSecretJSON, tokenCachePath string) (*Auth, error) {
	cfg, err := google.ConfigFromJSON([]byte(clientSecretJSON), dataScopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse oauth client secret: %w", err)
	}
	a := &Auth{oauth: cfg, tokenCachePath: tokenCachePath, state: StateUnauthenticated}
	if tok, err := a.loadCachedToken(); err == nil {
		a.token = tok
		a.state = StateCachedCreds
	}
	return a, nil
}

func (a *Auth) loadCachedToken() (*oauth2.Token, error) {
	data, err := os.ReadFile(a.tokenCachePath)
	if err != nil {
		return nil, err
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

func (a *Auth) saveToken(tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return err
	}
	return os.WriteFile(a.tokenCachePath, data, 0o600)
}

// AuthCodeURL returns the URL an operator visits to grant access,
// used by the interactive flow when State() is Unauthenticated.
func (a *Auth) AuthCodeURL(state string) string {
	return a.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// ExchangeCode completes the interactive flow with the code the
// operator pasted back, caching the resulting token.
func (a *Auth) ExchangeCode(ctx context.Context, code string) error {
	tok, err := a.oauth.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	if err := a.saveToken(tok); err != nil {
		return fmt.Errorf("failed to cache token: %w", err)
	}
	a.token = tok
	a.state = StateReady
	return nil
}

// State reports the adapter's current credential state.
func (a *Auth) State() AuthState {
	return a.state
}

// DiscardCreds drops back to Unauthenticated after the Data API
// rejects the cached token with 401/403 (spec §4.2, §7).
func (a *Auth) DiscardCreds() {
	a.token = nil
	a.state = StateUnauthenticated
	_ = os.Remove(a.tokenCachePath)
}

// Service builds a *youtube.Service from the current credentials. If
// no credentials are loaded it returns ErrAuthRequired whatever the
// value of interactive; it never prompts. The consent flow runs
// separately through AuthCodeURL and ExchangeCode.
func (a *Auth) Service(ctx context.Context, interactive bool) (*yt.Service, error) {
	if a.state == StateUnauthenticated {
		if !interactive {
			return nil, ErrAuthRequired
		}
		return nil, fmt.Errorf("%w: run the interactive auth flow first", ErrAuthRequired)
	}

	client := withAuthFailureHook(a.oauth.Client(ctx, a.token), a.DiscardCreds)
	svc, err := yt.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to build youtube service: %w", err)
	}
	a.state = StateReady
	return svc, nil
}
