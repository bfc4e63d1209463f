package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	discordAPIBase    = "https://discord.com/api/v10"
	discordAuthorize  = "https://discord.com/oauth2/authorize"
	discordTokenURL   = "https://discord.com/api/oauth2/token"
	defaultHTTPTimout = 10 * time.Second
)

// Errors returned by the Discord OAuth client
var (
	// ErrExchangeFailed is returned when Discord rejects the code exchange
	ErrExchangeFailed = errors.New("discord code exchange failed")

	// ErrIdentityFetchFailed is returned when the identity lookup fails
	ErrIdentityFetchFailed = errors.New("discord identity fetch failed")
)

// Token is the result of a successful OAuth code exchange
type Token struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
}

// Identity is the Discord user behind an access token
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// Guild is one entry of the user's guild list
type Guild struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Owner       bool   `json:"owner"`
	Permissions string `json:"permissions"`
}

// Config holds configuration for the Discord OAuth client
type Config struct {
	// ClientID is the Discord application client ID
	ClientID string

	// ClientSecret is the Discord application client secret
	ClientSecret string

	// RedirectURI is where Discord sends the user after authorizing
	RedirectURI string

	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client

	// APIBase overrides the Discord API base URL, mainly for tests
	APIBase string

	// TokenURL overrides the token endpoint, mainly for tests
	TokenURL string
}

// Client talks to Discord's OAuth and user endpoints
type Client struct {
	clientID     string
	clientSecret string
	redirectURI  string
	httpClient   *http.Client
	apiBase      string
	tokenURL     string
}

// New creates a new Discord OAuth client
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errors.New("client ID and secret cannot be empty")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimout}
	}

	apiBase := cfg.APIBase
	if apiBase == "" {
		apiBase = discordAPIBase
	}

	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = discordTokenURL
	}

	return &Client{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		redirectURI:  cfg.RedirectURI,
		httpClient:   httpClient,
		apiBase:      apiBase,
		tokenURL:     tokenURL,
	}, nil
}

// AuthorizeURL builds the URL the dashboard redirects users to for login
func (c *Client) AuthorizeURL(state string) string {
	q := url.Values{}
	q.Set("client_id", c.clientID)
	q.Set("redirect_uri", c.redirectURI)
	q.Set("response_type", "code")
	q.Set("scope", "identify guilds")
	q.Set("state", state)

	return discordAuthorize + "?" + q.Encode()
}

// ExchangeCode trades an authorization code for an access token
func (c *Client) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", c.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrExchangeFailed, resp.StatusCode)
	}

	var token Token
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}

	return &token, nil
}

// FetchIdentity looks up the user behind an access token
func (c *Client) FetchIdentity(ctx context.Context, accessToken string) (*Identity, error) {
	var identity Identity
	if err := c.getJSON(ctx, accessToken, "/users/@me", &identity); err != nil {
		return nil, err
	}

	return &identity, nil
}

// FetchGuilds lists the guilds the user belongs to
func (c *Client) FetchGuilds(ctx context.Context, accessToken string) ([]*Guild, error) {
	var guilds []*Guild
	if err := c.getJSON(ctx, accessToken, "/users/@me/guilds", &guilds); err != nil {
		return nil, err
	}

	return guilds, nil
}

func (c *Client) getJSON(ctx context.Context, accessToken, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBase+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrIdentityFetchFailed, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
