package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
)

type DiscordClientTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *DiscordClientTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func TestDiscordClientTestSuite(t *testing.T) {
	suite.Run(t, new(DiscordClientTestSuite))
}

func (s *DiscordClientTestSuite) newClient(apiBase, tokenURL string) *Client {
	client, err := New(&Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "http://localhost:8080/api/v1/auth/callback",
		APIBase:      apiBase,
		TokenURL:     tokenURL,
	})
	s.Require().NoError(err)
	return client
}

func (s *DiscordClientTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Require().Error(err)

	_, err = New(&Config{ClientID: "only-id"})
	s.Require().Error(err)
}

func (s *DiscordClientTestSuite) TestAuthorizeURL() {
	client := s.newClient("", "")

	u := client.AuthorizeURL("state-123")
	s.Contains(u, "client_id=client-id")
	s.Contains(u, "state=state-123")
	s.Contains(u, "response_type=code")
}

func (s *DiscordClientTestSuite) TestExchangeCode() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Require().NoError(r.ParseForm())
		s.Equal("the-code", r.PostForm.Get("code"))
		s.Equal("authorization_code", r.PostForm.Get("grant_type"))

		json.NewEncoder(w).Encode(Token{
			AccessToken: "access-token",
			TokenType:   "Bearer",
			ExpiresIn:   604800,
		})
	}))
	defer srv.Close()

	client := s.newClient("", srv.URL)

	token, err := client.ExchangeCode(s.ctx, "the-code")
	s.Require().NoError(err)
	s.Equal("access-token", token.AccessToken)
}

func (s *DiscordClientTestSuite) TestExchangeCodeRejected() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client := s.newClient("", srv.URL)

	_, err := client.ExchangeCode(s.ctx, "bad-code")
	s.Require().ErrorIs(err, ErrExchangeFailed)
}

func (s *DiscordClientTestSuite) TestFetchIdentity() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/users/@me", r.URL.Path)
		s.Equal("Bearer access-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(Identity{
			ID:       "user-1",
			Username: "gamer",
			Avatar:   "abc123",
		})
	}))
	defer srv.Close()

	client := s.newClient(srv.URL, "")

	identity, err := client.FetchIdentity(s.ctx, "access-token")
	s.Require().NoError(err)
	s.Equal("user-1", identity.ID)
	s.Equal("gamer", identity.Username)
}

func (s *DiscordClientTestSuite) TestFetchGuilds() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/users/@me/guilds", r.URL.Path)

		json.NewEncoder(w).Encode([]*Guild{
			{ID: "guild-1", Name: "Test Guild", Owner: true},
		})
	}))
	defer srv.Close()

	client := s.newClient(srv.URL, "")

	guilds, err := client.FetchGuilds(s.ctx, "access-token")
	s.Require().NoError(err)
	s.Require().Len(guilds, 1)
	s.Equal("guild-1", guilds[0].ID)
}
