package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/guildkeeper/internal/events"
	"github.com/KirkDiggler/guildkeeper/internal/models"
	sessionSvc "github.com/KirkDiggler/guildkeeper/internal/services/session"
)

// dialWS connects an authenticated websocket client to the test server
func (s *ServerTestSuite) dialWS(srv *httptest.Server) *websocket.Conn {
	s.mockSessions.EXPECT().
		ResolveSession(gomock.Any(), &sessionSvc.ResolveSessionInput{Token: "tok-1"}).
		Return(&sessionSvc.ResolveSessionOutput{
			Session: &models.Session{Token: "tok-1", UserID: "staff-1"},
		}, nil)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws"
	header := http.Header{}
	header.Add("Cookie", sessionCookie+"=tok-1")

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	s.Require().NoError(err)
	if resp != nil {
		_ = resp.Body.Close()
	}

	return conn
}

func (s *ServerTestSuite) TestWSRequiresSession() {
	srv := httptest.NewServer(s.handler)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws"

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	s.Require().Error(err)
	s.Nil(conn)
	s.Require().NotNil(resp)
	defer func() { _ = resp.Body.Close() }()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *ServerTestSuite) TestWSDeliversSubscribedGuildsOnly() {
	srv := httptest.NewServer(s.handler)
	defer srv.Close()

	conn := s.dialWS(srv)
	defer conn.Close()

	s.Require().NoError(conn.WriteJSON(wsCommand{Action: "subscribe", GuildID: "guild-1"}))

	// Give the reader goroutine a beat to register the subscription
	time.Sleep(100 * time.Millisecond)

	s.eventBus.Publish(events.NewTicketUpdate("guild-2", "ticket-other", "open"))
	s.eventBus.Publish(events.NewTicketUpdate("guild-1", "ticket-mine", "open"))

	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))

	var msg map[string]any
	s.Require().NoError(conn.ReadJSON(&msg))

	// The guild-2 event was filtered out, so the first frame is guild-1's
	s.Equal("guild-1", msg["guild_id"])
	s.Equal("ticket-mine", msg["ticket_id"])
}

func (s *ServerTestSuite) TestWSUnsubscribeStopsDelivery() {
	srv := httptest.NewServer(s.handler)
	defer srv.Close()

	conn := s.dialWS(srv)
	defer conn.Close()

	s.Require().NoError(conn.WriteJSON(wsCommand{Action: "subscribe", GuildID: "guild-1"}))
	time.Sleep(100 * time.Millisecond)
	s.Require().NoError(conn.WriteJSON(wsCommand{Action: "unsubscribe", GuildID: "guild-1"}))
	time.Sleep(100 * time.Millisecond)

	s.eventBus.Publish(events.NewTicketUpdate("guild-1", "ticket-1", "open"))

	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond)))

	var msg map[string]any
	s.Error(conn.ReadJSON(&msg))
}
