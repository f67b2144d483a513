package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	utils "github.com/matthewfinger/solitaire-lightweight/internal"
	"github.com/matthewfinger/solitaire-lightweight/protocol"
	"github.com/matthewfinger/solitaire-lightweight/store"
)

const wsTestTimeout = time.Second

func newTestServer(t *testing.T, opts ServerOpts) (*GameServer, *store.InMemoryGameStore) {
	t.Helper()
	if opts.Seed == 0 {
		opts.Seed = 1
	}
	str := store.NewInMemoryGameStore()
	server := NewServer(str, opts)
	t.Cleanup(func() { server.Close() })
	return server, str
}

func newCreateGameRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/new", bytes.NewBuffer(data))
	return request
}

func newGetGameRequest(gameID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/game/"+gameID, nil)
	return request
}

// mustCreateGame creates a game through the API and returns its id
func mustCreateGame(t *testing.T, server *GameServer) string {
	t.Helper()

	response := httptest.NewRecorder()
	server.ServeHTTP(response, newCreateGameRequest(nil))
	assertStatus(t, response.Code, http.StatusCreated)

	got := mustDecodeOutbound(t, response.Body)
	if got.GameID == "" {
		t.Fatal("expected a game id")
	}
	return got.GameID
}

func mustDecodeOutbound(t *testing.T, body io.Reader) protocol.OutboundMessage {
	t.Helper()

	bodyBytes, err := io.ReadAll(body)
	utils.AssertNoError(t, err)

	var got protocol.OutboundMessage
	if err := json.Unmarshal(bodyBytes, &got); err != nil {
		t.Fatalf("could not unmarshal json: %s", err.Error())
	}
	return got
}

func mustDialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		code := 0
		var body []byte
		if resp != nil {
			code = resp.StatusCode
			body, _ = io.ReadAll(resp.Body)
		}
		t.Fatalf("could not open a ws connection on %s, code %d: %s, %v", url, code, body, err)
	}
	t.Cleanup(func() { ws.Close() })

	return ws
}

func makeWSUrl(serverURL, gameID string) string {
	return "ws" + strings.TrimPrefix(serverURL, "http") + "/ws?game_id=" + gameID
}

func mustSendWS(t *testing.T, ws *websocket.Conn, msg protocol.InboundMessage) protocol.OutboundMessage {
	t.Helper()

	if err := ws.WriteJSON(msg); err != nil {
		t.Fatalf("could not send %v: %v", msg, err)
	}
	return mustReadWS(t, ws)
}

func mustReadWS(t *testing.T, ws *websocket.Conn) protocol.OutboundMessage {
	t.Helper()

	ws.SetReadDeadline(time.Now().Add(wsTestTimeout))
	var got protocol.OutboundMessage
	if err := ws.ReadJSON(&got); err != nil {
		t.Fatalf("could not read from ws: %v", err)
	}
	return got
}

// ASSERTIONS

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}
