package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/matthewfinger/solitaire-lightweight/engine"
	"github.com/matthewfinger/solitaire-lightweight/game"
	"github.com/matthewfinger/solitaire-lightweight/protocol"
	"github.com/matthewfinger/solitaire-lightweight/store"
	"k8s.io/klog/v2"
)

const requestTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewGameReq optionally overrides the server's drag mode for one game
type NewGameReq struct {
	DragMode *bool `json:"drag_mode,omitempty"`
}

// ServerOpts configures the games a GameServer deals
type ServerOpts struct {
	Layout         game.Layout
	DragMode       bool
	Seed           int64
	SessionIdle    time.Duration
	AllowedOrigins []string
}

// GameServer is a game server
type GameServer struct {
	store  store.GameStore
	opts   ServerOpts
	ctx    context.Context
	cancel context.CancelFunc
	http.Server
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// klogWriter sends access log lines to klog
type klogWriter struct{}

func (klogWriter) Write(p []byte) (int, error) {
	klog.V(1).Info(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// NewServer creates a new GameServer
func NewServer(s store.GameStore, opts ServerOpts) *GameServer {
	g := new(GameServer)
	g.store = s
	g.opts = opts
	g.ctx, g.cancel = context.WithCancel(context.Background())

	router := http.NewServeMux()
	router.Handle("/healthz", http.HandlerFunc(g.HandleHealth))
	router.Handle("/new", http.HandlerFunc(g.HandleNewGame))
	router.Handle("/game/", http.HandlerFunc(g.HandleFindGame))
	router.Handle("/ws", http.HandlerFunc(g.HandleWS))

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cors := handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	g.Handler = handlers.LoggingHandler(klogWriter{}, cors(router))

	return g
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// Close ends every game session and closes the listener
func (g *GameServer) Close() error {
	g.cancel()
	return g.Server.Close()
}

// Shutdown ends every game session and gracefully shuts the server down
func (g *GameServer) Shutdown(ctx context.Context) error {
	g.cancel()
	return g.Server.Shutdown(ctx)
}

func (g *GameServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

// HandleNewGame deals a new game and responds with its table
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil && err != io.EOF {
		writeParseError(err, w, r)
		return
	}

	dragMode := g.opts.DragMode
	if data.DragMode != nil {
		dragMode = *data.DragMode
	}

	ge, err := g.newGame(dragMode)
	if err != nil {
		klog.Errorf("could not create game: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	klog.Infof("created game %s", ge.ID())

	g.respond(w, r, ge, http.StatusCreated)
}

// HandleFindGame responds with the table of an existing game
func (g *GameServer) HandleFindGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := strings.TrimPrefix(r.URL.Path, "/game/")
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	ge, err := g.store.FindGame(gameID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	g.respond(w, r, ge, http.StatusOK)
}

// HandleWS attaches a websocket client to an existing game
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	vals, ok := query["game_id"]
	if !ok || len(vals) != 1 {
		klog.V(1).Info("ws: missing game ID")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}
	gameID := vals[0]

	ge, err := g.store.FindGame(gameID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied
		klog.Errorf("ws: could not upgrade: %v", err)
		return
	}

	c := newClient(g.ctx, conn, ge)
	go c.writePump()
	go c.readPump()
}

func (g *GameServer) newGame(dragMode bool) (engine.GameEngine, error) {
	ge, err := engine.NewGameEngine(engine.GameEngineOpts{
		GameID:      store.NewID(),
		Seed:        g.opts.Seed,
		Layout:      g.opts.Layout,
		DragMode:    dragMode,
		IdleTimeout: g.opts.SessionIdle,
	})
	if err != nil {
		return nil, err
	}

	if err := g.store.AddGame(ge); err != nil {
		return nil, err
	}
	go ge.Listen(g.ctx)

	return ge, nil
}

// respond writes the current table of ge
func (g *GameServer) respond(w http.ResponseWriter, r *http.Request, ge engine.GameEngine, status int) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	out, err := ge.Receive(ctx, protocol.InboundMessage{Command: protocol.State})
	if errors.Is(err, engine.ErrSessionClosed) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(ge.ID())))
		return
	}
	if err != nil {
		klog.Errorf("game %s: %v", ge.ID(), err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	bytes, err := json.Marshal(out)
	if err != nil {
		klog.Errorf("game %s: %v", ge.ID(), err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func writeParseError(err error, w http.ResponseWriter, r *http.Request) {
	klog.V(1).Infof("%s %s: %v", r.Method, r.URL.Path, err)
	w.Header().Add("Content-Type", "text/plain")
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte("could not parse request body"))
}

// Run listens on addr until ctx is done, then shuts the server down
func Run(ctx context.Context, g *GameServer, addr string) error {
	g.Addr = addr
	errCh := make(chan error, 1)

	go func() {
		klog.Infof("listening on %s", addr)
		errCh <- g.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		g.cancel()
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	klog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := g.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("could not shut down: %w", err)
	}
	return nil
}
