package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/matthewfinger/solitaire-lightweight/engine"
	uuid "github.com/satori/go.uuid"
	"k8s.io/klog/v2"
)

var (
	ErrUnknownGameID      = errors.New("unknown game ID")
	ErrFnGameAlreadyAdded = func(gameID string) error {
		return fmt.Errorf("game with id \"%s\" already exists", gameID)
	}
)

// NewID constructs a game ID
func NewID() string {
	return uuid.NewV4().String()
}

type GameStore interface {
	FindGame(gameID string) (engine.GameEngine, error)
	AddGame(game engine.GameEngine) error
	RemoveGame(gameID string)
	Len() int
}

// InMemoryGameStore maps game id to game engine
type InMemoryGameStore struct {
	mu    sync.RWMutex
	Games map[string]engine.GameEngine
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		Games: map[string]engine.GameEngine{},
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) (engine.GameEngine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.Games[gameID]
	if !ok {
		return nil, ErrUnknownGameID
	}
	return game, nil
}

// AddGame stores a game. The game is dropped from the store once its session ends.
func (s *InMemoryGameStore) AddGame(game engine.GameEngine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.Games[game.ID()]; exists {
		return ErrFnGameAlreadyAdded(game.ID())
	}
	s.Games[game.ID()] = game

	go func() {
		<-game.Done()
		s.remove(game)
	}()

	return nil
}

// RemoveGame forgets a game and ends its session
func (s *InMemoryGameStore) RemoveGame(gameID string) {
	s.mu.Lock()
	game, ok := s.Games[gameID]
	delete(s.Games, gameID)
	s.mu.Unlock()

	if ok {
		game.Close()
	}
}

// remove deletes game only if the id still refers to it
func (s *InMemoryGameStore) remove(game engine.GameEngine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Games[game.ID()] == game {
		delete(s.Games, game.ID())
		klog.V(1).Infof("store: removed finished game %s", game.ID())
	}
}

func (s *InMemoryGameStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.Games)
}
