package handlers

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"minesweep/internal/config"
	"minesweep/internal/game"
	"minesweep/internal/middleware"
	"minesweep/internal/mines"
	"minesweep/internal/repository"
)

type GameHandler struct {
	log      *logrus.Logger
	registry *game.Registry
	repo     *repository.Queries
	ws       *config.WebSocket
	newRand  func() *rand.Rand
}

func NewGameHandler(
	log *logrus.Logger,
	registry *game.Registry,
	repo *repository.Queries,
	ws *config.WebSocket,
	newRand func() *rand.Rand,
) *GameHandler {
	return &GameHandler{
		log:      log,
		registry: registry,
		repo:     repo,
		ws:       ws,
		newRand:  newRand,
	}
}

// scoreWriter forwards won-game scores to the history table. Storage
// errors are logged and swallowed: losing a score never fails the game.
type scoreWriter struct {
	log      *logrus.Logger
	repo     *repository.Queries
	playerId *int64
}

func (s scoreWriter) RecordScore(score game.Score) {
	if s.repo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := s.repo.CreateScore(ctx, repository.CreateScoreParams{
		PlayerId:       s.playerId,
		Difficulty:     score.Difficulty.String(),
		ElapsedSeconds: score.Elapsed,
		RecordedAt:     score.RecordedAt,
	})
	if err != nil {
		s.log.Error("unable to record score: ", err)
	}
}

func (g *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	difficulty, err := ParseNewGameParams(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	sink := scoreWriter{log: g.log, repo: g.repo}
	if claims, ok := middleware.PlayerClaims(r.Context()); ok {
		g.log.Debug("creating session for player ", claims.Username)
		sink.playerId = &claims.PlayerId
	} else {
		g.log.Debug("creating anonymous session")
	}

	ctrl := game.New(difficulty, g.newRand(), sink)
	sessionId := g.registry.Add(ctrl)

	sendJSONOrLog(w, g.log, NewGameStateDTO(sessionId, ctrl.Snapshot()))
}

func (g *GameHandler) session(w http.ResponseWriter, r *http.Request) (string, *game.Controller, bool) {
	sessionId := r.PathValue("id")
	ctrl, err := g.registry.Get(sessionId)
	if errors.Is(err, game.ErrSessionNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return "", nil, false
	}
	return sessionId, ctrl, true
}

func (g *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	sessionId, ctrl, ok := g.session(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.log, NewGameStateDTO(sessionId, ctrl.Snapshot()))
}

func (g *GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	sessionId, ctrl, ok := g.session(w, r)
	if !ok {
		return
	}
	difficulty, err := ParseNewGameParams(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}
	ctrl.Start(difficulty)
	sendJSONOrLog(w, g.log, NewGameStateDTO(sessionId, ctrl.Snapshot()))
}

// move runs one board action. Invalid coordinates or a finished game are
// silent no-ops: the response is simply the unchanged state.
func (g *GameHandler) move(
	w http.ResponseWriter, r *http.Request,
	action func(ctrl *game.Controller, row, col int),
) {
	sessionId, ctrl, ok := g.session(w, r)
	if !ok {
		return
	}
	pos, err := ParsePosition(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}
	action(ctrl, pos.Row, pos.Col)
	sendJSONOrLog(w, g.log, NewGameStateDTO(sessionId, ctrl.Snapshot()))
}

func (g *GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	g.move(w, r, func(ctrl *game.Controller, row, col int) {
		ctrl.Reveal(row, col)
	})
}

func (g *GameHandler) Chord(w http.ResponseWriter, r *http.Request) {
	g.move(w, r, func(ctrl *game.Controller, row, col int) {
		ctrl.Chord(row, col)
	})
}

func (g *GameHandler) Mark(w http.ResponseWriter, r *http.Request) {
	g.move(w, r, func(ctrl *game.Controller, row, col int) {
		ctrl.Mark(row, col)
	})
}

func (g *GameHandler) Preview(w http.ResponseWriter, r *http.Request) {
	_, ctrl, ok := g.session(w, r)
	if !ok {
		return
	}
	pos, err := ParsePosition(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}
	preview := ctrl.PreviewChord(pos.Row, pos.Col)
	if preview == nil {
		preview = []mines.Point{}
	}
	sendJSONOrLog(w, g.log, map[string][]mines.Point{"preview": preview})
}
