package handlers

import (
	"net/url"

	"github.com/gorilla/schema"

	"minesweep/internal/game"
	"minesweep/internal/mines"
)

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

type NewGameParams struct {
	Difficulty string `schema:"difficulty,required"`
}

func ParseNewGameParams(query url.Values) (mines.Difficulty, error) {
	var params NewGameParams
	if err := dec.Decode(&params, query); err != nil {
		return 0, err
	}
	return mines.ParseDifficulty(params.Difficulty)
}

type PositionParams struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

func ParsePosition(query url.Values) (PositionParams, error) {
	var pos PositionParams
	err := dec.Decode(&pos, query)
	return pos, err
}

// GameStateDTO is one full frame of game state for a client renderer.
type GameStateDTO struct {
	SessionId  string         `json:"session_id"`
	Difficulty string         `json:"difficulty"`
	Rows       int            `json:"rows"`
	Cols       int            `json:"cols"`
	MineCount  int            `json:"mine_count"`
	Grid       mines.GridView `json:"grid"`
	New        []mines.Point  `json:"new,omitempty"`
	Status     string         `json:"status"`
	Highlight  []mines.Point  `json:"highlight,omitempty"`
	Elapsed    float64        `json:"elapsed"`
}

func NewGameStateDTO(sessionId string, snap game.Snapshot) GameStateDTO {
	return GameStateDTO{
		SessionId:  sessionId,
		Difficulty: snap.Difficulty.String(),
		Rows:       snap.Rows,
		Cols:       snap.Cols,
		MineCount:  snap.MineCount,
		Grid:       snap.Grid,
		New:        snap.New,
		Status:     snap.Status.String(),
		Highlight:  snap.Highlight,
		Elapsed:    snap.Elapsed,
	}
}
