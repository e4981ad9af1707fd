package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"minesweep/internal/mines"
	"minesweep/internal/repository"
)

type ScoreHandler struct {
	log  *logrus.Logger
	repo *repository.Queries
}

func NewScoreHandler(log *logrus.Logger, repo *repository.Queries) *ScoreHandler {
	return &ScoreHandler{log: log, repo: repo}
}

type scoreListParams struct {
	Difficulty *string `schema:"difficulty"`
	Username   *string `schema:"username"`
}

// List serves the win history, fastest first. A broken or unreachable
// store degrades to an empty history rather than an error.
func (s *ScoreHandler) List(w http.ResponseWriter, r *http.Request) {
	var params scoreListParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, s.log, wrapError(err))
		return
	}
	if params.Difficulty != nil {
		if _, err := mines.ParseDifficulty(*params.Difficulty); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, s.log, wrapError(err))
			return
		}
	}

	scores, err := s.repo.ListScores(r.Context(), repository.ScoreFilter{
		Username:   params.Username,
		Difficulty: params.Difficulty,
	})
	if err != nil {
		s.log.Error("unable to list scores, serving empty history: ", err)
		scores = nil
	}
	if scores == nil {
		scores = []repository.Score{}
	}
	sendJSONOrLog(w, s.log, scores)
}
