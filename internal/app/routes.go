package app

import (
	"hash/maphash"
	"math/rand/v2"

	"minesweep/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	auth := handlers.NewAuthHandler(a.log, a.repo, a.cookies)
	scores := handlers.NewScoreHandler(a.log, a.repo)
	games := handlers.NewGameHandler(a.log, a.registry, a.repo, a.ws, createRand)

	a.router.HandleFunc("POST /register", auth.Register)
	a.router.HandleFunc("POST /login", auth.Login)
	a.router.HandleFunc("POST /logout", auth.Logout)

	a.router.HandleFunc("GET /scores", scores.List)

	a.router.HandleFunc("POST /game", games.NewGame)
	a.router.HandleFunc("GET /game/{id}", games.Fetch)
	a.router.HandleFunc("POST /game/{id}/restart", games.Restart)
	a.router.HandleFunc("POST /game/{id}/reveal", games.Reveal)
	a.router.HandleFunc("POST /game/{id}/chord", games.Chord)
	a.router.HandleFunc("POST /game/{id}/mark", games.Mark)
	a.router.HandleFunc("GET /game/{id}/preview", games.Preview)
	a.router.HandleFunc("/game/{id}/connect", games.ConnectWS)
}
