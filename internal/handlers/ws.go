package handlers

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"minesweep/internal/game"
)

// timerPeriod paces the elapsed-time frames pushed to a connected
// client while its game is running.
const timerPeriod = 100 * time.Millisecond

type timerFrame struct {
	Elapsed float64 `json:"elapsed"`
	Status  string  `json:"status"`
}

// ConnectWS speaks a line-oriented command protocol over a websocket:
// every batch of commands is answered with a full state frame, and a
// ticker streams elapsed-time frames while the game is in progress.
func (g *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	sessionId, ctrl, ok := g.session(w, r)
	if !ok {
		return
	}
	conn, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Error("upgrade: ", err)
		return
	}
	defer conn.Close()

	var writeMu sync.Mutex
	writeJSON := func(v any) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return conn.WriteJSON(v)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(timerPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if ctrl.Status() != game.InProgress {
					continue
				}
				if err := writeJSON(timerFrame{
					Elapsed: ctrl.Elapsed(),
					Status:  game.InProgress.String(),
				}); err != nil {
					return
				}
			}
		}
	}()

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				g.log.Warn("read: ", err)
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}
		for _, line := range strings.Split(string(message), "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			preview, err := executeCommand(ctrl, line)
			if err != nil {
				if werr := writeJSON(wrapError(err)); werr != nil {
					g.log.Error("write: ", werr)
					return
				}
				continue
			}
			if preview != nil {
				if err := writeJSON(map[string]any{"preview": preview}); err != nil {
					g.log.Error("write: ", err)
					return
				}
			}
		}
		if err := writeJSON(NewGameStateDTO(sessionId, ctrl.Snapshot())); err != nil {
			g.log.Error("write: ", err)
			return
		}
	}
}
