package shell

import (
	"net/http"
	"time"

	"lost-found-pets/internal/platform/logger"
	"lost-found-pets/internal/store"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// Solo se sirve en local; cualquier origen del navegador es aceptado.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// changesHandler godoc
// @Summary Cambios en vivo
// @Description Websocket que emite {"slice": "..."} cada vez que una parte del estado cambia y se persiste.
// @Tags shell
// @Success 101 {object} store.Change
// @Router /ws [get]
func changesHandler(log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := store.FromContext(r.Context())

		// suscribir antes del handshake: nada se pierde entre ambos
		changes, cancel := st.Subscribe()
		defer cancel()

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade ya respondió con el error
			log.Debug("websocket upgrade failed", map[string]any{"error": err})
			return
		}
		defer conn.Close()

		// el server deja deadlines del request en la conexión hijackeada
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})

		// el cliente no manda nada; leer solo sirve para detectar el cierre
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ping := time.NewTicker(pingPeriod)
		defer ping.Stop()

		for {
			select {
			case <-closed:
				return
			case <-r.Context().Done():
				return
			case c, ok := <-changes:
				if !ok {
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(c); err != nil {
					log.Debug("websocket write failed", map[string]any{"error": err})
					return
				}
			case <-ping.C:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}
}
