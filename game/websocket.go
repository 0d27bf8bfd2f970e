package game

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = time.Minute
	pingPeriod = 30 * time.Second
)

// websocketConnection adapts a gorilla connection to the Connection interface.
// Broadcasts and error replies write from different goroutines, so writes are
// serialized with a mutex.
type websocketConnection struct {
	socket      *websocket.Conn
	writeLocker sync.Mutex
}

func NewWebsocketConnection(conn *websocket.Conn) *websocketConnection {
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(appData string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	return &websocketConnection{socket: conn}
}

func (wc *websocketConnection) Send(data []byte) error {
	wc.writeLocker.Lock()
	defer wc.writeLocker.Unlock()

	wc.socket.SetWriteDeadline(time.Now().Add(writeWait))
	return wc.socket.WriteMessage(websocket.TextMessage, data)
}

func (wc *websocketConnection) Ping() error {
	wc.writeLocker.Lock()
	defer wc.writeLocker.Unlock()

	wc.socket.SetWriteDeadline(time.Now().Add(writeWait))
	return wc.socket.WriteMessage(websocket.PingMessage, nil)
}

func (wc *websocketConnection) Close(reason string) {
	wc.writeLocker.Lock()
	wc.socket.SetWriteDeadline(time.Now().Add(writeWait))
	wc.socket.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason))
	wc.writeLocker.Unlock()
	wc.socket.Close()
}

// ServeConnection pumps inbound envelopes into the orchestrator until the
// transport closes, then runs disconnect cleanup. It blocks for the lifetime
// of the connection.
func (s *Service) ServeConnection(ctx context.Context, wc *websocketConnection) {
	stopPings := make(chan struct{})
	defer func() {
		close(stopPings)
		s.HandleDisconnect(context.Background(), wc)
		wc.socket.Close()
	}()

	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if wc.Ping() != nil {
					return
				}
			case <-stopPings:
				return
			}
		}
	}()

	for {
		_, data, err := wc.socket.ReadMessage()
		if err != nil {
			return
		}
		s.HandleMessage(ctx, wc, data)
	}
}
