package server

import (
	"time"

	"github.com/gorilla/websocket"
)

// ReadLoop reads client messages and queues them for EventLoop. A full
// queue drops the message with a warning.
func (s *LiveSession) ReadLoop() {
	defer s.Close()

	s.conn.SetReadLimit(s.config.ReadLimit)
	s.conn.SetReadDeadline(time.Now().Add(s.config.IdleTimeout))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.config.IdleTimeout))
	})

	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		s.conn.SetReadDeadline(time.Now().Add(s.config.IdleTimeout))
		s.bytesRecv.Add(int64(len(msg)))

		select {
		case s.inbox <- msg:
		case <-s.done:
			return
		default:
			s.logger.Warn("event queue full, message dropped", "bytes", len(msg))
		}
	}
}

// WriteLoop sends heartbeat pings until the session closes.
func (s *LiveSession) WriteLoop() {
	ticker := time.NewTicker(s.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				s.Close()
				return
			}
		case <-s.done:
			return
		}
	}
}
