package network

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// PeerID uniquely identifies a connected viewer
type PeerID uint32

// Peer is one websocket viewer with a bounded send queue
type Peer struct {
	ID      PeerID
	Addr    string
	Dropped atomic.Int64

	conn         *websocket.Conn
	writeTimeout time.Duration
	sendCh       chan []byte

	closeCh   chan struct{}
	closeOnce sync.Once
}

func newPeer(id PeerID, conn *websocket.Conn, cfg *Config) *Peer {
	return &Peer{
		ID:           id,
		Addr:         conn.RemoteAddr().String(),
		conn:         conn,
		writeTimeout: cfg.WriteTimeout,
		sendCh:       make(chan []byte, cfg.SendQueueSize),
		closeCh:      make(chan struct{}),
	}
}

// Send queues a frame; a slow viewer loses frames instead of stalling the feed
func (p *Peer) Send(frame []byte) bool {
	select {
	case <-p.closeCh:
		return false
	default:
	}
	select {
	case p.sendCh <- frame:
		return true
	default:
		p.Dropped.Add(1)
		return false
	}
}

// Close initiates shutdown
func (p *Peer) Close() {
	p.closeOnce.Do(func() {
		close(p.closeCh)
		p.conn.Close()
	})
}

// Done is closed once the peer is gone
func (p *Peer) Done() <-chan struct{} { return p.closeCh }

// readLoop drains control frames; viewers send nothing meaningful
func (p *Peer) readLoop() {
	defer p.Close()
	for {
		if _, _, err := p.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (p *Peer) writeLoop() {
	defer p.Close()
	for {
		select {
		case <-p.closeCh:
			return
		case frame := <-p.sendCh:
			p.conn.SetWriteDeadline(time.Now().Add(p.writeTimeout))
			if err := p.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		}
	}
}

// closeWith sends a close frame before dropping the connection
func (p *Peer) closeWith(code int, reason string) {
	msg := websocket.FormatCloseMessage(code, reason)
	p.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	p.Close()
}
