// Package network serves read-only world snapshots to remote viewers over websocket
package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/resonance-arena/engine"
)

var ErrFeedRunning = errors.New("feed already running")

// Frame is the envelope of every message sent to viewers
type Frame struct {
	Type string `json:"type"`
	Tick uint64 `json:"tick,omitempty"`
	Data any    `json:"data"`
}

// Feed fans snapshots out to websocket viewers
type Feed struct {
	config   *Config
	log      logrus.FieldLogger
	upgrader websocket.Upgrader

	mu     sync.RWMutex
	peers  map[PeerID]*Peer
	nextID atomic.Uint32

	server   *http.Server
	listener net.Listener
	running  atomic.Bool

	statFrames  *atomic.Int64
	statPeers   *atomic.Int64
	statDropped *atomic.Int64
}

func NewFeed(cfg *Config, world *engine.World, log logrus.FieldLogger) *Feed {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Feed{
		config: cfg,
		log:    log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		peers:       make(map[PeerID]*Peer),
		statFrames:  world.Status.Ints.Get("feed.frames"),
		statPeers:   world.Status.Ints.Get("feed.peers"),
		statDropped: world.Status.Ints.Get("feed.dropped"),
	}
}

// ServeHTTP upgrades a viewer connection
func (f *Feed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.log.WithError(err).Debug("feed upgrade failed")
		return
	}
	peer := newPeer(PeerID(f.nextID.Add(1)), conn, f.config)

	f.mu.Lock()
	if len(f.peers) >= f.config.MaxPeers {
		f.mu.Unlock()
		peer.closeWith(websocket.ClosePolicyViolation, "feed full")
		return
	}
	f.peers[peer.ID] = peer
	f.statPeers.Store(int64(len(f.peers)))
	f.mu.Unlock()

	f.log.WithField("peer", peer.ID).WithField("addr", peer.Addr).Info("viewer connected")
	go peer.writeLoop()
	go f.monitor(peer)
	peer.readLoop()
}

// monitor removes a peer once its connection ends
func (f *Feed) monitor(p *Peer) {
	<-p.Done()
	f.mu.Lock()
	delete(f.peers, p.ID)
	f.statPeers.Store(int64(len(f.peers)))
	f.mu.Unlock()
	f.statDropped.Add(p.Dropped.Load())
	f.log.WithField("peer", p.ID).Info("viewer disconnected")
}

// Broadcast encodes a frame once and queues it on every peer
func (f *Feed) Broadcast(frame Frame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("encoding %s frame: %w", frame.Type, err)
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, p := range f.peers {
		p.Send(data)
	}
	f.statFrames.Add(1)
	return nil
}

// BroadcastSnapshot sends one world snapshot
func (f *Feed) BroadcastSnapshot(s *engine.Snapshot) error {
	return f.Broadcast(Frame{Type: "snapshot", Tick: s.Tick, Data: s})
}

// BroadcastStatus sends the world's counters
func (f *Feed) BroadcastStatus(tick uint64, counters map[string]int64) error {
	return f.Broadcast(Frame{Type: "status", Tick: tick, Data: counters})
}

// PeerCount returns connected viewers
func (f *Feed) PeerCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.peers)
}

// Start listens on the configured address in the background
func (f *Feed) Start() error {
	if !f.running.CompareAndSwap(false, true) {
		return ErrFeedRunning
	}
	ln, err := net.Listen("tcp", f.config.Addr)
	if err != nil {
		f.running.Store(false)
		return fmt.Errorf("feed listen on %s: %w", f.config.Addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle(f.config.Path, f)
	f.listener = ln
	f.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := f.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			f.log.WithError(err).Error("feed server stopped")
		}
	}()
	f.log.WithField("addr", ln.Addr().String()).Info("snapshot feed listening")
	return nil
}

// Addr returns the bound address, empty before Start
func (f *Feed) Addr() string {
	if f.listener == nil {
		return ""
	}
	return f.listener.Addr().String()
}

// Stop closes the listener and every peer
func (f *Feed) Stop(ctx context.Context) error {
	if !f.running.CompareAndSwap(true, false) {
		return nil
	}
	err := f.server.Shutdown(ctx)

	f.mu.Lock()
	peers := make([]*Peer, 0, len(f.peers))
	for _, p := range f.peers {
		peers = append(peers, p)
	}
	f.mu.Unlock()
	for _, p := range peers {
		p.closeWith(websocket.CloseGoingAway, "shutdown")
	}
	return err
}

// Run broadcasts world snapshots at the configured rate until ctx ends
// Counters follow once per second; nothing is sent while nobody is watching
func (f *Feed) Run(ctx context.Context, world *engine.World) {
	rate := max(1, f.config.Rate)
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	var lastTick uint64
	sent := false
	frames := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if f.PeerCount() == 0 {
				continue
			}
			snap := world.Snapshot()
			if sent && snap.Tick == lastTick {
				continue
			}
			lastTick, sent = snap.Tick, true
			if err := f.BroadcastSnapshot(snap); err != nil {
				f.log.WithError(err).Warn("snapshot broadcast failed")
			}
			frames++
			if frames%rate == 0 {
				if err := f.BroadcastStatus(snap.Tick, world.Status.Snapshot()); err != nil {
					f.log.WithError(err).Warn("status broadcast failed")
				}
			}
		}
	}
}
