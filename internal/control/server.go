package control

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/alucardeht/dirdoc/internal/history"
	"github.com/alucardeht/dirdoc/internal/logger"
	"github.com/alucardeht/dirdoc/internal/watcher"
	"github.com/alucardeht/dirdoc/pkg/protocol"
)

const (
	MethodStatus     = "watcher/status"
	MethodRegenerate = "watcher/regenerate"
	MethodShutdown   = "watcher/shutdown"
)

// Server exposes a running watcher over a unix domain socket. Local IPC
// only; there is no network interface.
type Server struct {
	listener  *SocketListener
	poller    *watcher.Poller
	history   *history.Store
	shutdown  func()
	log       *slog.Logger
	startTime time.Time

	conns  map[*jsonrpc2.Conn]bool
	connMu sync.Mutex
	closed chan struct{}
	once   sync.Once
}

// NewServer wires the control surface. history may be nil; shutdown is
// invoked when a client asks the watcher to stop.
func NewServer(socketPath string, poller *watcher.Poller, hist *history.Store, shutdown func()) *Server {
	return &Server{
		listener:  NewSocketListener(socketPath),
		poller:    poller,
		history:   hist,
		shutdown:  shutdown,
		log:       logger.ForComponent("control"),
		startTime: time.Now(),
		conns:     make(map[*jsonrpc2.Conn]bool),
		closed:    make(chan struct{}),
	}
}

func (s *Server) Start() error {
	if err := s.listener.Start(); err != nil {
		return err
	}

	go s.acceptConnections()
	return nil
}

func (s *Server) acceptConnections() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.closed:
				return
			default:
				continue
			}
		}

		stream := jsonrpc2.NewBufferedStream(conn, jsonrpc2.PlainObjectCodec{})
		rpcConn := jsonrpc2.NewConn(context.Background(), stream, jsonrpc2.HandlerWithError(s.handle))

		s.connMu.Lock()
		s.conns[rpcConn] = true
		s.connMu.Unlock()

		go func() {
			<-rpcConn.DisconnectNotify()
			s.connMu.Lock()
			delete(s.conns, rpcConn)
			s.connMu.Unlock()
		}()
	}
}

func (s *Server) handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (interface{}, error) {
	switch req.Method {
	case MethodStatus:
		return s.status(), nil

	case MethodRegenerate:
		s.poller.RequestRegenerate()
		return &protocol.RegenerateResponse{Requested: true}, nil

	case MethodShutdown:
		s.log.Info("shutdown requested over control socket")
		// Give the reply a moment to flush before tearing down.
		time.AfterFunc(100*time.Millisecond, s.shutdown)
		return &protocol.ShutdownResponse{Stopping: true}, nil

	default:
		return nil, &jsonrpc2.Error{
			Code:    jsonrpc2.CodeMethodNotFound,
			Message: "unknown method: " + req.Method,
		}
	}
}

func (s *Server) status() *protocol.StatusResponse {
	stats := s.poller.Stats()

	resp := &protocol.StatusResponse{
		PID:           os.Getpid(),
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
		Iterations:    stats.Iterations,
		Regenerations: stats.Regenerations,
		TrackedFiles:  stats.TrackedFiles,
	}

	if s.history != nil {
		if last, err := s.history.LastRun(); err == nil && last != nil {
			resp.LastRun = &protocol.RunSummary{
				StartedAt:  last.StartedAt,
				DurationMS: last.Duration.Milliseconds(),
				Reason:     last.Reason,
				Status:     last.Status,
				Error:      last.Error,
			}
		}
	}

	return resp
}

func (s *Server) Close() error {
	var err error
	s.once.Do(func() {
		close(s.closed)
		err = s.listener.Close()

		s.connMu.Lock()
		for conn := range s.conns {
			conn.Close()
		}
		s.connMu.Unlock()
	})
	return err
}
