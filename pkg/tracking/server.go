package tracking

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// 连接参数
const (
	TrackPath    = "/track"
	readLimit    = 1 << 16
	pongWait     = 60 * time.Second
	pingInterval = 25 * time.Second
	writeWait    = 10 * time.Second
	shutdownWait = 2 * time.Second
)

// Server 接收追踪端 websocket 连接，把样本写入 Feed
//
// 允许任意来源：追踪页面通常从本地文件或另一个端口打开。
type Server struct {
	feed     *Feed
	addr     string
	upgrader websocket.Upgrader

	// http.Server.Shutdown 不会关闭已升级的连接，由这里跟踪并在关闭时断开
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewServer 创建追踪服务器
//
// 参数：
//   - feed: 样本写入的目标
//   - addr: 监听地址，如 ":8090"
func NewServer(feed *Feed, addr string) *Server {
	return &Server{
		feed:  feed,
		addr:  addr,
		conns: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler 返回挂载了 /track 端点的 http.Handler
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(TrackPath, s.handleTrack)
	return mux
}

// Serve 监听并服务，直到 ctx 取消
// ctx 取消后优雅关闭并返回 nil
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.serveListener(ctx, ln)
}

func (s *Server) serveListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	srv.RegisterOnShutdown(s.closeConns)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWait)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("[Tracking] Listening on %s (ws endpoint: %s)", ln.Addr(), TrackPath)
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleTrack(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Tracking] Upgrade failed: %v", err)
		return
	}
	s.track(conn)
	defer s.untrack(conn)

	log.Printf("[Tracking] Tracker connected from %s", r.RemoteAddr)

	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go pingLoop(conn, done)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[Tracking] Read error: %v", err)
			}
			break
		}
		// 追踪端每条消息都算作活动
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))

		if err := Apply(s.feed, msg); err != nil {
			log.Printf("[Tracking] Skipping malformed message: %v", err)
		}
	}

	log.Printf("[Tracking] Tracker disconnected (%d samples total)", s.feed.Samples())
}

func (s *Server) track(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conns[conn] = struct{}{}
}

func (s *Server) untrack(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
	conn.Close()
}

// closeConns 断开所有追踪连接，阻塞中的 ReadMessage 随之返回
func (s *Server) closeConns() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		conn.Close()
	}
	if len(s.conns) > 0 {
		log.Printf("[Tracking] Closed %d tracker connection(s) on shutdown", len(s.conns))
	}
}

// ActiveConns 当前保持的追踪连接数
func (s *Server) ActiveConns() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// pingLoop 定期发送 ping 保持连接，done 关闭或写入失败时退出
func pingLoop(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
