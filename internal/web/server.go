package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Server serves the spectator page, the latest frame, and the frame stream.
type Server struct {
	hub    *Hub
	router *mux.Router
}

// NewServer returns a server publishing frames from hub.
func NewServer(hub *Hub) *Server {
	s := &Server{hub: hub, router: mux.NewRouter()}
	s.router.HandleFunc("/", s.serveIndex).Methods(http.MethodGet)
	s.router.HandleFunc("/frame", s.serveFrame).Methods(http.MethodGet)
	s.router.HandleFunc("/ws", s.serveWebsocket)
	return s
}

// Handler returns the routed http handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is done. A shutdown caused by ctx
// is not an error.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("spectator stream on http://%s/", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	_, _ = w.Write([]byte(indexPage))
}

func (s *Server) serveFrame(w http.ResponseWriter, r *http.Request) {
	f, ok := s.hub.Latest()
	if !ok {
		http.Error(w, "no frame published yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(f); err != nil {
		log.Println("frame:", err)
	}
}

func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	cli := newClient(ws, s.hub)
	defer cli.close()
	if err := cli.sync(r.Context()); err != nil {
		log.Println("spectator:", err)
	}
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>wireworld</title></head>
<body style="background:#111;color:#ccc;font-family:monospace">
<div id="status">connecting</div>
<canvas id="grid"></canvas>
<script>
const colours = {".": "#000", "H": "#3c78ff", "t": "#ff4628", "#": "#ffc81e"};
const canvas = document.getElementById("grid");
const ctx = canvas.getContext("2d");
const status = document.getElementById("status");
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = (msg) => {
  const f = JSON.parse(msg.data);
  const scale = Math.max(2, Math.floor(Math.min(800 / f.columns, 800 / f.rows)));
  canvas.width = f.columns * scale;
  canvas.height = f.rows * scale;
  for (let i = 0; i < f.cells.length; i++) {
    ctx.fillStyle = colours[f.cells[i]] || "#000";
    ctx.fillRect((i % f.columns) * scale, Math.floor(i / f.columns) * scale, scale, scale);
  }
  status.textContent = "tick " + f.tick + (f.running ? " running" : " idle");
};
ws.onclose = () => { status.textContent = "disconnected"; };
</script>
</body>
</html>
`
