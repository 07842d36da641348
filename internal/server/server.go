// Package server implements the local preview server: it serves the site
// tree with the same extensionless routes as the production web server and
// reloads connected browsers over WebSocket when site files change.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/coder/websocket"

	"github.com/autonomy414941/devtoolbox/internal/config"
	"github.com/autonomy414941/devtoolbox/internal/logging"
	"github.com/autonomy414941/devtoolbox/internal/watcher"
)

const reloadEndpoint = "/__devtoolbox/reload"

// reloadScript is injected into served HTML pages; it reloads the page when
// the server broadcasts a change.
const reloadScript = `<script>
(function () {
    const proto = location.protocol === "https:" ? "wss" : "ws";
    const socket = new WebSocket(proto + "://" + location.host + "` + reloadEndpoint + `");
    socket.onmessage = function () { location.reload(); };
})();
</script>`

// PreviewServer serves the site root locally with live reload.
type PreviewServer struct {
	cfg    *config.Config
	logger logging.Logger
	hub    *reloadHub
}

// New creates a preview server.
func New(cfg *config.Config, logger logging.Logger) *PreviewServer {
	return &PreviewServer{
		cfg:    cfg,
		logger: logger.WithComponent("server"),
		hub:    newReloadHub(),
	}
}

// Serve runs the preview server and the site watcher until ctx is
// cancelled.
func (s *PreviewServer) Serve(ctx context.Context) error {
	fw, err := watcher.NewFileWatcher(300 * time.Millisecond)
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fw.Stop()

	fw.AddFilter(watcher.SiteContentFilter)
	fw.AddHandler(func(events []watcher.ChangeEvent) {
		s.logger.Debug(ctx, "site changed", "files", len(events))
		s.hub.broadcast(ctx, []byte("reload"))
	})
	if err := fw.AddRecursive(s.cfg.Site.Root); err != nil {
		return fmt.Errorf("watching site root: %w", err)
	}
	go fw.Start(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc(reloadEndpoint, s.handleReloadSocket)
	mux.HandleFunc("/", s.handlePage)

	addr := fmt.Sprintf("%s:%d", s.cfg.Serve.Host, s.cfg.Serve.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info(ctx, "preview server listening", "addr", "http://"+addr, "root", s.cfg.Site.Root)

	select {
	case <-ctx.Done():
		s.hub.closeAll()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *PreviewServer) handleReloadSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// Local preview only; the page connects from its own origin.
		OriginPatterns: []string{"localhost:*", "127.0.0.1:*"},
	})
	if err != nil {
		s.logger.Warn(r.Context(), err, "websocket accept failed")
		return
	}
	s.hub.register(conn)

	// Hold the connection open; the client never sends anything we need.
	ctx := r.Context()
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			s.hub.unregister(conn)
			conn.Close(websocket.StatusNormalClosure, "")
			return
		}
	}
}

// handlePage serves files with the production server's route mapping:
// "/" -> index.html, "/blog/" -> blog/index.html, "/tools/base64" ->
// tools/base64.html. HTML responses get the reload script injected.
func (s *PreviewServer) handlePage(w http.ResponseWriter, r *http.Request) {
	file, ok := s.resolve(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if strings.HasSuffix(file, ".html") {
		content, err := os.ReadFile(file)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		page := string(content)
		if strings.Contains(page, "</body>") {
			page = strings.Replace(page, "</body>", reloadScript+"\n</body>", 1)
		} else {
			page += reloadScript
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
		return
	}

	http.ServeFile(w, r, file)
}

func (s *PreviewServer) resolve(urlPath string) (string, bool) {
	cleaned := filepath.Clean("/" + urlPath)
	candidate := filepath.Join(s.cfg.Site.Root, cleaned)

	// Keep requests inside the site root.
	root, err := filepath.Abs(s.cfg.Site.Root)
	if err != nil {
		return "", false
	}
	abs, err := filepath.Abs(candidate)
	if err != nil || (abs != root && !strings.HasPrefix(abs, root+string(filepath.Separator))) {
		return "", false
	}

	if info, err := os.Stat(candidate); err == nil {
		if info.IsDir() {
			index := filepath.Join(candidate, "index.html")
			if _, err := os.Stat(index); err == nil {
				return index, true
			}
			return "", false
		}
		return candidate, true
	}

	withExt := candidate + ".html"
	if _, err := os.Stat(withExt); err == nil {
		return withExt, true
	}
	return "", false
}
