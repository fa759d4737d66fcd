package commands

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/bindcov/bindcov/internal/cli/config"
	"github.com/bindcov/bindcov/internal/registry"
	"github.com/bindcov/bindcov/internal/report"
	"github.com/bindcov/bindcov/pkg/checklist"
)

// serveOptions holds the serve command flags.
type serveOptions struct {
	port  int
	watch bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a coverage dashboard",
		Long: `Start a local web server showing binding coverage. With --watch the
dashboard rebuilds whenever the checklist file changes.`,
		Example: `  # Serve on the default port
  bindcov serve

  # Rebuild on checklist edits
  bindcov serve --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.port, "port", 0, fmt.Sprintf("Port to serve on (default: %d)", config.DefaultServePort))
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Rebuild when the checklist changes")

	return cmd
}

func runServe(cmd *cobra.Command, opts *serveOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	port := cfg.Serve.Port
	if opts.port != 0 {
		port = opts.port
	}
	watch := cfg.Serve.Watch || opts.watch

	srv, err := newCoverageServer(cfg.Checklist, cmdCtx.Logger)
	if err != nil {
		return err
	}

	cmdCtx.Renderer.Printf("serving coverage dashboard on http://localhost:%d\n", port)
	return srv.serve(cmd.Context(), port, watch)
}

// coverageServer serves the current coverage report over HTTP.
type coverageServer struct {
	checklistPath string
	logger        *slog.Logger

	mu  sync.RWMutex
	rep *report.Report
}

func newCoverageServer(checklistPath string, logger *slog.Logger) (*coverageServer, error) {
	s := &coverageServer{
		checklistPath: checklistPath,
		logger:        logger,
	}
	if err := s.rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

// rebuild reparses the checklist and swaps in a fresh report.
func (s *coverageServer) rebuild() error {
	doc, err := checklist.ParseFile(s.checklistPath)
	if err != nil {
		return err
	}
	rep := report.New(registry.Load(doc), doc.Meta)

	s.mu.Lock()
	s.rep = rep
	s.mu.Unlock()
	return nil
}

func (s *coverageServer) report() *report.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rep
}

// serve runs the HTTP server until ctx is cancelled.
func (s *coverageServer) serve(ctx context.Context, port int, watch bool) error {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleIndex)
	r.Get("/api/report", s.handleReport)

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	if watch {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		defer func() { _ = watcher.Close() }()

		// Watch the directory; editors replace files rather than write
		// them in place, which drops watches on the file itself.
		if err := watcher.Add(filepath.Dir(s.checklistPath)); err != nil {
			return fmt.Errorf("failed to watch checklist directory: %w", err)
		}
		go s.watchLoop(ctx, watcher)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// watchLoop rebuilds the report when the checklist changes. Parse
// failures keep the previous report; editors produce transient
// half-written states.
func (s *coverageServer) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	target := filepath.Clean(s.checklistPath)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if err := s.rebuild(); err != nil {
				s.logger.Warn("rebuild failed", "error", err)
				continue
			}
			s.logger.Info("coverage rebuilt", "checklist", s.checklistPath)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("watch error", "error", err)
		}
	}
}

func (s *coverageServer) handleReport(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := s.report().RenderJSON(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Binding coverage</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.8rem; text-align: left; }
tfoot { font-weight: bold; }
</style>
</head>
<body>
<h1>{{if .API}}{{.API}} binding coverage{{else}}Binding coverage{{end}}</h1>
{{if .Binding}}<p>Binding: {{.Binding}}</p>{{end}}
<table>
<thead><tr><th>Section</th><th>Bound</th><th>Total</th><th>Coverage</th></tr></thead>
<tbody>
{{range .Sections}}<tr><td>{{.Title}}</td><td>{{.Bound}}</td><td>{{.Total}}</td><td>{{printf "%.1f%%" .Percent}}</td></tr>
{{end}}</tbody>
<tfoot><tr><td>Total</td><td>{{.Total.Bound}}</td><td>{{.Total.Total}}</td><td>{{printf "%.1f%%" .Total.Percent}}</td></tr></tfoot>
</table>
</body>
</html>
`))

func (s *coverageServer) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, s.report()); err != nil {
		s.logger.Warn("failed to render dashboard", "error", err)
	}
}
