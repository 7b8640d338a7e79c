package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blockview/pkg/buildinfo"
	"github.com/matzehuels/blockview/pkg/cache"
	"github.com/matzehuels/blockview/pkg/config"
	"github.com/matzehuels/blockview/pkg/errors"
	"github.com/matzehuels/blockview/pkg/observability"
	"github.com/matzehuels/blockview/pkg/pipeline"
	"github.com/matzehuels/blockview/pkg/render/block/sample"
	"github.com/matzehuels/blockview/pkg/render/nodelink"
)

const (
	defaultAddr     = ":8080"
	defaultCacheTTL = 24 * time.Hour
	shutdownTimeout = 5 * time.Second
)

// contentTypes maps output formats to response content types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

// serveCommand starts the HTTP preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		noCache  bool
		redisURL string
		cacheTTL time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered samples over HTTP",
		Long: `Serve rendered samples over HTTP.

Routes:
  GET /healthz
  GET /samples
  GET /samples/{name}.svg|.png|.pdf|.json   ?mode=&rtl=&highlight=&centers=&scale=
  GET /samples/{name}/hit?x=&y=
  GET /samples/{name}/tree.svg

Rendered artifacts are cached under $XDG_CACHE_HOME/blockview/artifacts,
or in Redis with --redis-url.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			observability.SetHTTPHooks(observability.NewLogHooks(c.Logger))
			store, err := c.artifactCache(cmd.Context(), noCache, redisURL)
			if err != nil {
				return err
			}
			defer store.Close()
			return c.runServe(cmd.Context(), addr, store, cacheTTL)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "render every request instead of reusing cached artifacts")
	cmd.Flags().StringVar(&redisURL, "redis-url", "", "share cached artifacts through Redis (redis://host:port/db)")
	cmd.Flags().DurationVar(&cacheTTL, "cache-ttl", defaultCacheTTL, "how long cached artifacts stay valid")
	return cmd
}

// artifactCache opens the Redis cache when redisURL is set, otherwise the
// file cache under the user cache directory.
func (c *CLI) artifactCache(ctx context.Context, disabled bool, redisURL string) (cache.Cache, error) {
	if disabled {
		return cache.NullCache{}, nil
	}
	if redisURL != "" {
		rc, err := cache.NewRedisCache(ctx, redisURL, cache.DefaultRedisPrefix)
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("artifact cache", "backend", "redis")
		return rc, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "locate cache directory")
	}
	fc, err := cache.NewFileCache(filepath.Join(dir, "artifacts"))
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("artifact cache", "dir", fc.Dir())
	return fc, nil
}

func (c *CLI) runServe(ctx context.Context, addr string, store cache.Cache, ttl time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           newServer(c.newRunner(), c.config, store, ttl, c.Logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	printInfo("Serving samples on %s", StyleHighlight.Render("http://localhost"+addr))

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	printSuccess("Server stopped")
	return nil
}

// =============================================================================
// Handlers
// =============================================================================

type server struct {
	runner *pipeline.Runner
	config config.Config
	cache  cache.Cache
	ttl    time.Duration
	logger *log.Logger
}

// newServer builds the preview router. Rendered artifacts are looked up in
// and stored to store for ttl.
func newServer(runner *pipeline.Runner, cfg config.Config, store cache.Cache, ttl time.Duration, logger *log.Logger) http.Handler {
	if store == nil {
		store = cache.NullCache{}
	}
	s := &server{runner: runner, config: cfg, cache: store, ttl: ttl, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(observe)

	r.Get("/healthz", s.health)
	r.Route("/samples", func(r chi.Router) {
		r.Get("/", s.listSamples)
		r.Get("/{name}", s.renderSample)
		r.Get("/{name}/hit", s.hitSample)
		r.Get("/{name}/tree.svg", s.treeSample)
	})
	return r
}

// observe reports each request to the HTTP hooks, keyed by route pattern.
func observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, route, status, time.Since(start))
	})
}

func (s *server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

type sampleInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *server) listSamples(w http.ResponseWriter, r *http.Request) {
	var out []sampleInfo
	for _, smp := range sample.All() {
		out = append(out, sampleInfo{Name: smp.Name, Description: smp.Description})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) renderSample(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "name")
	name, format, ok := strings.Cut(file, ".")
	if !ok {
		s.fail(w, errors.New(errors.ErrCodeInvalidFormat, "missing format extension on %q", file))
		return
	}
	opts, err := s.options(r, name)
	if err != nil {
		s.fail(w, err)
		return
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.fail(w, err)
		return
	}
	opts.Formats = []string{format}
	// Key on the defaulted options so equivalent queries share an entry.
	if err := opts.ValidateAndSetDefaults(); err != nil {
		s.fail(w, err)
		return
	}

	ctx := r.Context()
	key := cache.ArtifactKey(name, format, opts.Mode, opts.EffectiveRTL(), opts.Centers, opts.EffectiveScale(), opts.Highlight, s.config)
	data, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache read failed", "key", key, "err", err)
	}
	if !hit {
		res, err := s.runner.Execute(ctx, opts)
		if err != nil {
			s.fail(w, err)
			return
		}
		data = res.Artifacts[format]
		if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
			s.logger.Warn("cache write failed", "key", key, "err", err)
		}
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Cache", cacheStatus(hit))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func cacheStatus(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}

type hitResponse struct {
	Hit   bool   `json:"hit"`
	Block string `json:"block,omitempty"`
}

func (s *server) hitSample(w http.ResponseWriter, r *http.Request) {
	p, err := parsePoint(r.URL.Query().Get("x"), r.URL.Query().Get("y"))
	if err != nil {
		s.fail(w, err)
		return
	}
	opts, err := s.options(r, chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, err)
		return
	}
	res, err := s.runner.Layout(r.Context(), opts)
	if err != nil {
		s.fail(w, err)
		return
	}
	v, err := res.Group.HitTest(p)
	if err != nil {
		s.fail(w, err)
		return
	}
	out := hitResponse{Hit: v != nil}
	if v != nil {
		out.Block = v.Block().Type
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) treeSample(w http.ResponseWriter, r *http.Request) {
	opts := pipeline.Options{Sample: chi.URLParam(r, "name")}
	if err := opts.ValidateForLayout(); err != nil {
		s.fail(w, err)
		return
	}
	root, err := pipeline.BuildTree(opts)
	if err != nil {
		s.fail(w, err)
		return
	}
	detailed, _ := strconv.ParseBool(r.URL.Query().Get("detailed"))
	svg, err := nodelink.RenderSVG(r.Context(), nodelink.ToDOT(root, nodelink.Options{Detailed: detailed}))
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[pipeline.FormatSVG])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

// options reads the layout query parameters shared by the sample routes.
func (s *server) options(r *http.Request, name string) (pipeline.Options, error) {
	q := r.URL.Query()
	cfg := s.config
	opts := pipeline.Options{
		Sample:    name,
		Mode:      q.Get("mode"),
		Highlight: q.Get("highlight"),
		Config:    &cfg,
		Logger:    s.logger,
	}
	var err error
	if opts.RTL, err = queryBool(q.Get("rtl")); err != nil {
		return opts, err
	}
	if opts.Centers, err = queryBool(q.Get("centers")); err != nil {
		return opts, err
	}
	if v := q.Get("scale"); v != "" {
		if opts.Scale, err = strconv.ParseFloat(v, 64); err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "scale must be a number, got %q", v)
		}
	}
	return opts, nil
}

func queryBool(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "expected a boolean, got %q", v)
	}
	return b, nil
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *server) fail(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: string(errors.GetCode(err))})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
