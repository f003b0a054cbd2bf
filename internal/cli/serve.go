package cli

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mindwheel/pkg/pipeline"
)

// newServeCmd creates the serve command: an HTTP server that renders the
// map on demand, so the camera can be driven from a browser via query
// parameters. Artifacts are cached per document hash + camera options.
func newServeCmd() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve the rendered map over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			c, err := openCache(noCache)
			if err != nil {
				return err
			}
			defer c.Close()

			runner := pipeline.NewRunner(c, logger)
			srv := &http.Server{
				Addr:              addr,
				Handler:           newServeRouter(runner, args[0], configFromContext(ctx)),
				ReadHeaderTimeout: 5 * time.Second,
			}

			// Shut down when the command context is canceled (SIGINT).
			go func() {
				<-ctx.Done()
				_ = srv.Close()
			}()

			logger.Info("serving map", "file", args[0], "addr", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8707", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func newServeRouter(runner *pipeline.Runner, input string, cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.NoCache)

	r.Get("/", handleIndex(input))
	r.Get("/map.svg", handleMap(runner, input, cfg, pipeline.FormatSVG, "image/svg+xml"))
	r.Get("/map.png", handleMap(runner, input, cfg, pipeline.FormatPNG, "image/png"))
	r.Get("/layout.json", handleMap(runner, input, cfg, pipeline.FormatJSON, "application/json"))

	return r
}

// handleIndex serves a minimal HTML shell that embeds the SVG and passes
// its own query string through, so camera parameters work on both URLs.
func handleIndex(input string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, `<!doctype html>
<html>
<head><title>mindwheel: %s</title></head>
<body style="margin:0">
<img src="/map.svg?%s" style="width:100vw;height:100vh;object-fit:contain" alt="radial mind map">
</body>
</html>
`, input, r.URL.RawQuery)
	}
}

// handleMap renders one format per request. Query parameters: zoom,
// rotation (degrees), panx, pany, straight, leaves, const-scale, refresh.
func handleMap(runner *pipeline.Runner, input string, cfg Config, format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		opts := pipeline.Options{
			Input:           input,
			RadiusStep:      cfg.Layout.RadiusStep,
			Curved:          cfg.Layout.CurvedLinks && !queryBool(q.Get("straight")),
			BezierSamples:   cfg.Layout.BezierSamples,
			LeafOnly:        cfg.Labels.LeavesOnly || queryBool(q.Get("leaves")),
			ConstScreenSize: cfg.Labels.ConstScreenSize || queryBool(q.Get("const-scale")),
			Zoom:            queryFloat(q.Get("zoom"), 1.0),
			RotationDeg:     queryFloat(q.Get("rotation"), 0),
			PanX:            queryFloat(q.Get("panx"), 0),
			PanY:            queryFloat(q.Get("pany"), 0),
			Width:           int(queryFloat(q.Get("width"), 1000)),
			Height:          int(queryFloat(q.Get("height"), 900)),
			Formats:         []string{format},
			Refresh:         queryBool(q.Get("refresh")),
		}

		result, err := runner.Execute(r.Context(), opts)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(result.Artifacts[format])
	}
}

func queryFloat(s string, fallback float64) float64 {
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

func queryBool(s string) bool {
	v, err := strconv.ParseBool(s)
	return err == nil && v
}
