package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gmittal/spheretrace/pkg/core"
	"github.com/gmittal/spheretrace/pkg/display"
	"github.com/gmittal/spheretrace/pkg/renderer"
	"github.com/gmittal/spheretrace/pkg/scene"
	"github.com/gmittal/spheretrace/pkg/tracer"
)

const (
	// MaxDimension bounds the width and height a client may request.
	MaxDimension = 2048
	// MaxDepth bounds the reflection depth a client may request.
	MaxDepth = 16
)

// Server renders preset scenes to PNG over HTTP
type Server struct {
	port    int
	workers int
	mux     *http.ServeMux
}

// NewServer creates a new web server
func NewServer(port, workers int) *Server {
	s := &Server{port: port, workers: workers, mux: http.NewServeMux()}
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/render", s.handleRender)
	return s
}

// Handler returns the HTTP handler serving the API.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.mux)
}

// SceneInfo describes a preset for clients.
type SceneInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// RenderRequest holds the parsed query of /api/render.
type RenderRequest struct {
	Scene   string
	Width   int
	Height  int
	Depth   int
	Caption bool
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	presets := scene.ListPresets()
	infos := make([]SceneInfo, len(presets))
	for i, p := range presets {
		infos[i] = SceneInfo{Name: p.Name, Description: p.Description, Width: p.Width, Height: p.Height}
	}
	writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	preset, _ := scene.LookupPreset(req.Scene)
	sc, err := preset.Build(req.Width, req.Height)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	config := tracer.DefaultConfig()
	config.MaxDepth = req.Depth
	tr, err := tracer.New(sc, config)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rd, err := renderer.New(tr, req.Width, req.Height, renderer.Config{Workers: s.workers})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	frame, stats, err := rd.Render(r.Context())
	if err != nil {
		log.Printf("Render of %s failed: %v", req.Scene, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	opts := display.Options{}
	if req.Caption {
		opts.Caption = fmt.Sprintf("%s %dx%d depth %d", req.Scene, req.Width, req.Height, req.Depth)
	}
	var buf bytes.Buffer
	if err := display.WritePNG(&buf, frame, opts); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Printf("Rendered %s %dx%d in %v (%d pixels)", req.Scene, req.Width, req.Height,
		stats.Elapsed.Round(time.Millisecond), stats.TracedPixels)
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Render-Time", stats.Elapsed.String())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

// parseRenderRequest applies preset defaults and validates the query.
func parseRenderRequest(q url.Values) (RenderRequest, error) {
	name := q.Get("scene")
	if name == "" {
		name = "default"
	}
	preset, ok := scene.LookupPreset(name)
	if !ok {
		return RenderRequest{}, fmt.Errorf("%w: unknown scene %q", core.ErrInvalidConfiguration, name)
	}

	req := RenderRequest{
		Scene:  name,
		Width:  preset.Width,
		Height: preset.Height,
		Depth:  tracer.DefaultConfig().MaxDepth,
	}
	var errs core.ValidationErrors
	req.Width = parseInt(q, "width", req.Width, &errs)
	req.Height = parseInt(q, "height", req.Height, &errs)
	req.Depth = parseInt(q, "depth", req.Depth, &errs)
	req.Caption = q.Get("caption") == "true"

	if req.Width <= 0 || req.Width > MaxDimension || req.Height <= 0 || req.Height > MaxDimension {
		errs.Add(fmt.Errorf("%w: size %dx%d must be within 1..%d", core.ErrInvalidConfiguration, req.Width, req.Height, MaxDimension))
	}
	if req.Depth < 0 || req.Depth > MaxDepth {
		errs.Add(fmt.Errorf("%w: depth %d must be within 0..%d", core.ErrInvalidConfiguration, req.Depth, MaxDepth))
	}
	return req, errs.Err()
}

func parseInt(q url.Values, key string, def int, errs *core.ValidationErrors) int {
	raw := q.Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		errs.Add(fmt.Errorf("%w: %s=%q is not an integer", core.ErrInvalidConfiguration, key, raw))
		return def
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
