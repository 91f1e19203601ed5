// Package chart manages chart instances bound to canvas elements. The
// actual drawing is done by an external charting component; this package
// only produces configurations and guarantees that a canvas never holds two
// live chart instances at once.
package chart

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"
)

// Chart types understood by the rendering sink.
const (
	TypePie      = "pie"
	TypeDoughnut = "doughnut"
	TypeLine     = "line"
)

// Config is the data series handed to the rendering sink.
type Config struct {
	Type   string   `json:"type"`
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
	Label  string   `json:"label,omitempty"` // dataset label, used by line charts
}

// Handle is a live chart instance. Destroy releases its rendering context.
type Handle interface {
	Destroy()
}

// Renderer creates chart instances on named canvases.
type Renderer interface {
	Render(canvas string, cfg Config) (Handle, error)
}

// Registry maps canvas ids to their live chart handles. Rendering onto a
// canvas that already holds a chart destroys the old instance first.
type Registry struct {
	mu       sync.Mutex
	renderer Renderer
	charts   map[string]Handle
}

// NewRegistry creates a registry backed by the given renderer.
func NewRegistry(r Renderer) *Registry {
	return &Registry{renderer: r, charts: make(map[string]Handle)}
}

// Render draws cfg onto the named canvas, replacing any existing chart.
func (reg *Registry) Render(canvas string, cfg Config) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if old, ok := reg.charts[canvas]; ok {
		old.Destroy()
		delete(reg.charts, canvas)
	}

	h, err := reg.renderer.Render(canvas, cfg)
	if err != nil {
		return err
	}
	reg.charts[canvas] = h
	return nil
}

// Destroy removes the chart bound to the canvas, if any.
func (reg *Registry) Destroy(canvas string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if h, ok := reg.charts[canvas]; ok {
		h.Destroy()
		delete(reg.charts, canvas)
	}
}

// DestroyPrefix removes every chart whose canvas id starts with prefix.
// Closing the analytics modal uses this to drop the per-amendment charts.
func (reg *Registry) DestroyPrefix(prefix string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	for canvas, h := range reg.charts {
		if strings.HasPrefix(canvas, prefix) {
			h.Destroy()
			delete(reg.charts, canvas)
		}
	}
}

// Canvases returns the ids of all canvases with live charts, sorted.
func (reg *Registry) Canvases() []string {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	out := make([]string, 0, len(reg.charts))
	for canvas := range reg.charts {
		out = append(out, canvas)
	}
	sort.Strings(out)
	return out
}

// ConfigRenderer retains the latest config per canvas. The web layer embeds
// the retained configs as JSON for the browser-side charting library.
type ConfigRenderer struct {
	mu      sync.Mutex
	configs map[string]Config
}

// NewConfigRenderer creates an empty config renderer.
func NewConfigRenderer() *ConfigRenderer {
	return &ConfigRenderer{configs: make(map[string]Config)}
}

type configHandle struct {
	renderer *ConfigRenderer
	canvas   string
}

func (h *configHandle) Destroy() {
	h.renderer.mu.Lock()
	defer h.renderer.mu.Unlock()
	delete(h.renderer.configs, h.canvas)
}

// Render retains cfg for the canvas and returns a handle that forgets it.
func (r *ConfigRenderer) Render(canvas string, cfg Config) (Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs[canvas] = cfg
	return &configHandle{renderer: r, canvas: canvas}, nil
}

// ConfigJSON returns the retained config for the canvas as JSON, or "" if
// the canvas has no live chart.
func (r *ConfigRenderer) ConfigJSON(canvas string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	cfg, ok := r.configs[canvas]
	if !ok {
		return ""
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return ""
	}
	return string(data)
}
