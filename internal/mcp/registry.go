package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Handler executes one tool call with already decoded raw arguments
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// Tool describes one callable tool as advertised by tools/list
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
	Handler     Handler        `json:"-"`
}

// Registry holds the process wide tool set
// modules register during bootstrap, then the registry is frozen before serving
type Registry struct {
	mu     sync.RWMutex
	order  []string
	tools  map[string]Tool
	frozen bool
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{tools: map[string]Tool{}}
}

// Register adds a tool, panicking on programmer error
// duplicate names and post freeze registration are both bootstrap bugs
func (r *Registry) Register(t Tool) {
	if t.Name == "" {
		panic("mcp: tool with empty name")
	}
	if t.Handler == nil {
		panic(fmt.Sprintf("mcp: tool %q has nil handler", t.Name))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		panic(fmt.Sprintf("mcp: registry frozen, cannot register %q", t.Name))
	}
	if _, dup := r.tools[t.Name]; dup {
		panic(fmt.Sprintf("mcp: duplicate tool %q", t.Name))
	}
	r.order = append(r.order, t.Name)
	r.tools[t.Name] = t
}

// Freeze stops further registration
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// Lookup returns the tool for name
func (r *Registry) Lookup(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// List returns all tools in registration order
func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Tool, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, r.tools[n])
	}
	return out
}

// Len reports how many tools are registered
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
