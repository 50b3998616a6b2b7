package ui

import (
	"strings"

	"fyne.io/fyne/v2"
)

// View is a routed page of the application.
type View interface {
	// Content returns the page to place in the window body.
	Content() fyne.CanvasObject
}

// Starter is implemented by views that fetch data when shown.
type Starter interface {
	Start()
}

// Route binds a normalised path to a view constructor.
type Route struct {
	Path string
	New  func() View
}

// Router resolves paths to views and mounts them.
type Router struct {
	routes   map[string]Route
	fallback Route
	mount    func(path string, v View)

	current string
	view    View
}

// NewRouter creates a router. Paths not present in routes resolve to fallback.
func NewRouter(routes []Route, fallback Route, mount func(path string, v View)) *Router {
	r := &Router{
		routes:   make(map[string]Route, len(routes)),
		fallback: fallback,
		mount:    mount,
	}
	for _, route := range routes {
		r.routes[NormalizePath(route.Path)] = route
	}
	return r
}

// NormalizePath trims whitespace, drops query and fragment, and removes
// trailing slashes. The empty path is the root.
func NormalizePath(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimRight(path, "/")
	if path == "" {
		return RouteHome
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// Resolve returns the route a path maps to and whether it matched a
// registered route.
func (r *Router) Resolve(path string) (Route, bool) {
	route, ok := r.routes[NormalizePath(path)]
	if !ok {
		return r.fallback, false
	}
	return route, true
}

// Navigate builds a fresh view for path and mounts it.
func (r *Router) Navigate(path string) View {
	route, _ := r.Resolve(path)
	v := route.New()
	r.current = NormalizePath(path)
	r.view = v
	if r.mount != nil {
		r.mount(r.current, v)
	}
	if s, ok := v.(Starter); ok {
		s.Start()
	}
	return v
}

// Reload rebuilds the current view, e.g. after a language change.
func (r *Router) Reload() View {
	return r.Navigate(r.current)
}

// Current returns the normalised path of the mounted view.
func (r *Router) Current() string {
	return r.current
}

// View returns the mounted view.
func (r *Router) View() View {
	return r.view
}
