// Package router resolves shell paths such as /chat/42 to named routes.
package router

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound   = errors.New("router: no route matches path")
	ErrBadPattern = errors.New("router: invalid pattern")
	ErrDuplicate  = errors.New("router: duplicate route name")
)

// Route names of the application shell.
const (
	Landing      = "landing"
	Chat         = "chat"
	ChatDetail   = "chat-detail"
	ChatSettings = "chat-settings"
	Files        = "files"
	Login        = "login"
)

// Route is a named pattern. Segments starting with ':' bind one path
// segment; a final '*' binds the rest of the path.
type Route struct {
	Name    string
	Pattern string
	parts   []string
}

type Match struct {
	Route  Route
	Path   string
	Params map[string]string
}

// Param returns a bound parameter; the splat is under "*".
func (m Match) Param(name string) string { return m.Params[name] }

type Router struct {
	routes []Route
	names  map[string]bool
}

func New() *Router {
	return &Router{names: make(map[string]bool)}
}

// Default returns the router for the landing page shell.
func Default() *Router {
	r := New()
	for _, rt := range [][2]string{
		{Landing, "/"},
		{Chat, "/chat"},
		{ChatSettings, "/chat/settings"},
		{ChatDetail, "/chat/:chatId"},
		{Files, "/files/*"},
		{Login, "/login"},
	} {
		if err := r.Handle(rt[0], rt[1]); err != nil {
			panic(err)
		}
	}
	return r
}

func split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func (r *Router) Handle(name, pattern string) error {
	if r.names[name] {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	if !strings.HasPrefix(pattern, "/") {
		return fmt.Errorf("%w: %q must start with /", ErrBadPattern, pattern)
	}
	parts := split(pattern)
	for i, p := range parts {
		switch {
		case p == "*" && i != len(parts)-1:
			return fmt.Errorf("%w: %q has * before the last segment", ErrBadPattern, pattern)
		case p == ":":
			return fmt.Errorf("%w: %q has an unnamed parameter", ErrBadPattern, pattern)
		}
	}
	r.routes = append(r.routes, Route{Name: name, Pattern: pattern, parts: parts})
	r.names[name] = true
	return nil
}

func (r *Router) Routes() []Route { return append([]Route(nil), r.routes...) }

// Match resolves path. When several routes match, the one with more
// literal segments wins, so /chat/settings beats /chat/:chatId.
func (r *Router) Match(path string) (Match, error) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	segs := split(path)
	best, bestScore := -1, -1
	var bestParams map[string]string
	for i, rt := range r.routes {
		params, score, ok := rt.match(segs)
		if ok && score > bestScore {
			best, bestScore, bestParams = i, score, params
		}
	}
	if best < 0 {
		return Match{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return Match{Route: r.routes[best], Path: "/" + strings.Join(segs, "/"), Params: bestParams}, nil
}

func (rt Route) match(segs []string) (map[string]string, int, bool) {
	params := map[string]string{}
	score := 0
	for i, p := range rt.parts {
		if p == "*" {
			params["*"] = strings.Join(segs[i:], "/")
			return params, score, true
		}
		if i >= len(segs) {
			return nil, 0, false
		}
		switch {
		case strings.HasPrefix(p, ":"):
			params[p[1:]] = segs[i]
		case p == segs[i]:
			score++
		default:
			return nil, 0, false
		}
	}
	if len(segs) != len(rt.parts) {
		return nil, 0, false
	}
	return params, score, true
}
