// Package router keeps the CLI's navigation stack.
package router

import (
	"strings"

	"github.com/dmitrijs2005/gophwallet/internal/client/models"
)

// Router is a stack of routes. The bottom route is the root and is never
// popped. It is not safe for concurrent use.
type Router struct {
	stack []models.Route
}

// New returns a Router whose only route is root.
func New(root models.Route) *Router {
	return &Router{stack: []models.Route{root}}
}

// Current returns the route on top of the stack.
func (r *Router) Current() models.Route {
	return r.stack[len(r.stack)-1]
}

// Push opens route on top of the current one.
func (r *Router) Push(route models.Route) {
	r.stack = append(r.stack, route)
}

// Pop closes the current route and returns the one below it. At the root it
// does nothing and returns false.
func (r *Router) Pop() (models.Route, bool) {
	if len(r.stack) == 1 {
		return r.stack[0], false
	}
	r.stack = r.stack[:len(r.stack)-1]
	return r.Current(), true
}

// ResetTo drops the whole stack and makes route the new root.
func (r *Router) ResetTo(route models.Route) {
	clear(r.stack)
	r.stack = append(r.stack[:0], route)
}

// Depth is the number of routes on the stack.
func (r *Router) Depth() int { return len(r.stack) }

// String renders the stack root first, e.g. "wallets > settings".
func (r *Router) String() string {
	parts := make([]string, len(r.stack))
	for i, route := range r.stack {
		parts[i] = route.String()
	}
	return strings.Join(parts, " > ")
}
