// Package router assembles the gin engine: middleware chain, operational
// endpoints and the domain route groups.
package router

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
)

// RouteRegistrar mounts its routes on a gin group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Route is one method and path pair of the route table.
type Route struct {
	Method string
	Path   string
}

// Router collects domain groups and mounts them on the engine.
type Router struct {
	engine *gin.Engine
	prefix string
	groups []*DomainGroup
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithPrefix mounts every group under prefix (e.g. "/api"). The default is
// no prefix.
func WithPrefix(prefix string) RouterOption {
	return func(r *Router) {
		r.prefix = prefix
	}
}

// NewRouter creates a Router for engine.
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{engine: engine}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register queues a group for Setup. A nil group is ignored.
func (r *Router) Register(group *DomainGroup) *Router {
	if group != nil {
		r.groups = append(r.groups, group)
	}
	return r
}

// Setup mounts every registered group.
func (r *Router) Setup() {
	root := r.engine.Group(r.prefix)
	for _, g := range r.groups {
		g.RegisterRoutes(root)
	}
}

// Routes lists the full paths of every registered group, in registration order.
func (r *Router) Routes() []Route {
	var routes []Route
	for _, g := range r.groups {
		for _, rt := range g.Routes() {
			routes = append(routes, Route{Method: rt.Method, Path: joinPath(r.prefix, rt.Path)})
		}
	}
	return routes
}

// DomainGroup holds the routes of one resource under a common prefix.
type DomainGroup struct {
	prefix     string
	routes     []routeDefinition
	middleware []gin.HandlerFunc
}

type routeDefinition struct {
	Route
	handlers []gin.HandlerFunc
}

// NewDomainGroup creates an empty group mounted at prefix.
func NewDomainGroup(prefix string) *DomainGroup {
	return &DomainGroup{prefix: prefix}
}

// Use adds middleware that runs for every route of the group.
func (dg *DomainGroup) Use(middleware ...gin.HandlerFunc) *DomainGroup {
	dg.middleware = append(dg.middleware, middleware...)
	return dg
}

func (dg *DomainGroup) GET(relativePath string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.handle(http.MethodGet, relativePath, handlers)
}

func (dg *DomainGroup) POST(relativePath string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.handle(http.MethodPost, relativePath, handlers)
}

func (dg *DomainGroup) PATCH(relativePath string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.handle(http.MethodPatch, relativePath, handlers)
}

func (dg *DomainGroup) handle(method, relativePath string, handlers []gin.HandlerFunc) *DomainGroup {
	dg.routes = append(dg.routes, routeDefinition{
		Route:    Route{Method: method, Path: relativePath},
		handlers: handlers,
	})
	return dg
}

// RegisterRoutes implements RouteRegistrar.
func (dg *DomainGroup) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group(dg.prefix, dg.middleware...)
	for _, rt := range dg.routes {
		group.Handle(rt.Method, rt.Path, rt.handlers...)
	}
}

// Routes lists the group's routes with the group prefix applied.
func (dg *DomainGroup) Routes() []Route {
	routes := make([]Route, 0, len(dg.routes))
	for _, rt := range dg.routes {
		routes = append(routes, Route{Method: rt.Method, Path: joinPath(dg.prefix, rt.Path)})
	}
	return routes
}

// joinPath joins like gin does: "/customers" + "" stays "/customers".
func joinPath(base, relative string) string {
	if relative == "" {
		if base == "" {
			return "/"
		}
		return base
	}
	return path.Join("/", base, relative)
}
