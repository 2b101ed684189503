package httpx

import (
	"strconv"

	"github.com/adeilh/go-rakh-status/status"
)

// StatusView is the JSON form of a catalogued status.
type StatusView struct {
	Code  int    `json:"code"`
	Name  string `json:"name"`
	Class string `json:"class"`
}

// ClassView is the JSON form of a status class.
type ClassView struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Lower int    `json:"lower"`
	Upper int    `json:"upper"`
}

var classSlugs = []struct {
	slug  string
	class status.Class
}{
	{"informational", status.Informational},
	{"successful", status.Successful},
	{"redirection", status.Redirection},
	{"client-error", status.ClientError},
	{"server-error", status.ServerError},
}

// ClassBySlug resolves the URL slug of a built-in class.
func ClassBySlug(slug string) (status.Class, bool) {
	for _, cs := range classSlugs {
		if cs.slug == slug {
			return cs.class, true
		}
	}
	return status.Class{}, false
}

func viewOf(c status.Coder) StatusView {
	return StatusView{Code: c.Code(), Name: c.Name(), Class: c.Class().Name}
}

func viewsOf(list []status.Status) []StatusView {
	out := make([]StatusView, 0, len(list))
	for _, s := range list {
		out = append(out, viewOf(s))
	}
	return out
}

// CatalogueRoutes mounts read-only catalogue endpoints under prefix:
//
//	GET {prefix}/statuses
//	GET {prefix}/statuses/:code
//	GET {prefix}/classes
//	GET {prefix}/classes/:slug/statuses
func CatalogueRoutes(prefix string) RouteRegistrar {
	return func(a *App) {
		NewRouter(a, prefix).
			GET("/statuses", listStatuses).
			GET("/statuses/:code", getStatus).
			GET("/classes", listClasses).
			GET("/classes/:slug/statuses", listClassStatuses)
	}
}

func listStatuses(c Context) error {
	return c.JSON(StatusOK, viewsOf(status.Known()))
}

func getStatus(c Context) error {
	raw := c.Param("code")
	code, err := strconv.Atoi(raw)
	if err != nil {
		return HTTPError(StatusBadRequest, "status code must be an integer: "+raw)
	}
	s, ok := status.Lookup(code)
	if !ok {
		return HTTPError(StatusNotFound, "status code not catalogued: "+raw)
	}
	return c.JSON(StatusOK, viewOf(s))
}

func listClasses(c Context) error {
	out := make([]ClassView, 0, len(classSlugs))
	for _, cs := range classSlugs {
		lo, hi := cs.class.Range()
		out = append(out, ClassView{Slug: cs.slug, Name: cs.class.Name, Lower: lo, Upper: hi})
	}
	return c.JSON(StatusOK, out)
}

func listClassStatuses(c Context) error {
	slug := c.Param("slug")
	cls, ok := ClassBySlug(slug)
	if !ok {
		return HTTPError(StatusNotFound, "unknown status class: "+slug)
	}
	return c.JSON(StatusOK, viewsOf(cls.Codes()))
}
