package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homebase/household-api/internal/api/metrics"
	"github.com/homebase/household-api/internal/core/domain"
	"github.com/homebase/household-api/internal/core/ports"
)

// ResourceSchema adapts one resource's wire format to the owned collection.
// Decoders bind and validate the request; patch keys are stored field names.
type ResourceSchema[T any] struct {
	Kind         domain.ResourceKind
	DecodeCreate func(c echo.Context) (*T, error)
	DecodePatch  func(c echo.Context) (domain.Patch, error)
}

// OwnedHandler exposes CRUD for one per-user collection.
type OwnedHandler[T any] struct {
	service ports.OwnedService[T]
	schema  ResourceSchema[T]
}

func NewOwnedHandler[T any](service ports.OwnedService[T], schema ResourceSchema[T]) *OwnedHandler[T] {
	return &OwnedHandler[T]{service: service, schema: schema}
}

// Mount registers the collection routes on g.
func (h *OwnedHandler[T]) Mount(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *OwnedHandler[T]) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	doc, err := h.schema.DecodeCreate(c)
	if err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), identity, doc)
	if err != nil {
		return err
	}
	h.count("create")
	return c.JSON(http.StatusCreated, created)
}

func (h *OwnedHandler[T]) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	docs, err := h.service.List(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	h.count("list")
	return c.JSON(http.StatusOK, docs)
}

func (h *OwnedHandler[T]) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	doc, err := h.service.Get(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return err
	}
	h.count("get")
	return c.JSON(http.StatusOK, doc)
}

func (h *OwnedHandler[T]) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	patch, err := h.schema.DecodePatch(c)
	if err != nil {
		return err
	}

	doc, err := h.service.Update(c.Request().Context(), identity, c.Param("id"), patch)
	if err != nil {
		return err
	}
	h.count("update")
	return c.JSON(http.StatusOK, doc)
}

func (h *OwnedHandler[T]) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	doc, err := h.service.Delete(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return err
	}
	h.count("delete")
	return c.JSON(http.StatusOK, doc)
}

func (h *OwnedHandler[T]) count(op string) {
	metrics.ResourceOperationsTotal.WithLabelValues(string(h.schema.Kind), op).Inc()
}

// patchBuilder collects the fields present in an update request.
type patchBuilder struct {
	patch domain.Patch
	err   error
}

func newPatch() *patchBuilder {
	return &patchBuilder{patch: domain.Patch{}}
}

func (b *patchBuilder) set(field string, v any) *patchBuilder {
	b.patch[field] = v
	return b
}

func (b *patchBuilder) str(field string, v *string) *patchBuilder {
	if v != nil {
		b.patch[field] = *v
	}
	return b
}

func (b *patchBuilder) num(field string, v *float64) *patchBuilder {
	if v != nil {
		b.patch[field] = *v
	}
	return b
}

func (b *patchBuilder) date(field string, v *string) *patchBuilder {
	if v == nil || b.err != nil {
		return b
	}
	t, err := parseDate(*v)
	if err != nil {
		b.err = domain.Invalid("%s must be a date", field)
		return b
	}
	b.patch[field] = t
	return b
}

func (b *patchBuilder) build() (domain.Patch, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.patch, nil
}
