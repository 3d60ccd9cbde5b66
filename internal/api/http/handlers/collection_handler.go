package handlers

import (
	"context"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/backoffice/internal/api/dto"
	"github.com/spec-kit/backoffice/internal/query"
	"github.com/spec-kit/backoffice/internal/service"
	apperrors "github.com/spec-kit/backoffice/pkg/util/errorutil"
)

const (
	defaultPageSize = 20
	maxPageSize     = 200
)

// CollectionService is the part of a service.Collection the CRUD routes use.
type CollectionService[T any, S any] interface {
	Name() string
	QuerySchema() query.Schema[T]
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id string, patch service.Patch[T]) (T, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (T, error)
	List(ctx context.Context, f query.Filter, limit, offset int) (service.ListResult[T], error)
	Stats(ctx context.Context) (S, error)
}

// CollectionRoutes is a collection's CRUD endpoints, independent of its
// entity type.
type CollectionRoutes interface {
	Name() string
	List(c *fiber.Ctx) error
	Stats(c *fiber.Ctx) error
	Get(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

// CollectionHandler serves /api/{collection}. U is the entity's patch type.
type CollectionHandler[T any, U service.Patch[T], S any] struct {
	service CollectionService[T, S]
}

// NewCollectionHandler constructs handler.
func NewCollectionHandler[T any, U service.Patch[T], S any](svc CollectionService[T, S]) *CollectionHandler[T, U, S] {
	return &CollectionHandler[T, U, S]{service: svc}
}

// Name returns the route segment.
func (h *CollectionHandler[T, U, S]) Name() string {
	return h.service.Name()
}

// List GET /api/{collection}.
func (h *CollectionHandler[T, U, S]) List(c *fiber.Ctx) error {
	page, pageSize, err := parsePage(c)
	if err != nil {
		return err
	}
	f, err := parseFilter(c, h.service.QuerySchema())
	if err != nil {
		return err
	}
	result, err := h.service.List(c.UserContext(), f, pageSize, (page-1)*pageSize)
	if err != nil {
		return err
	}
	return c.JSON(dto.ListResponse[T]{
		Data: result.Items,
		Meta: dto.PageMeta{
			Total:     result.Total,
			Page:      page,
			PageSize:  pageSize,
			LastError: result.LastError,
		},
	})
}

// Stats GET /api/{collection}/stats.
func (h *CollectionHandler[T, U, S]) Stats(c *fiber.Ctx) error {
	summary, err := h.service.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summary})
}

// Get GET /api/{collection}/:id.
func (h *CollectionHandler[T, U, S]) Get(c *fiber.Ctx) error {
	item, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": item})
}

// Create POST /api/{collection}.
func (h *CollectionHandler[T, U, S]) Create(c *fiber.Ctx) error {
	var item T
	if err := c.BodyParser(&item); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	created, err := h.service.Create(c.UserContext(), item)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": created})
}

// Update PATCH /api/{collection}/:id.
func (h *CollectionHandler[T, U, S]) Update(c *fiber.Ctx) error {
	var patch U
	if err := c.BodyParser(&patch); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	updated, err := h.service.Update(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": updated})
}

// Delete DELETE /api/{collection}/:id.
func (h *CollectionHandler[T, U, S]) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// reservedParams are list query parameters that are not facets.
var reservedParams = map[string]bool{"search": true, "page": true, "page_size": true}

// parseFilter reads ?search= and one query parameter per facet. "all" is
// the select boxes' wildcard. Any other parameter is a validation error.
func parseFilter[T any](c *fiber.Ctx, schema query.Schema[T]) (query.Filter, error) {
	f := query.Filter{
		Search: strings.TrimSpace(c.Query("search")),
		Facets: map[string]string{},
	}
	for name, raw := range c.Queries() {
		if reservedParams[name] {
			continue
		}
		if !schema.HasFacet(name) {
			return query.Filter{}, apperrors.NewValidationError("unknown filter", map[string]any{name: "unknown"})
		}
		if v := strings.TrimSpace(raw); v != "" && v != "all" {
			f.Facets[name] = v
		}
	}
	return f, nil
}

func parsePage(c *fiber.Ctx) (page, pageSize int, err error) {
	page, err = queryInt(c, "page", 1)
	if err != nil || page < 1 {
		return 0, 0, apperrors.NewValidationError("invalid page", map[string]any{"page": c.Query("page")})
	}
	pageSize, err = queryInt(c, "page_size", defaultPageSize)
	if err != nil || pageSize < 1 {
		return 0, 0, apperrors.NewValidationError("invalid page_size", map[string]any{"page_size": c.Query("page_size")})
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize, nil
}

func queryInt(c *fiber.Ctx, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
