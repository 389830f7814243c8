package http

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/progarden-crm/pkg/logger"
)

// Service the CRUD surface every flat resource use case exposes.
type Service[Req, Resp any] interface {
	List(ctx context.Context) ([]Resp, error)
	Get(ctx context.Context, id int64) (*Resp, error)
	Create(ctx context.Context, in Req) (*Resp, error)
	Update(ctx context.Context, id int64, in Req) (*Resp, error)
	Delete(ctx context.Context, id int64) error
}

// ResourceHandler serves list/get/create/update/delete of one resource.
type ResourceHandler[Req, Resp any] struct {
	name string
	svc  Service[Req, Resp]
	log  *logger.Logger
}

// NewResourceHandler builds the handler; name is used in logs only.
func NewResourceHandler[Req, Resp any](name string, svc Service[Req, Resp], log *logger.Logger) *ResourceHandler[Req, Resp] {
	if log == nil {
		log = logger.Nop()
	}
	return &ResourceHandler[Req, Resp]{name: name, svc: svc, log: log.Named(name)}
}

// Mount registers the five routes on r.
func (h *ResourceHandler[Req, Resp]) Mount(r fiber.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

// List GET /<resource>/
func (h *ResourceHandler[Req, Resp]) List(c *fiber.Ctx) error {
	list, err := h.svc.List(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(list)
}

// Get GET /<resource>/:id
func (h *ResourceHandler[Req, Resp]) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create POST /<resource>/
func (h *ResourceHandler[Req, Resp]) Create(c *fiber.Ctx) error {
	var in Req
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	h.log.Info().Str("resource", h.name).Msg("created")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /<resource>/:id (full replacement)
func (h *ResourceHandler[Req, Resp]) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	var in Req
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.Update(c.Context(), id, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	h.log.Info().Str("resource", h.name).Int64("id", id).Msg("updated")
	return c.JSON(out)
}

// Delete DELETE /<resource>/:id
func (h *ResourceHandler[Req, Resp]) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	if err := h.svc.Delete(c.Context(), id); err != nil {
		return writeError(c, h.log, err)
	}
	h.log.Info().Str("resource", h.name).Int64("id", id).Msg("deleted")
	return c.SendStatus(fiber.StatusNoContent)
}

func pathID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
