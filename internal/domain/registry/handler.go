package registry

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinica/clinica/internal/platform/metrics"
)

// Handler exposes one person-record collection over HTTP. The route
// segment comes from the schema, so the same handler code serves
// /pacientes, /medicos and /funcionarios.
type Handler struct {
	svc *Service
	mc  *metrics.Collector
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// SetCollector attaches the optional metrics collector.
func (h *Handler) SetCollector(mc *metrics.Collector) { h.mc = mc }

func (h *Handler) RegisterRoutes(api *echo.Group) {
	base := "/" + h.svc.Schema().Path
	api.GET(base, h.List)
	api.POST(base, h.Create)
	api.GET(base+"/:id", h.GetByID)
	api.PUT(base+"/:id", h.Update)
	api.DELETE(base+"/:id", h.Delete)
}

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch KindOf(err) {
	case KindInvalidArgument:
		status = http.StatusBadRequest
	case KindNotFound:
		status = http.StatusNotFound
	case KindConflict:
		status = http.StatusConflict
	}
	return c.JSON(status, errorBody{Error: err.Error(), Field: FieldOf(err)})
}

// respondBindError keeps the status of bind failures that already
// carry one: the body-limit wrapper surfaces an oversized chunked body
// as a 413 mid-read. Anything else is a malformed body.
func respondBindError(c echo.Context, err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code == http.StatusRequestEntityTooLarge {
		return c.JSON(he.Code, errorBody{Error: "request body too large"})
	}
	return respondError(c, invalidArgument("", "malformed request body"))
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	if items == nil {
		items = []*Record{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetByID(c echo.Context) error {
	id, err := ParseID(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	rec, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) Create(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return respondBindError(c, err)
	}
	rec, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	if h.mc != nil {
		h.mc.RecordsCreated.WithLabelValues(h.svc.Schema().Kind).Inc()
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := ParseID(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	var in UpdateInput
	if err := c.Bind(&in); err != nil {
		return respondBindError(c, err)
	}
	rec, err := h.svc.Update(c.Request().Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := ParseID(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
