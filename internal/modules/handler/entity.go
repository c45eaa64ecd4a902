package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/workdesk/workdesk/internal/modules/model"
	"github.com/workdesk/workdesk/internal/modules/repo"
	"github.com/workdesk/workdesk/internal/modules/serializer"
	"github.com/workdesk/workdesk/internal/modules/service"
)

// FilterParam maps one query parameter onto a store column.
type FilterParam struct {
	Column string
	Parse  func(raw string) (any, error)
}

// IDFilter filters on a foreign key column.
func IDFilter(column string) FilterParam {
	return FilterParam{Column: column, Parse: func(raw string) (any, error) {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return nil, fmt.Errorf("invalid id %q", raw)
		}
		return uint(id), nil
	}}
}

// StringFilter filters on a plain text column.
func StringFilter(column string) FilterParam {
	return FilterParam{Column: column, Parse: func(raw string) (any, error) { return raw, nil }}
}

// Routes is implemented by every handler mounted under /entities/{kind}.
type Routes interface {
	Kind() string
	Register(g *gin.RouterGroup)
}

// EntityHandler serves CRUD for one entity kind.
type EntityHandler[E any] struct {
	svc     service.EntityService[E]
	filters map[string]FilterParam
	// decodePatch is nil for append-only kinds.
	decodePatch func(c *gin.Context) (model.Patch[E], error)
	deletable   bool
}

// NewEntityHandler serves a kind whose records accept partial updates of type U.
func NewEntityHandler[E any, U model.Patch[E]](svc service.EntityService[E], filters map[string]FilterParam) *EntityHandler[E] {
	return &EntityHandler[E]{
		svc:     svc,
		filters: filters,
		decodePatch: func(c *gin.Context) (model.Patch[E], error) {
			var p U
			if err := c.ShouldBindWith(&p, jsonBody{}); err != nil {
				return nil, err
			}
			return p, nil
		},
		deletable: true,
	}
}

// NewAppendOnlyHandler serves a kind that can only be created and read.
func NewAppendOnlyHandler[E any](svc service.EntityService[E], filters map[string]FilterParam) *EntityHandler[E] {
	return &EntityHandler[E]{svc: svc, filters: filters}
}

func (h *EntityHandler[E]) Kind() string { return h.svc.Kind() }

func (h *EntityHandler[E]) Register(g *gin.RouterGroup) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	if h.decodePatch != nil {
		g.PATCH("/:id", h.Update)
	}
	if h.deletable {
		g.DELETE("/:id", h.Delete)
	}
}

// Create godoc
//
//	@Summary		Create record
//	@Description	Create a record of the given kind. Ids, createdAt and lifecycle timestamps are assigned by the server.
//	@Tags			entity
//	@Accept			json
//	@Produce		json
//	@Param			kind	path	string	true	"Entity kind"	Enums(users, clients, projects, tasks, proposals, invoices, expenses, support-tickets, support-messages, calendar-events)
//	@Param			payload	body	object	true	"Record fields"
//	@Success		201	{object}	serializer.Response{data=object}
//	@Failure		400	{object}	serializer.Response{data=[]model.FieldError}
//	@Failure		409	{object}	serializer.Response
//	@Router			/entities/{kind} [post]
func (h *EntityHandler[E]) Create(c *gin.Context) {
	e := new(E)
	if err := c.ShouldBindWith(e, jsonBody{}); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if err := h.svc.Create(c.Request.Context(), e); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: e})
}

// List godoc
//
//	@Summary		List records
//	@Description	List records of the given kind in insertion order. Supported filters depend on the kind (clientId, projectId, assigneeId, status, ...).
//	@Tags			entity
//	@Accept			json
//	@Produce		json
//	@Param			kind		path	string	true	"Entity kind"
//	@Param			clientId	query	integer	false	"Exact client id"
//	@Param			projectId	query	integer	false	"Exact project id"
//	@Param			assigneeId	query	integer	false	"Exact assignee id"
//	@Param			status		query	string	false	"Exact status"
//	@Success		200	{object}	serializer.Response{data=[]object}
//	@Router			/entities/{kind} [get]
func (h *EntityHandler[E]) List(c *gin.Context) {
	f := repo.Filter{}
	for param, fp := range h.filters {
		raw, ok := c.GetQuery(param)
		if !ok || raw == "" {
			continue
		}
		v, err := fp.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid "+param, err))
			return
		}
		f[fp.Column] = v
	}

	items, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// Get godoc
//
//	@Summary		Get record
//	@Tags			entity
//	@Accept			json
//	@Produce		json
//	@Param			kind	path	string	true	"Entity kind"
//	@Param			id		path	integer	true	"Record id"
//	@Success		200	{object}	serializer.Response{data=object}
//	@Failure		404	{object}	serializer.Response
//	@Router			/entities/{kind}/{id} [get]
func (h *EntityHandler[E]) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	if e == nil {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(h.Kind()+" not found"))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: e})
}

// Update godoc
//
//	@Summary		Update record
//	@Description	Merge the given fields into the record. Moving a task, invoice or support ticket into its terminal status stamps completedAt, paidAt or closedAt once.
//	@Tags			entity
//	@Accept			json
//	@Produce		json
//	@Param			kind	path	string	true	"Entity kind"
//	@Param			id		path	integer	true	"Record id"
//	@Param			payload	body	object	true	"Fields to change"
//	@Success		200	{object}	serializer.Response{data=object}
//	@Failure		400	{object}	serializer.Response{data=[]model.FieldError}
//	@Failure		404	{object}	serializer.Response
//	@Router			/entities/{kind}/{id} [patch]
func (h *EntityHandler[E]) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.decodePatch(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	e, err := h.svc.Update(c.Request.Context(), id, p)
	if err != nil {
		writeErr(c, err)
		return
	}
	if e == nil {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(h.Kind()+" not found"))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: e})
}

// Delete godoc
//
//	@Summary	Delete record
//	@Tags		entity
//	@Param		kind	path	string	true	"Entity kind"
//	@Param		id		path	integer	true	"Record id"
//	@Success	204
//	@Failure	404	{object}	serializer.Response
//	@Router		/entities/{kind}/{id} [delete]
func (h *EntityHandler[E]) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(h.Kind()+" not found"))
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID parses :id and answers 400 itself when it is malformed.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid id", fmt.Errorf("id %q", c.Param("id"))))
		return 0, false
	}
	return uint(id), true
}

// writeErr maps service errors onto status codes.
func writeErr(c *gin.Context, err error) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, serializer.ValidationErr(verr.Fields, err))
	case errors.Is(err, repo.ErrDuplicateKey):
		c.JSON(http.StatusConflict, serializer.ConflictErr("", err))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	}
}

// jsonBody decodes a JSON body without running gin's struct validation;
// records are validated by the store once defaults are applied.
type jsonBody struct{}

func (jsonBody) Name() string { return "json" }

func (jsonBody) Bind(req *http.Request, obj any) error {
	if req == nil || req.Body == nil {
		return errors.New("empty body")
	}
	return sonic.ConfigStd.NewDecoder(req.Body).Decode(obj)
}
