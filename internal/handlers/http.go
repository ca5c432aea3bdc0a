package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/customerlib/internal/model"
	"github.com/umalmyha/customerlib/internal/service"
	"github.com/umalmyha/customerlib/internal/validation"
)

const defaultPageSize = 20

type listCustomers struct {
	Page             int `validate:"min=0"`
	PageSize         int `validate:"min=0,max=100"`
	ExpectedTotal    int `validate:"min=0"`
	IncludeAddresses bool
	IncludeNotes     bool
	CheckTotalSame   bool
}

type includes struct {
	IncludeAddresses bool
	IncludeNotes     bool
}

type total struct {
	Total int `json:"total"`
}

func pathID(c echo.Context, name string) (int, error) {
	var id int
	if err := echo.PathParamsBinder(c).MustInt(name, &id).BindError(); err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return id, nil
}

func notFound(kind model.Kind) error {
	return echo.NewHTTPError(http.StatusNotFound, kind.String()+" not found")
}

// CustomerHTTPHandler is http handler for customer endpoint
type CustomerHTTPHandler struct {
	customerSvc service.CustomerService
	addressSvc  service.AddressService
	noteSvc     service.NoteService
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler
func NewCustomerHTTPHandler(customerSvc service.CustomerService, addressSvc service.AddressService, noteSvc service.NoteService) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{customerSvc: customerSvc, addressSvc: addressSvc, noteSvc: noteSvc}
}

// Get gets customer, addresses and notes are loaded on demand
func (h *CustomerHTTPHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var inc includes
	err = echo.QueryParamsBinder(c).
		Bool("includeAddresses", &inc.IncludeAddresses).
		Bool("includeNotes", &inc.IncludeNotes).
		BindError()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.customerSvc.Get(c.Request().Context(), id, inc.IncludeAddresses, inc.IncludeNotes)
	if err != nil {
		return err
	}

	if customer == nil {
		return notFound(model.KindCustomer)
	}
	return c.JSON(http.StatusOK, customer)
}

// List gets all customers or a single page of them when page or pageSize is provided
func (h *CustomerHTTPHandler) List(c echo.Context) error {
	var q listCustomers
	err := echo.QueryParamsBinder(c).
		Int("page", &q.Page).
		Int("pageSize", &q.PageSize).
		Bool("includeAddresses", &q.IncludeAddresses).
		Bool("includeNotes", &q.IncludeNotes).
		Int("expectedTotal", &q.ExpectedTotal).
		BindError()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	q.CheckTotalSame = c.QueryParam("expectedTotal") != ""

	if err := c.Validate(&q); err != nil {
		return err
	}

	ctx := c.Request().Context()

	if q.Page == 0 && q.PageSize == 0 && !q.CheckTotalSame {
		customers, err := h.customerSvc.GetAll(ctx, q.IncludeAddresses, q.IncludeNotes)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, customers)
	}

	if q.Page == 0 {
		q.Page = 1
	}

	if q.PageSize == 0 {
		q.PageSize = defaultPageSize
	}

	customers, err := h.customerSvc.GetPage(ctx, service.PageQuery{
		Page:             q.Page,
		PageSize:         q.PageSize,
		IncludeAddresses: q.IncludeAddresses,
		IncludeNotes:     q.IncludeNotes,
		CheckTotalSame:   q.CheckTotalSame,
		ExpectedTotal:    q.ExpectedTotal,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Count gets total number of customers
func (h *CustomerHTTPHandler) Count(c echo.Context) error {
	count, err := h.customerSvc.Count(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &total{Total: count})
}

// Post creates customer with its addresses and notes
func (h *CustomerHTTPHandler) Post(c echo.Context) error {
	var customer model.Customer
	if err := c.Bind(&customer); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.customerSvc.Save(c.Request().Context(), &customer); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, &customer)
}

// Put updates customer's own fields
func (h *CustomerHTTPHandler) Put(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var customer model.Customer
	if err := c.Bind(&customer); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	customer.ID = id

	updated, err := h.customerSvc.Update(c.Request().Context(), &customer)
	if err != nil {
		return err
	}

	if !updated {
		return notFound(model.KindCustomer)
	}
	return c.JSON(http.StatusOK, &customer)
}

// Delete deletes customer with its addresses and notes
func (h *CustomerHTTPHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	deleted, err := h.customerSvc.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	if !deleted {
		return notFound(model.KindCustomer)
	}
	return c.NoContent(http.StatusNoContent)
}

// Addresses gets addresses of customer
func (h *CustomerHTTPHandler) Addresses(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	addresses, err := h.addressSvc.FindByCustomer(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, addresses)
}

// Notes gets notes of customer
func (h *CustomerHTTPHandler) Notes(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	notes, err := h.noteSvc.FindByCustomer(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notes)
}

// AddressHTTPHandler is http handler for address endpoint
type AddressHTTPHandler struct {
	addressSvc service.AddressService
}

// NewAddressHTTPHandler builds new AddressHTTPHandler
func NewAddressHTTPHandler(addressSvc service.AddressService) *AddressHTTPHandler {
	return &AddressHTTPHandler{addressSvc: addressSvc}
}

// Get gets address
func (h *AddressHTTPHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	address, err := h.addressSvc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	if address == nil {
		return notFound(model.KindAddress)
	}
	return c.JSON(http.StatusOK, address)
}

// Post creates address of existing customer
func (h *AddressHTTPHandler) Post(c echo.Context) error {
	var address model.Address
	if err := c.Bind(&address); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	saved, err := h.addressSvc.Save(c.Request().Context(), &address)
	if err != nil {
		return err
	}

	if !saved {
		return notFound(model.KindCustomer)
	}
	return c.JSON(http.StatusCreated, &address)
}

// Put updates address
func (h *AddressHTTPHandler) Put(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var address model.Address
	if err := c.Bind(&address); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	address.ID = id

	updated, err := h.addressSvc.Update(c.Request().Context(), &address)
	if err != nil {
		return err
	}

	if !updated {
		return notFound(model.KindAddress)
	}
	return c.JSON(http.StatusOK, &address)
}

// Delete deletes address
func (h *AddressHTTPHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	deleted, err := h.addressSvc.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	if !deleted {
		return notFound(model.KindAddress)
	}
	return c.NoContent(http.StatusNoContent)
}

// NoteHTTPHandler is http handler for note endpoint
type NoteHTTPHandler struct {
	noteSvc service.NoteService
}

// NewNoteHTTPHandler builds new NoteHTTPHandler
func NewNoteHTTPHandler(noteSvc service.NoteService) *NoteHTTPHandler {
	return &NoteHTTPHandler{noteSvc: noteSvc}
}

// Get gets note
func (h *NoteHTTPHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	note, err := h.noteSvc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	if note == nil {
		return notFound(model.KindNote)
	}
	return c.JSON(http.StatusOK, note)
}

// Post creates note of existing customer
func (h *NoteHTTPHandler) Post(c echo.Context) error {
	var note model.Note
	if err := c.Bind(&note); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	saved, err := h.noteSvc.Save(c.Request().Context(), &note)
	if err != nil {
		return err
	}

	if !saved {
		return notFound(model.KindCustomer)
	}
	return c.JSON(http.StatusCreated, &note)
}

// Put updates note
func (h *NoteHTTPHandler) Put(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var note model.Note
	if err := c.Bind(&note); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	note.ID = id

	updated, err := h.noteSvc.Update(c.Request().Context(), &note)
	if err != nil {
		return err
	}

	if !updated {
		return notFound(model.KindNote)
	}
	return c.JSON(http.StatusOK, &note)
}

// Delete deletes note
func (h *NoteHTTPHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	deleted, err := h.noteSvc.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	if !deleted {
		return notFound(model.KindNote)
	}
	return c.NoContent(http.StatusNoContent)
}

// ValidationHTTPHandler revalidates single field of posted entity
type ValidationHTTPHandler struct{}

// NewValidationHTTPHandler builds new ValidationHTTPHandler
func NewValidationHTTPHandler() *ValidationHTTPHandler {
	return &ValidationHTTPHandler{}
}

// Field validates field named by path of entity kind named by path
func (h *ValidationHTTPHandler) Field(c echo.Context) error {
	var entity model.Entity
	switch model.ParseKind(c.Param("kind")) {
	case model.KindCustomer:
		entity = &model.Customer{}
	case model.KindAddress:
		entity = &model.Address{}
	case model.KindNote:
		entity = &model.Note{}
	default:
		return echo.NewHTTPError(http.StatusNotFound, "unknown entity kind "+c.Param("kind"))
	}

	if err := (&echo.DefaultBinder{}).BindBody(c, entity); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, _ := validation.ValidateProperty(entity, c.Param("field"))
	if res.Violations == nil {
		res.Violations = []validation.Violation{}
	}
	return c.JSON(http.StatusOK, &res)
}
