package infra

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	errs "github.com/umalmyha/customerlib/internal/errors"
	"github.com/umalmyha/customerlib/internal/model"
	svcMocks "github.com/umalmyha/customerlib/internal/service/mocks"
	"github.com/umalmyha/customerlib/internal/validation"
)

func newTestRouter(t *testing.T) (*echo.Echo, *svcMocks.CustomerService) {
	echoValidator, err := validation.EnglishEcho()
	require.NoError(t, err, "failed to build validator")

	customerSvc := svcMocks.NewCustomerService(t)
	e := Router(Services{
		Customer: customerSvc,
		Address:  svcMocks.NewAddressService(t),
		Note:     svcMocks.NewNoteService(t),
	}, echoValidator)
	return e, customerSvc
}

func serve(e *echo.Echo, method, target, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter(t *testing.T) {
	e, customerSvc := newTestRouter(t)

	t.Log("request id is generated")
	{
		customerSvc.On("Count", mock.Anything).Return(3, nil).Once()

		rec := serve(e, http.MethodGet, "/api/customers/count", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"total":3}`, rec.Body.String())
		require.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	}

	t.Log("validation failure is mapped to unprocessable entity")
	{
		res := validation.Result{Violations: []validation.Violation{{Field: "Addresses", Message: "At least one address is required."}}}
		customerSvc.On("Save", mock.Anything, mock.AnythingOfType("*model.Customer")).Return(errs.NewValidationErr(res)).Once()

		rec := serve(e, http.MethodPost, "/api/customers", `{"lastName":"Doe"}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.JSONEq(t, `{"errors":[{"field":"Addresses","message":"At least one address is required."}]}`, rec.Body.String())
	}

	t.Log("invalid id is mapped to bad request")
	{
		customerSvc.On("Delete", mock.Anything, 0).Return(false, errs.NewInvalidArgumentErr("id", "Cannot be less than 1.")).Once()

		rec := serve(e, http.MethodDelete, "/api/customers/0", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}

	t.Log("missing customer is mapped to not found")
	{
		customerSvc.On("Get", mock.Anything, 8, false, true).Return((*model.Customer)(nil), nil).Once()

		rec := serve(e, http.MethodGet, "/api/customers/8?includeNotes=true", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	t.Log("field revalidation route")
	{
		rec := serve(e, http.MethodPost, "/api/validation/notes/Content", `{"content":"  "}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"errors":[{"field":"Content","message":"Note cannot be empty or whitespace."}]}`, rec.Body.String())
	}
}
