package http_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cogs/cmd"
	apihttp "cogs/internal/adapters/in/http"
	"cogs/internal/pkg/testdb"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const createBody = `{
	"supplier_name": "Acme",
	"po_name": "PO-1",
	"invoice_number": "INV-1",
	"order_date": "2024-02-14",
	"sales_tax": "10,00",
	"shipping": 20,
	"items": [
		{"asin": "B00A", "listing_title": "Item A", "quantity": 5, "purchase_price": "2.00"},
		{"asin": "B00B", "listing_title": "Item B", "quantity": 5, "purchase_price": 4}
	]
}`

type ServerTestSuite struct {
	suite.Suite
	e *echo.Echo
}

func (suite *ServerTestSuite) SetupTest() {
	db := testdb.Open(suite.T())
	root := cmd.NewCompositionRoot(cmd.Config{}, db, slog.New(slog.DiscardHandler))
	suite.e = root.CreateHTTPServer()
}

func (suite *ServerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	suite.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (suite *ServerTestSuite) create() apihttp.PurchaseOrder {
	rec := suite.do(http.MethodPost, "/api/v1/purchase-orders", createBody)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	return decode[apihttp.PurchaseOrder](suite.T(), rec)
}

func (suite *ServerTestSuite) assertDecimal(want string, got decimal.Decimal) {
	suite.T().Helper()
	suite.True(decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func (suite *ServerTestSuite) TestHealth() {
	rec := suite.do(http.MethodGet, "/health", "")

	suite.Equal(http.StatusOK, rec.Code)
	health := decode[apihttp.Health](suite.T(), rec)
	suite.True(health.OK)
}

func (suite *ServerTestSuite) TestCreatePurchaseOrder() {
	po := suite.create()

	suite.Equal("PO-1", po.Name)
	suite.Equal("INV-1", po.InvoiceNumber)
	suite.Equal("NEW", po.Status)
	suite.NotNil(po.SupplierID)
	suite.True(time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC).Equal(po.OrderDate))
	suite.assertDecimal("30", po.Subtotal)
	suite.assertDecimal("10", po.SalesTax)
	suite.assertDecimal("60", po.TotalExpense)
	suite.Require().Len(po.Items, 2)
	suite.assertDecimal("5", po.Items[0].UnitCOGS)
	suite.assertDecimal("25", po.Items[0].ExtendedTotal)
	suite.assertDecimal("7", po.Items[1].UnitCOGS)
	suite.NotNil(po.Items[0].ProductID)
	suite.NotNil(po.Items[0].LabelingCosts)
}

func (suite *ServerTestSuite) TestCreatePurchaseOrder_DecimalsAreStrings() {
	rec := suite.do(http.MethodPost, "/api/v1/purchase-orders", createBody)

	suite.Require().Equal(http.StatusCreated, rec.Code)
	suite.Contains(rec.Body.String(), `"total_expense":"60"`)
}

func (suite *ServerTestSuite) TestCreatePurchaseOrder_NumericStringQuantity() {
	body := strings.Replace(createBody, `"quantity": 5, "purchase_price": 4`, `"quantity": "5", "purchase_price": 4`, 1)

	rec := suite.do(http.MethodPost, "/api/v1/purchase-orders", body)

	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	po := decode[apihttp.PurchaseOrder](suite.T(), rec)
	suite.Require().Len(po.Items, 2)
	suite.Equal(5, po.Items[1].Quantity)
	suite.assertDecimal("60", po.TotalExpense)
}

func (suite *ServerTestSuite) TestCreatePurchaseOrder_InvalidPayloads() {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"malformed json", `{"po_name":`, "request body"},
		{"missing name", `{"items":[]}`, "purchase order name"},
		{"bad quantity", `{"po_name":"PO","items":[{"asin":"A","listing_title":"T","quantity":0,"purchase_price":1}]}`, "quantity"},
		{"missing price", `{"po_name":"PO","items":[{"asin":"A","listing_title":"T","quantity":1}]}`, "purchase price"},
		{"text quantity", `{"po_name":"PO","items":[{"asin":"A","listing_title":"T","quantity":"three","purchase_price":1}]}`, "quantity"},
		{"fractional quantity", `{"po_name":"PO","items":[{"asin":"A","listing_title":"T","quantity":1.5,"purchase_price":1}]}`, "quantity"},
		{"bad date", `{"po_name":"PO","order_date":"yesterday","items":[]}`, "order date"},
		{"asin too long", `{"po_name":"PO","items":[{"asin":"` + strings.Repeat("A", 40) + `","listing_title":"T","quantity":1,"purchase_price":1}]}`, "items[0].asin"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			rec := suite.do(http.MethodPost, "/api/v1/purchase-orders", tt.body)

			suite.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			body := decode[apihttp.Error](suite.T(), rec)
			suite.Equal(http.StatusBadRequest, body.Code)
			suite.Contains(body.Message, tt.message)
		})
	}

	rec := suite.do(http.MethodGet, "/api/v1/purchase-orders", "")
	suite.Equal("[]", strings.TrimSpace(rec.Body.String()), "rejected payloads store nothing")
}

func (suite *ServerTestSuite) TestListPurchaseOrders() {
	created := suite.create()

	rec := suite.do(http.MethodGet, "/api/v1/purchase-orders", "")

	suite.Require().Equal(http.StatusOK, rec.Code)
	rows := decode[[]apihttp.PurchaseOrderSummary](suite.T(), rec)
	suite.Require().Len(rows, 1)
	suite.Equal(created.ID, rows[0].ID)
	suite.Require().NotNil(rows[0].Supplier)
	suite.Equal("Acme", *rows[0].Supplier)
	suite.Equal(2, rows[0].ItemCount)
	suite.assertDecimal("60", rows[0].TotalExpense)
}

func (suite *ServerTestSuite) TestGetPurchaseOrder() {
	created := suite.create()

	rec := suite.do(http.MethodGet, "/api/v1/purchase-orders/"+created.ID.String(), "")

	suite.Require().Equal(http.StatusOK, rec.Code)
	po := decode[apihttp.PurchaseOrder](suite.T(), rec)
	suite.Equal(created.ID, po.ID)
	suite.Require().Len(po.Items, 2)
	suite.Equal("B00A", po.Items[0].ASIN)
	suite.assertDecimal("7", po.Items[1].UnitCOGS)
}

func (suite *ServerTestSuite) TestGetPurchaseOrder_Errors() {
	rec := suite.do(http.MethodGet, "/api/v1/purchase-orders/not-a-uuid", "")
	suite.Equal(http.StatusBadRequest, rec.Code)

	rec = suite.do(http.MethodGet, "/api/v1/purchase-orders/00000000-0000-0000-0000-000000000000", "")
	suite.Equal(http.StatusBadRequest, rec.Code)

	rec = suite.do(http.MethodGet, "/api/v1/purchase-orders/0190a5b2-7c3d-7e4f-8a9b-0c1d2e3f4a5b", "")
	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Equal(http.StatusNotFound, decode[apihttp.Error](suite.T(), rec).Code)
}

func (suite *ServerTestSuite) TestAddLabelingCost() {
	created := suite.create()
	itemA := created.Items[0]

	rec := suite.do(http.MethodPost, "/api/v1/purchase-order-items/"+itemA.ID.String()+"/labeling-costs",
		`{"note":"fnsku","cost_total":"10"}`)

	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	po := decode[apihttp.PurchaseOrder](suite.T(), rec)
	suite.assertDecimal("7", po.Items[0].UnitCOGS)
	suite.assertDecimal("7", po.Items[1].UnitCOGS)
	suite.assertDecimal("10", po.LabelingTotal)
	suite.assertDecimal("70", po.TotalExpense)
	suite.Require().Len(po.Items[0].LabelingCosts, 1)
	suite.Equal("fnsku", po.Items[0].LabelingCosts[0].Note)

	rec = suite.do(http.MethodGet, "/api/v1/purchase-orders/"+created.ID.String(), "")
	stored := decode[apihttp.PurchaseOrder](suite.T(), rec)
	suite.assertDecimal("70", stored.TotalExpense)
	suite.Len(stored.Items[0].LabelingCosts, 1)
}

func (suite *ServerTestSuite) TestAddLabelingCost_Errors() {
	created := suite.create()
	path := "/api/v1/purchase-order-items/" + created.Items[0].ID.String() + "/labeling-costs"

	rec := suite.do(http.MethodPost, path, `{"note":"x"}`)
	suite.Equal(http.StatusBadRequest, rec.Code, "cost_total is required")

	rec = suite.do(http.MethodPost, path, `{"cost_total":-5}`)
	suite.Equal(http.StatusBadRequest, rec.Code)

	rec = suite.do(http.MethodPost, path, `{"cost_total":"abc"}`)
	suite.Equal(http.StatusBadRequest, rec.Code, "unparseable cost_total")

	rec = suite.do(http.MethodGet, "/api/v1/purchase-orders/"+created.ID.String(), "")
	stored := decode[apihttp.PurchaseOrder](suite.T(), rec)
	suite.Empty(stored.Items[0].LabelingCosts)
	suite.assertDecimal("60", stored.TotalExpense)

	rec = suite.do(http.MethodPost, "/api/v1/purchase-order-items/0190a5b2-7c3d-7e4f-8a9b-0c1d2e3f4a5b/labeling-costs",
		`{"cost_total":5}`)
	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *ServerTestSuite) TestSetPurchaseOrderStatus() {
	created := suite.create()
	path := "/api/v1/purchase-orders/" + created.ID.String() + "/status"

	rec := suite.do(http.MethodPut, path, `{"status":"CLOSED"}`)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	po := decode[apihttp.PurchaseOrder](suite.T(), rec)
	suite.Equal("CLOSED", po.Status)
	suite.assertDecimal("60", po.TotalExpense)

	rec = suite.do(http.MethodPut, path, `{"status":"archived"}`)
	suite.Equal(http.StatusBadRequest, rec.Code)

	rec = suite.do(http.MethodPut, path, `{"status":"new"}`)
	suite.Equal(http.StatusBadRequest, rec.Code)

	rec = suite.do(http.MethodPut, path, `{}`)
	suite.Equal(http.StatusBadRequest, rec.Code)

	rec = suite.do(http.MethodPut, "/api/v1/purchase-orders/0190a5b2-7c3d-7e4f-8a9b-0c1d2e3f4a5b/status", `{"status":"NEW"}`)
	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *ServerTestSuite) TestRecalculatePurchaseOrder() {
	created := suite.create()

	rec := suite.do(http.MethodPost, "/api/v1/purchase-orders/"+created.ID.String()+"/recalculate", "")

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	po := decode[apihttp.PurchaseOrder](suite.T(), rec)
	suite.assertDecimal("60", po.TotalExpense)
	suite.assertDecimal("5", po.Items[0].UnitCOGS)
}

func (suite *ServerTestSuite) TestListProducts() {
	created := suite.create()
	suite.do(http.MethodPost, "/api/v1/purchase-order-items/"+created.Items[0].ID.String()+"/labeling-costs", `{"cost_total":10}`)

	rec := suite.do(http.MethodGet, "/api/v1/products", "")

	suite.Require().Equal(http.StatusOK, rec.Code)
	products := decode[[]apihttp.Product](suite.T(), rec)
	suite.Require().Len(products, 2)
	suite.Equal("AUTO-B00A", products[0].SKU)
	suite.Equal("AUTO-B00B", products[1].SKU)
	suite.Require().NotNil(products[0].Supplier)
	suite.Equal("Acme", *products[0].Supplier)
	suite.assertDecimal("7", products[0].Cost)
	suite.assertDecimal("7", products[1].Cost)
	suite.Equal("PURCHASE_ORDER", products[0].CostSource)
}

func (suite *ServerTestSuite) TestDeletePurchaseOrder() {
	created := suite.create()
	path := "/api/v1/purchase-orders/" + created.ID.String()

	rec := suite.do(http.MethodDelete, path, "")
	suite.Equal(http.StatusNoContent, rec.Code)

	rec = suite.do(http.MethodGet, path, "")
	suite.Equal(http.StatusNotFound, rec.Code)

	rec = suite.do(http.MethodDelete, path, "")
	suite.Equal(http.StatusNotFound, rec.Code)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func TestRequestValidator(t *testing.T) {
	v := apihttp.NewRequestValidator()

	require.NoError(t, v.Validate(&apihttp.StatusChange{Status: "NEW"}))

	err := v.Validate(&apihttp.StatusChange{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status")
	assert.Contains(t, err.Error(), "is required")
}
