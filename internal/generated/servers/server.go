// Package servers provides primitives to interact with the openapi HTTP API.
//
// The types and the echo wrapper follow the oapi-codegen echo-server layout
// for api/openapi.yaml.
package servers

import (
	"fmt"
	"net/http"

	"sourcing/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for GetOrdersParamsStatus.
const (
	GetOrdersParamsStatusCompleted    GetOrdersParamsStatus = "Completed"
	GetOrdersParamsStatusConfirmed    GetOrdersParamsStatus = "Confirmed"
	GetOrdersParamsStatusDelivered    GetOrdersParamsStatus = "Delivered"
	GetOrdersParamsStatusInProduction GetOrdersParamsStatus = "In Production"
)

// Defines values for UpdateCompanyRequestStatus.
const (
	UpdateCompanyRequestStatusApproved    UpdateCompanyRequestStatus = "Approved"
	UpdateCompanyRequestStatusPending     UpdateCompanyRequestStatus = "Pending"
	UpdateCompanyRequestStatusRejected    UpdateCompanyRequestStatus = "Rejected"
	UpdateCompanyRequestStatusUnderReview UpdateCompanyRequestStatus = "Under Review"
)

// AcceptQuoteRequest defines model for AcceptQuoteRequest.
type AcceptQuoteRequest struct {
	QuoteId openapi_types.UUID `json:"quoteId"`
}

// RejectQuoteRequest defines model for RejectQuoteRequest.
type RejectQuoteRequest struct {
	Comments string             `json:"comments"`
	QuoteId  openapi_types.UUID `json:"quoteId"`
}

// UpdateCompanyRequest defines model for UpdateCompanyRequest.
type UpdateCompanyRequest struct {
	GstTaxId              *string                     `json:"gstTaxId,omitempty"`
	HasBeenVerified       *bool                       `json:"hasBeenVerified,omitempty"`
	RegisteredCompanyName *string                     `json:"registeredCompanyName,omitempty"`
	RejectionReason       *string                     `json:"rejectionReason,omitempty"`
	Status                *UpdateCompanyRequestStatus `json:"status,omitempty"`
	VerifiedBy            *string                     `json:"verifiedBy,omitempty"`
}

// UpdateCompanyRequestStatus defines model for UpdateCompanyRequest.Status.
type UpdateCompanyRequestStatus string

// UpdateOrderStatusRequest defines model for UpdateOrderStatusRequest.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
	Step   string `json:"step"`
}

// VendorStatusRequest defines model for the VendorStatus request body.
type VendorStatusRequest struct {
	VendorId openapi_types.UUID `json:"vendorId"`
}

// Id defines model for Id.
type Id = openapi_types.UUID

// Search defines model for Search.
type Search = string

// GetCompaniesParams defines parameters for GetCompanies.
type GetCompaniesParams struct {
	Status *string `form:"status,omitempty" json:"status,omitempty"`
	Search *Search `form:"search,omitempty" json:"search,omitempty"`
}

// GetOrdersParams defines parameters for GetOrders.
type GetOrdersParams struct {
	Status *GetOrdersParamsStatus `form:"status,omitempty" json:"status,omitempty"`
}

// GetOrdersParamsStatus defines parameters for GetOrders.
type GetOrdersParamsStatus string

// GetProductsParams defines parameters for GetProducts.
type GetProductsParams struct {
	Category *string `form:"category,omitempty" json:"category,omitempty"`
}

// GetVendorsParams defines parameters for GetVendors.
type GetVendorsParams struct {
	Status *string `form:"status,omitempty" json:"status,omitempty"`
	Search *Search `form:"search,omitempty" json:"search,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /api/companies)
	GetCompanies(ctx echo.Context, params GetCompaniesParams) error
	// (DELETE /api/companies/{id})
	DeleteCompany(ctx echo.Context, id Id) error
	// (GET /api/companies/{id})
	GetCompany(ctx echo.Context, id Id) error
	// Update whitelisted company fields
	// (PATCH /api/companies/{id})
	UpdateCompany(ctx echo.Context, id Id) error
	// List orders newest first
	// (GET /api/orders)
	GetOrders(ctx echo.Context, params GetOrdersParams) error
	// Accept a quote and create its order
	// (POST /api/orders/accept)
	AcceptQuote(ctx echo.Context) error
	// (GET /api/orders/accepted-quotes)
	GetAcceptedQuotes(ctx echo.Context) error
	// (GET /api/orders/pending-quotes)
	GetPendingQuotes(ctx echo.Context) error
	// Reject a quote with comments
	// (POST /api/orders/reject)
	RejectQuote(ctx echo.Context) error
	// (GET /api/orders/rejected-quotes)
	GetRejectedQuotes(ctx echo.Context) error
	// (GET /api/products)
	GetProducts(ctx echo.Context, params GetProductsParams) error
	// (POST /api/products)
	CreateProduct(ctx echo.Context) error
	// (DELETE /api/products/{id})
	DeleteProduct(ctx echo.Context, id Id) error
	// (GET /api/products/{id})
	GetProduct(ctx echo.Context, id Id) error
	// (PUT /api/products/{id})
	UpdateProduct(ctx echo.Context, id Id) error
	// Production tracking view of an order
	// (GET /api/tracking/order-status/{id})
	GetOrderStatus(ctx echo.Context, id Id) error
	// Set the status of one production step
	// (PUT /api/tracking/order-status/{id})
	UpdateOrderStatus(ctx echo.Context, id Id) error
	// Relay one file to the media host
	// (POST /api/upload)
	UploadMedia(ctx echo.Context) error
	// (GET /api/vendors)
	GetVendors(ctx echo.Context, params GetVendorsParams) error
	// (POST /api/vendors/approve)
	ApproveVendor(ctx echo.Context) error
	// (POST /api/vendors/reject)
	RejectVendor(ctx echo.Context) error
	// (POST /api/vendors/under-review)
	MarkVendorUnderReview(ctx echo.Context) error
	// (GET /api/vendors/{id})
	GetVendor(ctx echo.Context, id Id) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindID(ctx echo.Context) (Id, error) {
	var id Id
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

func bindQuery(ctx echo.Context, name string, dest any) error {
	err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), dest)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

// GetCompanies converts echo context to params.
func (w *ServerInterfaceWrapper) GetCompanies(ctx echo.Context) error {
	var params GetCompaniesParams
	if err := bindQuery(ctx, "status", &params.Status); err != nil {
		return err
	}
	if err := bindQuery(ctx, "search", &params.Search); err != nil {
		return err
	}
	return w.Handler.GetCompanies(ctx, params)
}

// DeleteCompany converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteCompany(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteCompany(ctx, id)
}

// GetCompany converts echo context to params.
func (w *ServerInterfaceWrapper) GetCompany(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetCompany(ctx, id)
}

// UpdateCompany converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateCompany(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateCompany(ctx, id)
}

// GetOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var params GetOrdersParams
	if err := bindQuery(ctx, "status", &params.Status); err != nil {
		return err
	}
	return w.Handler.GetOrders(ctx, params)
}

// AcceptQuote converts echo context to params.
func (w *ServerInterfaceWrapper) AcceptQuote(ctx echo.Context) error {
	return w.Handler.AcceptQuote(ctx)
}

// GetAcceptedQuotes converts echo context to params.
func (w *ServerInterfaceWrapper) GetAcceptedQuotes(ctx echo.Context) error {
	return w.Handler.GetAcceptedQuotes(ctx)
}

// GetPendingQuotes converts echo context to params.
func (w *ServerInterfaceWrapper) GetPendingQuotes(ctx echo.Context) error {
	return w.Handler.GetPendingQuotes(ctx)
}

// RejectQuote converts echo context to params.
func (w *ServerInterfaceWrapper) RejectQuote(ctx echo.Context) error {
	return w.Handler.RejectQuote(ctx)
}

// GetRejectedQuotes converts echo context to params.
func (w *ServerInterfaceWrapper) GetRejectedQuotes(ctx echo.Context) error {
	return w.Handler.GetRejectedQuotes(ctx)
}

// GetProducts converts echo context to params.
func (w *ServerInterfaceWrapper) GetProducts(ctx echo.Context) error {
	var params GetProductsParams
	if err := bindQuery(ctx, "category", &params.Category); err != nil {
		return err
	}
	return w.Handler.GetProducts(ctx, params)
}

// CreateProduct converts echo context to params.
func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	return w.Handler.CreateProduct(ctx)
}

// DeleteProduct converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteProduct(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteProduct(ctx, id)
}

// GetProduct converts echo context to params.
func (w *ServerInterfaceWrapper) GetProduct(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetProduct(ctx, id)
}

// UpdateProduct converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateProduct(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateProduct(ctx, id)
}

// GetOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrderStatus(ctx, id)
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderStatus(ctx, id)
}

// UploadMedia converts echo context to params.
func (w *ServerInterfaceWrapper) UploadMedia(ctx echo.Context) error {
	return w.Handler.UploadMedia(ctx)
}

// GetVendors converts echo context to params.
func (w *ServerInterfaceWrapper) GetVendors(ctx echo.Context) error {
	var params GetVendorsParams
	if err := bindQuery(ctx, "status", &params.Status); err != nil {
		return err
	}
	if err := bindQuery(ctx, "search", &params.Search); err != nil {
		return err
	}
	return w.Handler.GetVendors(ctx, params)
}

// ApproveVendor converts echo context to params.
func (w *ServerInterfaceWrapper) ApproveVendor(ctx echo.Context) error {
	return w.Handler.ApproveVendor(ctx)
}

// RejectVendor converts echo context to params.
func (w *ServerInterfaceWrapper) RejectVendor(ctx echo.Context) error {
	return w.Handler.RejectVendor(ctx)
}

// MarkVendorUnderReview converts echo context to params.
func (w *ServerInterfaceWrapper) MarkVendorUnderReview(ctx echo.Context) error {
	return w.Handler.MarkVendorUnderReview(ctx)
}

// GetVendor converts echo context to params.
func (w *ServerInterfaceWrapper) GetVendor(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetVendor(ctx, id)
}

// EchoRouter is implemented by both echo.Echo and echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/companies", wrapper.GetCompanies)
	router.DELETE(baseURL+"/api/companies/:id", wrapper.DeleteCompany)
	router.GET(baseURL+"/api/companies/:id", wrapper.GetCompany)
	router.PATCH(baseURL+"/api/companies/:id", wrapper.UpdateCompany)
	router.GET(baseURL+"/api/orders", wrapper.GetOrders)
	router.POST(baseURL+"/api/orders/accept", wrapper.AcceptQuote)
	router.GET(baseURL+"/api/orders/accepted-quotes", wrapper.GetAcceptedQuotes)
	router.GET(baseURL+"/api/orders/pending-quotes", wrapper.GetPendingQuotes)
	router.POST(baseURL+"/api/orders/reject", wrapper.RejectQuote)
	router.GET(baseURL+"/api/orders/rejected-quotes", wrapper.GetRejectedQuotes)
	router.GET(baseURL+"/api/products", wrapper.GetProducts)
	router.POST(baseURL+"/api/products", wrapper.CreateProduct)
	router.DELETE(baseURL+"/api/products/:id", wrapper.DeleteProduct)
	router.GET(baseURL+"/api/products/:id", wrapper.GetProduct)
	router.PUT(baseURL+"/api/products/:id", wrapper.UpdateProduct)
	router.GET(baseURL+"/api/tracking/order-status/:id", wrapper.GetOrderStatus)
	router.PUT(baseURL+"/api/tracking/order-status/:id", wrapper.UpdateOrderStatus)
	router.POST(baseURL+"/api/upload", wrapper.UploadMedia)
	router.GET(baseURL+"/api/vendors", wrapper.GetVendors)
	router.POST(baseURL+"/api/vendors/approve", wrapper.ApproveVendor)
	router.POST(baseURL+"/api/vendors/reject", wrapper.RejectVendor)
	router.POST(baseURL+"/api/vendors/under-review", wrapper.MarkVendorUnderReview)
	router.GET(baseURL+"/api/vendors/:id", wrapper.GetVendor)
}

// GetSwagger returns the OpenAPI document the server implements.
func GetSwagger() (*openapi3.T, error) {
	swagger, err := openapi3.NewLoader().LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
