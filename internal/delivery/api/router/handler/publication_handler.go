package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PublicationHandlerParams holds dependencies for PublicationHandler, injected by Fx.
type PublicationHandlerParams struct {
	fx.In

	PublicationUC usecase.PublicationUsecase
	Logger        *slog.Logger
}

// PublicationHandler holds dependencies for catalog handlers
type PublicationHandler struct {
	publicationUC usecase.PublicationUsecase
	logger        *slog.Logger
}

// NewPublicationHandler is the constructor for PublicationHandler
func NewPublicationHandler(params PublicationHandlerParams) *PublicationHandler {
	return &PublicationHandler{
		publicationUC: params.PublicationUC,
		logger:        params.Logger,
	}
}

// CreatePublicationRequest is bound from the multipart form of POST /publications
type CreatePublicationRequest struct {
	Title         string  `form:"title" validate:"required,max=255"`
	Brand         string  `form:"brand" validate:"max=100"`
	Price         float64 `form:"price" validate:"gt=0"`
	State         string  `form:"state" validate:"required,max=50"`
	Sku           string  `form:"sku" validate:"max=100"`
	CategoryID    uint    `form:"categoryId" validate:"required"`
	SubCategoryID uint    `form:"subCategoryId" validate:"required"`
	Description   string  `form:"description"`
	ImageURL      string  `form:"imageUrl" validate:"omitempty,url"`
	CityID        uint    `form:"cityId" validate:"required"`
	SellerID      uint    `form:"sellerId" validate:"required"`
}

// UpdatePublicationRequest represents the JSON body of PUT /publications/:id
type UpdatePublicationRequest struct {
	Title         *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Brand         *string  `json:"brand" validate:"omitempty,max=100"`
	Price         *float64 `json:"price" validate:"omitempty,gt=0"`
	State         *string  `json:"state" validate:"omitempty,max=50"`
	Sku           *string  `json:"sku" validate:"omitempty,max=100"`
	CategoryID    *uint    `json:"categoryId"`
	SubCategoryID *uint    `json:"subCategoryId"`
	Description   *string  `json:"description"`
	ImageURL      *string  `json:"imageUrl" validate:"omitempty,url"`
	CityID        *uint    `json:"cityId"`
	SellerID      *uint    `json:"sellerId"`
}

// List handles GET /publications
func (h *PublicationHandler) List(c echo.Context) error {
	publications, err := h.publicationUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, publications)
}

// ListPaginated handles GET /publications/paginated?page=&pageSize=
func (h *PublicationHandler) ListPaginated(c echo.Context) error {
	page, err := h.publicationUC.ListPaginated(c.Request().Context(), queryInt(c, "page"), queryInt(c, "pageSize"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// Latest handles GET /publications/latest?limit=
func (h *PublicationHandler) Latest(c echo.Context) error {
	publications, err := h.publicationUC.Latest(c.Request().Context(), queryInt(c, "limit"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, publications)
}

// Get handles GET /publications/:id
func (h *PublicationHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	publication, err := h.publicationUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, publication)
}

// Seller handles GET /publications/:id/seller
func (h *PublicationHandler) Seller(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	buyer, err := h.publicationUC.SellerOfPublication(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, buyer)
}

// QRCode handles GET /publications/:id/qr and answers with a PNG
func (h *PublicationHandler) QRCode(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.publicationUC.ShareQRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Create handles POST /publications (multipart, optional file field "image")
func (h *PublicationHandler) Create(c echo.Context) error {
	var req CreatePublicationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid publication input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	image, closeFile, err := formImage(c, "image")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer closeFile()

	publication, err := h.publicationUC.Create(c.Request().Context(), usecase.CreatePublicationInput{
		Title:         req.Title,
		Brand:         req.Brand,
		Price:         req.Price,
		State:         req.State,
		Sku:           req.Sku,
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		CityID:        req.CityID,
		SellerID:      req.SellerID,
	}, image)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, publication)
}

// Update handles PUT /publications/:id
func (h *PublicationHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdatePublicationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid publication input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	publication, err := h.publicationUC.Update(c.Request().Context(), id, usecase.UpdatePublicationInput{
		Title:         req.Title,
		Brand:         req.Brand,
		Price:         req.Price,
		State:         req.State,
		Sku:           req.Sku,
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		CityID:        req.CityID,
		SellerID:      req.SellerID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, publication)
}

// ReplaceImage handles PATCH /publications/:id/image. Text fields travel as raw form values and
// are whitelisted by the usecase; the file field "image" is optional.
func (h *PublicationHandler) ReplaceImage(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	image, closeFile, err := formImage(c, "image")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer closeFile()

	form, err := c.FormParams()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid publication form")
	}

	fields := make(map[string]string, len(form))
	for key, values := range form {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	publication, err := h.publicationUC.ReplaceImage(c.Request().Context(), id, fields, image)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, publication)
}

// Delete handles DELETE /publications/:id
func (h *PublicationHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.publicationUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
