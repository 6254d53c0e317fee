package handler

import (
	"io"
	"net/http"
	"strconv"

	"marketplace/internal/domain/constants"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
)

// parseIDParam reads a positive numeric path parameter.
func parseIDParam(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a positive integer")
	}

	return uint(id), nil
}

// queryInt reads an integer query parameter, returning 0 when absent or malformed.
func queryInt(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return v
}

// formImage opens the uploaded file under field. A missing file yields a nil upload and a no-op closer.
func formImage(c echo.Context, field string) (*usecase.ImageUpload, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}

		return nil, func() {}, domainerrors.ErrValidationFailed.WithDetails("invalid multipart form")
	}

	if header.Size > constants.MaxImageSize {
		return nil, func() {}, domainerrors.ErrImageTooLarge
	}

	file, err := header.Open()
	if err != nil {
		return nil, func() {}, errors.Wrap(err, "failed to open uploaded file")
	}

	upload := &usecase.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Content:     io.LimitReader(file, constants.MaxImageSize+1),
	}

	return upload, func() { _ = file.Close() }, nil
}
