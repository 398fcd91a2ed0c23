package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rsalazarq/storefront/internal/api/middleware"
	"github.com/rsalazarq/storefront/internal/errors"
	"github.com/rsalazarq/storefront/internal/utils"
	"github.com/rsalazarq/storefront/internal/utils/response"
)

// sessionID keys the cart. Browsers send an explicit session header; without
// one the shopper's identity from the token is used, so a signed-in shopper
// sees the same cart across devices.
func sessionID(r *http.Request) string {

	if sid := r.Header.Get("X-Session-ID"); sid != "" {
		return sid
	}

	return middleware.EmailFromContext(r.Context())
}

// decodeJSONBody decodes the request body and writes the error response
// itself. Returns false when the handler should stop.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dest any) bool {

	if err := utils.DecodeJSONBody(r, dest); err != nil {
		response.Error(w, errors.BadRequestError("Invalid request body").WithDetail(err.Error()))

		return false
	}

	return true
}

// validateStruct validates the decoded body and writes the error response
// itself. Returns false when the handler should stop.
func validateStruct(w http.ResponseWriter, validate *validator.Validate, data any) bool {

	if err := utils.ValidateStruct(validate, data); err != nil {
		var validationErrs validator.ValidationErrors
		if stderrors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)

			return false
		}

		response.Error(w, errors.BadRequestError(err.Error()))

		return false
	}

	return true
}
