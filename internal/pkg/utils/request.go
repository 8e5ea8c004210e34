package utils

import (
	"class-planner-service/internal/pkg/exceptions"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// ParseIndexParam reads a zero-based collector index from the URL.
func ParseIndexParam(r *http.Request, paramName string) (int, error) {
	raw := chi.URLParam(r, paramName)
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, exceptions.ErrURLParamValidation(err, paramName)
	}
	if index < 0 {
		return 0, exceptions.ErrIndexOutOfRange(nil)
	}
	return index, nil
}

// DecodeAndValidate decodes a JSON body into request and runs struct validation.
func DecodeAndValidate(r *http.Request, request interface{}) error {
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return exceptions.ErrRequestBodyTooLarge(err)
		}
		return exceptions.ErrCannotParseJSON(err)
	}

	err = ValidateStruct(request)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
