// Package bind decodes and validates JSON request bodies.
package bind

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pamleeskitchen/bakehouse/pkg/validate"
)

// maxBodySize caps request bodies at 1 MiB.
const maxBodySize = 1 << 20

var ErrInvalidJSON = errors.New("bind: invalid JSON body")

// JSON decodes the request body into dst. Unknown fields are rejected.
func JSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return ErrInvalidJSON
	}
	return nil
}

// JSONValidated decodes the body into dst and runs struct validation.
// The returned map is nil when decoding fails and empty when valid.
func JSONValidated(w http.ResponseWriter, r *http.Request, dst interface{}) (map[string]string, error) {
	if err := JSON(w, r, dst); err != nil {
		return nil, err
	}
	return validate.Struct(dst), nil
}
