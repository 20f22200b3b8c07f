package utils

import (
	"encoding/json"
	"net/http"
)

// DecodeJSONRequest decodes the request body into dst, rejecting unknown
// fields. On failure it writes a 422 with the decode error and reports it to
// the caller so the handler can bail out.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteErrorResponse(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return err
	}
	return nil
}
