// Package binder decodes HTTP request bodies into Go values.
//
// Only strict JSON binding is provided: the Content-Type must be
// application/json, the body is size-limited, unknown fields are rejected and
// trailing data after the JSON value is an error.
//
//	var d signals.Descriptor
//	if err := binder.JSON()(r, &d); err != nil {
//	    http.Error(w, err.Error(), http.StatusBadRequest)
//	    return
//	}
//
// All errors wrap one of the package sentinels so callers can map them to
// status codes with errors.Is.
package binder
