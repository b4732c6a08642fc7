package api

import (
	"net/http"
	"pachli/shared"
)

// ApiResponse is a successful API call.
type ApiResponse[T any] struct {
	Header http.Header
	Body   T
	Code   int
}

// Links returns the pagination cursors from the response's Link header.
func (r *ApiResponse[T]) Links() shared.PageLinks {
	return shared.PageLinksFromHeader(r.Header.Get("Link"))
}

// Empty is the body of calls whose response carries nothing of interest.
type Empty struct{}
