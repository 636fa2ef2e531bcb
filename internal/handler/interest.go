package handler

import (
	"net/http"

	"github.com/oapi-codegen/runtime"
)

type interestList struct {
	Data []string `json:"data"`
}

// ListInterests handles GET /interests.
// Supports ?prefix= for autocomplete.
func (s *Server) ListInterests(w http.ResponseWriter, r *http.Request) {
	var prefix *string
	if err := runtime.BindQueryParameter("form", true, false, "prefix", r.URL.Query(), &prefix); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid prefix parameter")
		return
	}
	var p string
	if prefix != nil {
		p = *prefix
	}

	tags, err := s.interests.List(r.Context(), p)
	if err != nil {
		s.writeServiceError(w, r, err, "interests not found")
		return
	}
	if tags == nil {
		tags = []string{}
	}
	writeJSON(w, http.StatusOK, interestList{Data: tags})
}
