package adapthttp

import (
	"log"
	"net/http"
	"strconv"
	"strings"
)

func (s *Server) render(w http.ResponseWriter, status int, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.ExecuteTemplate(w, page, data); err != nil {
		log.Printf("render %s: %v", page, err)
	}
}

// serverError logs the underlying failure for operators and returns a
// generic response that exposes no internal detail.
func (s *Server) serverError(w http.ResponseWriter, err error) {
	log.Printf("internal error: %v", err)
	http.Error(w, "something went wrong", http.StatusInternalServerError)
}

// floatField coerces a numeric form field. An empty field reads as zero;
// anything else must parse as a number.
func floatField(r *http.Request, key string) (float64, error) {
	v := strings.TrimSpace(r.PostFormValue(key))
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}
