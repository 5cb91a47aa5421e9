package handlers

import (
	"log"
	"net/http"
)

type errorData struct {
	ErrorMessage string
}

// renderError writes the error page with the given status. The message
// is shown to the user verbatim.
func renderError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	err := templates.ExecuteTemplate(w, "error.html", errorData{ErrorMessage: message})
	if err != nil {
		log.Println("Error rendering error page: ", err)
	}
}

// HandleNotFound renders the error page for unmatched paths.
func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	log.Println("Page not found: ", r.URL.Path)
	renderError(w, http.StatusNotFound, "Page not found.")
}

// RecoverMiddleware converts a panic in the wrapped handler into a
// generic 500 error page.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Println("An error occurred: ", rec)
				renderError(w, http.StatusInternalServerError, "Internal server error.")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
