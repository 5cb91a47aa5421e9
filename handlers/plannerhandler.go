package handlers

import (
	"log"
	"net/http"

	"github.com/MikuMikuMe/green-travel-planner/internals"
	"github.com/MikuMikuMe/green-travel-planner/model"
)

var sampler = internals.NewDefaultSampler()

// SetSampler replaces the process-wide sampler, used by tests to inject
// a deterministic random source.
func SetSampler(s *internals.Sampler) {
	sampler = s
}

type indexData struct {
	Start       string
	End         string
	OptimalMode model.Mode
	Emissions   []model.EmissionEntry
	HasResult   bool
}

// HandleIndex serves the planner form on GET and plans a travel on POST.
// The mux routes every path here, so anything but the root is a 404.
func HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		HandleNotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		renderIndex(w, indexData{})
	case http.MethodPost:
		handlePlanTravel(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

func handlePlanTravel(w http.ResponseWriter, r *http.Request) {
	// get form fields
	err := r.ParseForm()
	if err != nil {
		log.Println("Error parsing form: ", err)
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}
	route := model.Route{
		Start: r.PostFormValue("start"),
		End:   r.PostFormValue("end"),
	}
	if err := route.Validate(); err != nil {
		log.Println("Invalid route: ", err)
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	// simulate emissions data for the travel modes
	emissions := sampler.Sample(route)

	// suggest the travel mode with the lowest emissions
	optimalMode, err := internals.SuggestRoute(emissions)
	if err != nil {
		log.Println("Error suggesting route: ", err)
		renderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	renderIndex(w, indexData{
		Start:       route.Start,
		End:         route.End,
		OptimalMode: optimalMode,
		Emissions:   emissions.Entries(),
		HasResult:   true,
	})
}

func renderIndex(w http.ResponseWriter, data indexData) {
	err := templates.ExecuteTemplate(w, "index.html", data)
	if err != nil {
		log.Println("Error rendering index page: ", err)
		http.Error(w, "Internal server error.", http.StatusInternalServerError)
	}
}
