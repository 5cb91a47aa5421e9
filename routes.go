package main

import (
	"log"
	"net/http"

	"github.com/MikuMikuMe/green-travel-planner/handlers"
)

func SetupServer(port string) *http.Server {
	mux := http.NewServeMux()

	// setup routes
	// the root handler also answers unmatched paths with a 404 page
	mux.HandleFunc("/", handlers.HandleIndex)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: handlers.RecoverMiddleware(mux),
	}

	return server
}

func SetupRoutes(port string) {
	server := SetupServer(port)

	log.Println("Server listening on port " + port)
	err := server.ListenAndServe()
	if err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
