package main

import (
	"log"
	"net/http"

	"github.com/ChitkulLakshya/PackPal/handlers"
)

func SetupServer(port string) *http.Server {
	mux := http.NewServeMux()

	// setup routes
	mux.HandleFunc("/users/register", handlers.HandleRegister)
	mux.HandleFunc("/users/login", handlers.HandleLogin)
	mux.HandleFunc("/users/user", handlers.HandleUsers)

	mux.HandleFunc("/travels/options", handlers.HandleTravelOptions)

	mux.HandleFunc("/packing/list", handlers.HandlePackingList)

	mux.HandleFunc("/trips/user", handlers.HandleTripsUser)
	mux.HandleFunc("/trips/user/", handlers.HandleDeleteTrip)

	mux.HandleFunc("/resetTestDatabase", handlers.HandleResetTestDatabase)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	return server
}

func SetupRoutes(port string) {
	server := SetupServer(port)

	log.Println("Server listening on port " + port)

	err := server.ListenAndServe()
	if err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
