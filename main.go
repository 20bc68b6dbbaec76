package main

import (
	"flag"
	"log"
	"os"

	"github.com/ChitkulLakshya/PackPal/db"
	"github.com/ChitkulLakshya/PackPal/externals"
	"github.com/ChitkulLakshya/PackPal/mockservers"
	"github.com/joho/godotenv"
)

func main() {
	// retrieve execution mode
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	testMode := os.Getenv("TEST_MODE")

	// get port from flag
	port := flag.String("port", "80", "Port on which the server listens")
	flag.Parse()

	// init db
	database, err := db.InitDB(testMode)
	if err != nil || database == nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer func() {
		sqlDB, err := database.DB()
		if err != nil {
			log.Println("Failed to get DB from gorm: ", err)
			return
		}
		err = sqlDB.Close()
		if err != nil {
			return
		}
	}()

	// init apis
	externals.InitGeocodingApi(testMode)
	externals.InitRoutingApi(testMode)
	externals.InitWeatherApi(testMode)

	// in test mode, start mock servers in new go routines
	if testMode == "test" {
		go mockservers.StartGeocodingApiServer()
		go mockservers.StartRoutingApiServer()
		go mockservers.StartWeatherApiServer()
	}

	// setup routes
	SetupRoutes(*port)
}
