package main

import (
	"flag"
	"github.com/joho/godotenv"
	"log"
	"os"
	"strconv"

	"github.com/MikuMikuMe/green-travel-planner/config"
)

func main() {
	InitLogging()

	// a .env file is optional, variables may come from the environment
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file loaded")
	}

	// load config.yml, defaults apply when the file is absent
	err = config.LoadAppConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// get port from flag
	port := flag.String("port", "", "Port on which the server listens")
	flag.Parse()

	// setup routes
	SetupRoutes(resolvePort(*port))
}

// resolvePort picks the listen port: flag over PORT env over config.yml.
func resolvePort(flagPort string) string {
	if flagPort != "" {
		return flagPort
	}
	if envPort := os.Getenv("PORT"); envPort != "" {
		return envPort
	}
	return strconv.Itoa(config.Config.Server.Port)
}
