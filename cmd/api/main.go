package main

import (
	"log"
	"os"
	"strconv"

	"intermarket/cmd"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, relying on actual environment variables")
	}
}

func main() {
	port := 3009
	if raw := os.Getenv("INTERMARKET_PORT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("invalid INTERMARKET_PORT %q: %v", raw, err)
		}
		port = parsed
	}

	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	err = apiHandler.StartApi(port)
	if err != nil {
		log.Fatal(err)
	}
}
