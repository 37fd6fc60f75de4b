package main

import (
	"log"

	"traderace/cmd"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// missing .env is fine in deployed environments
	_ = godotenv.Load()

	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	err = apiHandler.StartApi(3009)
	if err != nil {
		log.Fatal(err)
	}
}
