package main

import (
	"log"

	"betsim-platform/internal/app"
)

func main() {
	server, err := app.NewServer()
	if err != nil {
		log.Fatal(err)
	}
	log.Fatal(server.Start())
}
