package main

import (
	"log"

	"github.com/Tydus/wordleharmony/cmd/wordleharmony/app"
)

func main() {
	err := app.New().Execute()
	if err != nil {
		log.Fatal(err)
	}
}
