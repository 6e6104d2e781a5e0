package main

import (
	"log"

	"github.com/gatherhub/gatherhub/internal/app/bootstrap"
)

func main() {
	if err := bootstrap.Run(); err != nil {
		log.Fatal(err)
	}
}
