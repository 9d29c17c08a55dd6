package main

import (
	"log"

	"github.com/zacklin923/osmesa/cmd"
)

func main() {
	err := cmd.Run()
	if err != nil {
		log.Fatal(err.Error())
	}
}
