package main

import (
	"log"
	"os"
)

func main() {
	config, err := parseConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("invalid configuration: %+v", err)
	}

	driver, err := initializeGame(config)
	if err != nil {
		log.Fatalf("failed to initialize game: %+v", err)
	}

	displayGameInfo(config, driver)

	frontend, cleanup, err := newFrontend(config)
	if err != nil {
		log.Fatalf("failed to start %s frontend: %+v", config.Frontend, err)
	}

	err = frontend.Run(driver)
	cleanup()
	if err != nil {
		log.Fatalf("game stopped: %+v", err)
	}

	displayFinalStats(driver)
}
