package main

import (
	"fmt"
	"os"

	"donation-service/src/pkg/log"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.GetLogger().Error("main", fmt.Sprintf("command failed: %v", err), "main", "")
		os.Exit(1)
	}
}
