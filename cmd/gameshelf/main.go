package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Name of the current application. Used to load the configuration.
const APPLICATION_NAME = "gameshelf"

func main() {
	if err := execute(os.Args[1:], os.Stdout); err != nil {
		logrus.Errorf("%+v", err)
		os.Exit(1)
	}
}
