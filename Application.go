package main

import (
	"flag"
	"fmt"
	"os"

	"PongGL/core"
	"PongGL/logger"

	"github.com/google/uuid"
)

func main() {
	dir := flag.String("config", "./", "directory holding logger.properties and properties/")
	env := flag.String("env", "local", "properties/<env>.properties to load")
	flag.Parse()

	if err := logger.Log.Init(*dir); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer logger.Log.Close()

	session := uuid.NewString()
	logger.Log.WithSession(session)
	logger.Log.Info(fmt.Sprintf(logger.WelcomeMsg, session))

	settings, err := core.ReadProperties(*dir, *env)
	if err != nil {
		logger.Log.Fatal(err.Error())
	}

	if err := startLocal(settings); err != nil {
		logger.Log.Fatal(err.Error())
	}
}
