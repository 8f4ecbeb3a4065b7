package main

import (
	"flag"
	"fmt"
	"os"

	"user-service/app"
	"user-service/config"

	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

func main() {
	commandFlag := flag.String("command", "create-user", "Command to run modules")
	nameFlag := flag.String("name", "", "User name")
	emailFlag := flag.String("email", "", "User email")
	passwordFlag := flag.String("password", "", "User password (hashed before storing)")
	flag.Parse()

	if *commandFlag == "" {
		fmt.Println("Usage: go run main.go --command <command-name> [... other options]")
		os.Exit(1)
	}

	app.InitLogger()
	a := app.New(config.Load())

	switch *commandFlag {
	case "create-user":
		resp := a.UserController.Store(map[string]string{
			"name":     *nameFlag,
			"email":    *emailFlag,
			"password": *passwordFlag,
		})
		if !resp.OK {
			logger.Error("Failed to create user", zap.Error(resp.Err), zap.Any("response", resp.Body))
			os.Exit(1)
		}
		fmt.Println(resp.Body)
		a.LogUsers()
	case "list":
		a.LogUsers()
	default:
		fmt.Println("Unknown command:", *commandFlag)
		os.Exit(1)
	}
}
