package main

import (
	"os"

	"fjacquet/finance-tracker/cmd/commands"
	"fjacquet/finance-tracker/internal/config"
)

func init() {
	// .env must be loaded before viper reads the FINANCE_* variables.
	config.LoadEnv(nil)
	commands.Register()
}

func main() {
	// cobra prints the error itself.
	if err := commands.Register().Execute(); err != nil {
		os.Exit(1)
	}
}
