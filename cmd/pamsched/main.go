package main

import (
	"fmt"
	"os"

	"github.com/0kam/pamsched/cmd/pamsched/root"
	"github.com/0kam/pamsched/cmd/pamsched/schema"
	"github.com/0kam/pamsched/cmd/pamsched/show"
	"github.com/0kam/pamsched/cmd/pamsched/validate"
)

func main() {
	rootCmd := root.GetRoot()

	validate.InitValidate(rootCmd)
	show.InitShow(rootCmd)
	schema.InitSchema(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
