package main

import (
	"github.com/axellelanca/fileprocessor/cmd"
	_ "github.com/axellelanca/fileprocessor/cmd/cli"
	_ "github.com/axellelanca/fileprocessor/cmd/server"
)

func main() {
	cmd.Execute()
}
