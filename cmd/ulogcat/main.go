package main

import (
	"github.com/arloliu/ulog/cmd/ulogcat/cmd"
)

func main() {
	cmd.Execute()
}
