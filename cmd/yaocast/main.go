package main

import (
	"github.com/mingshu-dev/yaocast/internal/cli"
)

func main() {
	cli.Execute()
}
