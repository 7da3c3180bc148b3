package main

import (
	"context"

	"github.com/keyasu/juejin-auto/cmd/juejin-auto/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
