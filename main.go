// Command gosnake plays a multiplayer snake game in the terminal against a
// remote game server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gosnake/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "gosnake: %v\n", err)
		os.Exit(1)
	}
}
