// Command countcli is a terminal frontend for the calculator.
//
// Keys are given as arguments, or read from standard input one line at a
// time:
//
//	$ countcli 4 / 2 x 3 - 2 + 2 =
//	4 ÷ 2 x 3 - 2 + 2 = 6
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cmd := newCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
