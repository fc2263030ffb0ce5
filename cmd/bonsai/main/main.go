package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/arthur-debert/bonsai/cmd/bonsai"
	"github.com/arthur-debert/bonsai/pkg/errors"
	"github.com/arthur-debert/bonsai/pkg/style"
)

func main() {
	errorStyle := style.NewPalette(os.Stderr, style.ColorEnabled(os.Stderr, true)).Error

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The tree walk does not poll the context, so an interrupt exits directly
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)
	go func() {
		<-signals
		cancel()
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+bonsai.MsgInterrupted))
		os.Exit(1)
	}()

	rootCmd := bonsai.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Print the error in red
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %s", errors.UserMessage(err))))
		os.Exit(1)
	}
}
