package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/wang-sy/PublishYourGame/cmd"

	DEATH "github.com/vrecan/death/v3"
)

func main() {
	go func() {
		death := DEATH.NewDeath(syscall.SIGINT, syscall.SIGTERM)

		_ = death.WaitForDeath()

		fmt.Fprintln(os.Stderr, "interrupted")
		os.Exit(130)
	}()

	cmd.Execute()
}
