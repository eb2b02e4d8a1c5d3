package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(newApp()).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "formextras:", err)
		os.Exit(1)
	}
}
