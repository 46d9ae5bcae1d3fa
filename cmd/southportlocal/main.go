// cmd/southportlocal/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dalemusser/waffle/app"

	"github.com/seftonweb/southportlocal/internal/app/bootstrap"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
