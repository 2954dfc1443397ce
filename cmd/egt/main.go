package main

import (
	"context"

	"github.com/nchiapol/egt/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}

