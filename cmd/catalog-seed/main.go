package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Apurer/go-gin-orders-api/internal/app/catalogseed"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := catalogseed.NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "catalog-seed:", err)
		os.Exit(1)
	}
}
