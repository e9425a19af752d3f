// scripts/healthcheck/main.go
//
// Container health probe. Exits 0 when GET <base>/health answers 200.
//
// Usage:
//   go run scripts/healthcheck/main.go [base-url]
//
// The base URL defaults to $HEALTHCHECK_URL, then http://localhost:8080.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultBaseURL = "http://localhost:8080"

func main() {
	base := defaultBaseURL
	if v := os.Getenv("HEALTHCHECK_URL"); v != "" {
		base = v
	}
	if len(os.Args) > 1 {
		base = os.Args[1]
	}

	if err := check(strings.TrimRight(base, "/") + "/health"); err != nil {
		fmt.Fprintln(os.Stderr, "unhealthy:", err)
		os.Exit(1)
	}
	fmt.Println("ok")
}

func check(url string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}
