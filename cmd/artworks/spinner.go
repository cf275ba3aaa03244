package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mmcdole/artworks/internal/tui/styles"
	"golang.org/x/term"
)

const spinnerInterval = 80 * time.Millisecond

// runWithSpinner runs fn in the background and animates a spinner on w until it returns.
// Without a terminal on w it just runs fn.
func runWithSpinner[T any](ctx context.Context, w *os.File, label string, fn func(context.Context) (T, error)) (T, error) {
	if !term.IsTerminal(int(w.Fd())) {
		return fn(ctx)
	}

	// Channel to receive result
	type result struct {
		value T
		err   error
	}
	resultCh := make(chan result, 1)

	go func() {
		v, err := fn(ctx)
		resultCh <- result{v, err}
	}()

	blank := "\r" + strings.Repeat(" ", len([]rune(label))+2) + "\r"
	frame := 0
	fmt.Fprintf(w, "\r%s %s", styles.SpinnerFrames[frame], label)

	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for {
		select {
		case res := <-resultCh:
			fmt.Fprint(w, blank)
			return res.value, res.err

		case <-ticker.C:
			frame++
			fmt.Fprintf(w, "\r%s %s", styles.SpinnerFrames[frame%len(styles.SpinnerFrames)], label)
		}
	}
}
