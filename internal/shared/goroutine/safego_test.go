package goroutine

import (
	"testing"
	"time"

	"github.com/deskline-inc/deskline/internal/shared/logger"
)

func TestSafeGo(t *testing.T) {
	tests := []struct {
		name string
		fn   func(done chan struct{})
	}{
		{"runs to completion", func(done chan struct{}) { close(done) }},
		{"recovers from panic", func(done chan struct{}) {
			defer close(done)
			panic("boom")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done := make(chan struct{})
			SafeGo(logger.NewNopLogger(), tt.name, func() { tt.fn(done) })

			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("goroutine did not finish")
			}
		})
	}
}
