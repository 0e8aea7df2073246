//go:build !unix

package term

import (
	"context"
	"errors"
	"os"

	"github.com/go-tessel/tessel/pkg/geometry"
)

// WindowSize is not supported on this platform; callers get the
// conventional 80x24 and can rely on host-driven resize notifications
// instead.
func WindowSize(f *os.File) (geometry.Size, error) {
	return geometry.Size{Width: 80, Height: 24}, errors.New("term: window size not supported on this platform")
}

// WatchResize returns a channel that closes when ctx is done; no resize
// signal exists on this platform.
func WatchResize(ctx context.Context, f *os.File) <-chan geometry.Size {
	out := make(chan geometry.Size)
	go func() {
		<-ctx.Done()
		close(out)
	}()
	return out
}
