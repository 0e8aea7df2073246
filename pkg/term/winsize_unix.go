//go:build unix

package term

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"

	"github.com/go-tessel/tessel/pkg/geometry"
)

// WindowSize reports the terminal size of f. Zero dimensions, as reported
// by some serial consoles, fall back to 80x24.
func WindowSize(f *os.File) (geometry.Size, error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return geometry.Size{}, err
	}
	if ws.Col == 0 {
		ws.Col = 80
	}
	if ws.Row == 0 {
		ws.Row = 24
	}
	return geometry.Size{Width: int(ws.Col), Height: int(ws.Row)}, nil
}

// WatchResize delivers the new terminal size whenever the process receives
// SIGWINCH, until ctx is done. The channel is closed on exit.
func WatchResize(ctx context.Context, f *os.File) <-chan geometry.Size {
	out := make(chan geometry.Size, 1)
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, unix.SIGWINCH)
	go func() {
		defer close(out)
		defer signal.Stop(sigs)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sigs:
				size, err := WindowSize(f)
				if err != nil {
					continue
				}
				select {
				case out <- size:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
