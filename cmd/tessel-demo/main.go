// Command tessel-demo renders a small interactive tour of the widget set.
//
// Input is line-based, so it runs in a plain cooked-mode terminal:
//
//	tab<Enter>   move focus forward
//	j/k<Enter>   move list selection
//	1/2<Enter>   switch tab
//	go<Enter>    activate the focused button
//	q<Enter>     quit
//
// A custom theme can be supplied with -theme path/to/theme.yaml.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-tessel/tessel/pkg/core"
	"github.com/go-tessel/tessel/pkg/focus"
	"github.com/go-tessel/tessel/pkg/geometry"
	"github.com/go-tessel/tessel/pkg/surface"
	"github.com/go-tessel/tessel/pkg/term"
	"github.com/go-tessel/tessel/pkg/theme"
	"github.com/go-tessel/tessel/pkg/widgets"
)

func main() {
	themePath := flag.String("theme", "", "path to a theme yaml file")
	flag.Parse()

	th, err := loadTheme(*themePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tessel-demo:", err)
		os.Exit(1)
	}

	if err := run(th); err != nil {
		fmt.Fprintln(os.Stderr, "tessel-demo:", err)
		os.Exit(1)
	}
}

func loadTheme(path string) (*theme.Theme, error) {
	if path == "" {
		return theme.Dark(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return theme.Load(f)
}

type app struct {
	session *core.Session
	ring    *focus.Ring
	tab     int
	status  string
}

func (a *app) build() core.Widget {
	fruits := []core.Widget{
		widgets.TextOf("apple"),
		widgets.TextOf("banana"),
		widgets.TextOf("cherry"),
		widgets.TextOf("damson"),
		widgets.TextOf("elderberry"),
	}
	browse := widgets.Column(
		widgets.ListOf(fruits...).WithOnSelect(func(i int) {
			a.status = fmt.Sprintf("selected item %d", i)
		}),
		widgets.SeparatorOf(),
		widgets.ButtonOf("Refresh", func() { a.status = "refreshed" }),
	)
	about := widgets.Column(
		widgets.LazyOf(func(ctx context.Context) (core.Widget, error) {
			select {
			case <-time.After(300 * time.Millisecond):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			return widgets.TextOf("content loaded asynchronously"), nil
		}),
		widgets.ButtonOf("OK", func() { a.status = "ok" }),
	)

	return widgets.BorderOf(widgets.Column(
		widgets.Fixed(1, widgets.TextOf(fmt.Sprintf("tab %d | %s", a.tab+1, a.status))),
		widgets.SeparatorOf(),
		widgets.Flexible(widgets.SwitcherOf(browse, about).WithActive(a.tab)),
	).WithGap(0)).WithTitle("tessel")
}

func run(th *theme.Theme) error {
	size, err := term.WindowSize(os.Stdout)
	if err != nil {
		size = geometry.Size{Width: 80, Height: 24}
	}

	a := &app{session: core.NewSession(th), status: "welcome"}
	a.ring = focus.New(a.session)
	screen := term.NewScreen(os.Stdout)
	if err := screen.EnterAltScreen(); err != nil {
		return err
	}
	defer screen.ExitAltScreen()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	resizes := term.WatchResize(ctx, os.Stdout)

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		surf := surface.New(size.Width, size.Height)
		if err := a.session.Frame(a.build(), surf); err != nil {
			return err
		}
		if err := screen.Flush(surf); err != nil {
			return err
		}

		select {
		case s, ok := <-resizes:
			if ok {
				size = s
				screen.Reset()
			}
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			switch line {
			case "q":
				return nil
			case "tab":
				a.ring.Next()
			case "j", "k":
				if list, okList := a.session.Focused().(*widgets.ListNode); okList {
					if line == "j" {
						list.SelectNext()
					} else {
						list.SelectPrev()
					}
				}
			case "1", "2":
				a.tab = int(line[0] - '1')
			case "go":
				if btn, okBtn := a.session.Focused().(*widgets.ButtonNode); okBtn {
					btn.Activate()
				}
			}
		case <-ticker.C:
			// Re-frame so async loads land promptly.
		}
	}
}
