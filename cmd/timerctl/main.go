// Command timerctl manages TimerBox timers from a terminal. It reads and
// writes the same storage as the app and can run the tick engine headless.
package main

import (
	"os"

	"github.com/alecthomas/kong"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	cli := CLI{out: os.Stdout}
	ctx := kong.Parse(&cli,
		kong.Name("timerctl"),
		kong.Description("Manage TimerBox countdown timers."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	ctx.FatalIfErrorf(ctx.Run(&cli))
}
