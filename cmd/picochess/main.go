// Command picochess is a stdio UCI engine: it reads commands on stdin,
// wires them into the engine package via uci, and writes responses to
// stdout.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/arnisz/picochess-go/cli"
	"github.com/arnisz/picochess-go/engine"
	"github.com/arnisz/picochess-go/uci"
)

// wallClock adapts time.Now to engine.Clock.
type wallClock struct{ start time.Time }

func newWallClock() *wallClock { return &wallClock{start: time.Now()} }

func (c *wallClock) NowMs() uint64 {
	return uint64(time.Since(c.start).Milliseconds())
}

// stdoutSink adapts fmt.Println to uci.Out.
type stdoutSink struct{}

func (stdoutSink) Println(s string) { fmt.Println(s) }

func main() {
	configPath := flag.String("config", "", "optional TOML file overriding engine tunables")
	showBoard := flag.Bool("board", false, "print the board after every input line")
	flag.Parse()

	engine.InitAttackTables()

	e := engine.NewEngine(newWallClock())

	if *configPath != "" {
		cfg, err := engine.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "picochess: %v, using defaults\n", err)
		} else {
			e.SetConfig(cfg)
		}
	}

	h := uci.New(e, stdoutSink{})

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		h.HandleLine(line)
		if *showBoard {
			fmt.Println(cli.FormatBoard(&e.Board))
		}
		if line == "quit" {
			return
		}
	}
}
