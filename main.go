package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"github.com/chzyer/readline"
	log "github.com/s00500/env_logger"
	"golang.org/x/term"
)

// echo "sin 90" | go run .
var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var configFile = flag.String("config", "", "config file (default ~/.config/degtrig/config.toml)")
var single = flag.Bool("f32", false, "evaluate in single precision")

// lineReader is satisfied by *readline.Instance.
type lineReader interface {
	Readline() (string, error)
}

type scanReader struct{ s *bufio.Scanner }

func (r scanReader) Readline() (string, error) {
	if r.s.Scan() {
		return r.s.Text(), nil
	}
	if err := r.s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	// enable line numbers in log
	log.EnableLineNumbers()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	c := calc{single: cfg.Precision == "f32" || *single}

	var in lineReader = scanReader{bufio.NewScanner(os.Stdin)}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:      cfg.Prompt,
			HistoryFile: cfg.History,
		})
		if err != nil {
			log.Fatal(err)
		}
		defer rl.Close()
		in = rl
		log.Infof("degtrig ready, %d bit, type help for commands", c.bits())
	}

	if err := run(in, os.Stdout, c); err != nil {
		log.Error(err)
	}
}

// run evaluates lines from in until EOF or exit. Bad lines are logged and
// skipped.
func run(in lineReader, out io.Writer, c calc) error {
	for {
		line, err := in.Readline()
		if err == readline.ErrInterrupt {
			fmt.Fprintln(out, err)
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		res, err := c.eval(line)
		if errors.Is(err, errExit) {
			return nil
		}
		if err != nil {
			log.Errorf("%v", err)
			continue
		}
		if res != "" {
			fmt.Fprintln(out, res)
		}
	}
}
