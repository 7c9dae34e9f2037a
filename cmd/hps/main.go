// Command hps runs HPS scripts and an interactive session.
//
//	hps [-i] [-p preset.yaml] [-s seed] [-q] [script.hps]
//
// With a script argument the file is executed and the process exits (exit
// code 1 when the file cannot be read); -i drops into the prompt afterwards
// with session state retained. Without a script the prompt starts directly.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"github.com/hpslab/hps/internal/gacha"
	"github.com/hpslab/hps/internal/interp"
	"github.com/hpslab/hps/internal/preset"
)

type config struct {
	Seed    uint64 `env:"HPS_SEED"`
	Preset  string `env:"HPS_PRESET"`
	NoColor bool   `env:"HPS_NO_COLOR"`
}

const usage = "usage: hps [-i] [-p preset.yaml] [-s seed] [-q] [script.hps]"

const banner = `HPS — probability made runnable
  /state  show session state      /sim   monte-carlo a target
  /reset  clear everything        /plan  price a draw budget
  /run    run a script file       /load  apply a preset file
  /help   syntax reference        exit   leave
`

const helpText = `HPS syntax:
  pool:       (prob/:$item,$item)#name      (0.6/:$raiden,$ganyu)#UP
  variable:   #name = value                 #budget = ¥64800
                                            #per = 64800 ÷ 160
  draw:       <$target,#pool,*pity>         <$raiden,#UP,*90>
  output:     ¢,text with #refs             ¢,left: {64800 - total_spent}
  record:     #¢{...}±(times)               #¢{coin}±(100)
  comment:    ¢ any text
  commands:   /state /reset /sim /plan /run /load /help exit
`

func main() {
	logger := log.New(os.Stderr)

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal("bad environment", "err", err)
	}

	opts, optind, err := getopt.Getopts(os.Args, "ip:s:q")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	interactive := false
	quiet := false
	for _, opt := range opts {
		switch opt.Option {
		case 'i':
			interactive = true
		case 'p':
			cfg.Preset = opt.Value
		case 's':
			seed, err := strconv.ParseUint(opt.Value, 10, 64)
			if err != nil {
				fmt.Fprintln(os.Stderr, "bad seed:", opt.Value)
				os.Exit(2)
			}
			cfg.Seed = seed
		case 'q':
			quiet = true
		}
	}
	args := os.Args[optind:]

	if cfg.NoColor {
		color.NoColor = true
	}

	var engineOpts []interp.Option
	if cfg.Seed != 0 {
		engineOpts = append(engineOpts, interp.WithRandomSource(gacha.NewSeededRNG(cfg.Seed)))
	}
	engine := interp.New(engineOpts...)

	// The engine wants one exclusive owner; the mutex covers the prompt
	// loop and the preset watcher goroutine.
	var mu sync.Mutex

	if cfg.Preset != "" {
		if err := loadPreset(engine, &mu, cfg.Preset); err != nil {
			logger.Fatal("preset", "path", cfg.Preset, "err", err)
		}
		logger.Info("preset applied", "path", cfg.Preset)
	}

	if len(args) > 0 {
		script := args[0]
		code, err := os.ReadFile(script)
		if err != nil {
			logger.Error("cannot read script", "path", script, "err", err)
			os.Exit(1)
		}
		mu.Lock()
		lines := engine.RunScript(string(code))
		mu.Unlock()
		printLines(lines)
		if !interactive {
			return
		}
	}

	if cfg.Preset != "" {
		w := preset.NewWatcher(cfg.Preset, 2*time.Second, func(path string) {
			if err := loadPreset(engine, &mu, path); err != nil {
				logger.Error("preset reload failed", "path", path, "err", err)
				return
			}
			logger.Info("preset reloaded", "path", path)
		})
		w.Start()
		defer w.Stop()
	}

	repl(engine, &mu, quiet)
}

func loadPreset(engine *interp.Engine, mu *sync.Mutex, path string) error {
	f, err := preset.Load(path)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	return engine.ApplyPreset(f)
}

func repl(engine *interp.Engine, mu *sync.Mutex, quiet bool) {
	if !quiet {
		fmt.Print(banner)
	}
	exitWords := map[string]bool{"exit": true, "quit": true, "退出": true}

	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("hps> ")
		if !sc.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case line == "/help":
			fmt.Print(helpText)
			continue
		case strings.HasPrefix(line, "/run"):
			runScriptFile(engine, mu, strings.TrimSpace(strings.TrimPrefix(line, "/run")))
			continue
		case strings.HasPrefix(line, "/load"):
			path := strings.TrimSpace(strings.TrimPrefix(line, "/load"))
			if path == "" {
				fmt.Println("[!] usage: /load preset.yaml")
				continue
			}
			if err := loadPreset(engine, mu, path); err != nil {
				fmt.Println(colorize("[!] " + err.Error()))
				continue
			}
			fmt.Println(colorize("[ok] preset loaded: " + path))
			continue
		}

		mu.Lock()
		lines := engine.Execute(line)
		mu.Unlock()
		printLines(lines)
		if exitWords[line] {
			return
		}
	}
}

func runScriptFile(engine *interp.Engine, mu *sync.Mutex, path string) {
	if path == "" {
		fmt.Println("[!] usage: /run script.hps")
		return
	}
	code, err := os.ReadFile(path)
	if err != nil {
		fmt.Println(colorize("[!] cannot read script: " + err.Error()))
		return
	}
	mu.Lock()
	lines := engine.RunScript(string(code))
	mu.Unlock()
	printLines(lines)
}

func printLines(lines []string) {
	for _, l := range lines {
		fmt.Println(colorize(l))
	}
}

var tagColors = map[string]*color.Color{
	"[!]":    color.New(color.FgRed),
	"[?]":    color.New(color.FgRed),
	"[ok]":   color.New(color.FgGreen),
	"[pool]": color.New(color.FgCyan),
	"[draw]": color.New(color.FgYellow),
	"[sim]":  color.New(color.FgYellow),
	"[plan]": color.New(color.FgCyan),
	"[var]":  color.New(color.FgMagenta),
	"[out]":  color.New(color.FgHiWhite),
	"[note]": color.New(color.FgHiBlack),
}

// colorize paints the leading bracket tag only; the payload stays as the
// engine produced it.
func colorize(line string) string {
	for tag, c := range tagColors {
		if strings.HasPrefix(line, tag) {
			return c.Sprint(tag) + line[len(tag):]
		}
	}
	return line
}
