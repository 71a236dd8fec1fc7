package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/zephyrtronium/lisp"
	// import for side effects
	_ "github.com/zephyrtronium/lisp/coreext"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "YAML configuration file")
	flag.Parse()

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	diag := lisp.LogDiagnostics{Logger: log.New(os.Stderr, "lisp: ", 0)}
	vm := lisp.NewVM(append(cfg.Options(), lisp.WithDiagnostics(diag))...)
	for _, name := range append(cfg.Preload, flag.Args()...) {
		if err := doFile(vm, name); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			os.Exit(1)
		}
	}
	os.Exit(repl(vm, cfg))
}

func loadConfig(path string) (lisp.Config, error) {
	if path == "" {
		return lisp.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return lisp.Config{}, err
	}
	defer f.Close()
	return lisp.LoadConfig(f)
}

func doFile(vm *lisp.VM, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = vm.DoReader(f)
	return err
}

func repl(vm *lisp.VM, cfg lisp.Config) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := expandHome(cfg.History)
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(hist); err == nil {
				ln.WriteHistory(f)
				f.Close()
			}
		}()
	}

	var src strings.Builder
	for {
		p := cfg.Prompt
		if vm.Pending() {
			p = cfg.ContinuePrompt
		}
		line, err := ln.Prompt(p)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Println()
			return 0
		case errors.Is(err, liner.ErrPromptAborted):
			vm.Reset()
			src.Reset()
			continue
		case err != nil:
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		if !vm.Pending() && strings.HasPrefix(strings.TrimSpace(line), ":") {
			switch strings.ToLower(strings.TrimSpace(line)) {
			case ":quit":
				return 0
			case ":reset":
				vm.Reset()
				vm.Env.ResetUser()
				fmt.Println("user bindings cleared")
			default:
				fmt.Println("unknown command. Type :quit to exit or :reset to clear definitions.")
			}
			continue
		}

		complete, err := vm.Append(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			src.Reset()
			continue
		}
		if src.Len() > 0 {
			src.WriteByte(' ')
		}
		src.WriteString(strings.TrimSpace(line))
		if !complete {
			continue
		}
		if src.Len() > 0 {
			ln.AppendHistory(src.String())
		}
		src.Reset()
		r, err := vm.EvalPending()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(lisp.Format(r))
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
