package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/creasty/defaults"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"

	"github.com/domstream/go-domstream/dom"
	"github.com/domstream/go-domstream/parse"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	Main *cli.Command
}

type TreeConfig struct {
	*MainConfig

	Tree *cli.Command
}

type CountConfig struct {
	*MainConfig

	Count *cli.Command
}

type MatchConfig struct {
	*MainConfig

	Match *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		color.NoColor = false
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// FileConfig is read from ~/.config/domtree/config.yaml.
type FileConfig struct {
	ChunkSize int `yaml:"chunk_size" default:"4096"`
}

func loadFileConfig() (*FileConfig, error) {
	cfg := &FileConfig{}
	if err := defaults.Set(cfg); err != nil {
		return nil, err
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		data, err := os.ReadFile(filepath.Join(home, ".config", "domtree", name))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error reading config %s: %w", name, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config %s: %w", name, err)
		}
		break
	}
	return cfg, nil
}

// parseArg parses "-" (stdin) or a file path into a document.
func parseArg(arg string, chunkSize int) (*html.Node, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	eng := parse.NewEngine(
		parse.NewReaderSource(r, parse.ChunkSize(chunkSize)),
		dom.NewTreeBuilder())
	return eng.Run()
}
