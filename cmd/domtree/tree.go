package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/domstream/go-domstream/match"
	"github.com/domstream/go-domstream/outline"
	"github.com/domstream/go-domstream/walk"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		cfg.Tree.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	colors := newColors(cfg.useColor(cc.Out))
	for _, arg := range args {
		doc, err := parseArg(arg, fileCfg.ChunkSize)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		for _, l := range outline.Lines(doc) {
			fmt.Fprintln(cc.Out, colors.line(l))
		}
	}
	return nil
}

func count(cfg *CountConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Count.Parse(cc, args)
	if err != nil {
		cfg.Count.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	for _, arg := range args {
		doc, err := parseArg(arg, fileCfg.ChunkSize)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		n := 0
		for range walk.All(doc) {
			n++
		}
		fmt.Fprintf(cc.Out, "%s: %d\n", arg, n)
	}
	return nil
}

func matchNodes(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		cfg.Match.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires an expression argument", cli.ErrUsage)
	}
	m, err := match.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	colors := newColors(cfg.useColor(cc.Out))
	for _, arg := range args {
		doc, err := parseArg(arg, fileCfg.ChunkSize)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		nodes, err := m.Select(doc)
		if err != nil {
			return fmt.Errorf("error matching %s: %w", arg, err)
		}
		for _, n := range nodes {
			fmt.Fprintln(cc.Out, colors.label(n))
		}
	}
	return nil
}
