package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/domstream/go-domstream/outline"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two files", cli.ErrUsage)
	}
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	from, err := parseArg(args[0], fileCfg.ChunkSize)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", args[0], err)
	}
	to, err := parseArg(args[1], fileCfg.ChunkSize)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", args[1], err)
	}
	colors := newColors(cfg.useColor(cc.Out))

	dmp := diffpatch.New()
	fromRunes, toRunes, lines := dmp.DiffLinesToRunes(outline.Text(from), outline.Text(to))
	diffs := dmp.DiffMainRunes(fromRunes, toRunes, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	changed := false
	for i := range diffs {
		d := &diffs[i]
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffpatch.DiffDelete:
				changed = true
				fmt.Fprintln(cc.Out, colors.deleted("- "+line))
			case diffpatch.DiffInsert:
				changed = true
				fmt.Fprintln(cc.Out, colors.inserted("+ "+line))
			case diffpatch.DiffEqual:
				fmt.Fprintln(cc.Out, "  "+line)
			}
		}
	}
	if changed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
