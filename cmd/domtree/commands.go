package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "domtree").
		WithSynopsis("domtree [opts] command [opts]").
		WithDescription("domtree inspects the node structure of HTML documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return domtreeMain(cfg, cc, args)
		}).
		WithSubs(
			TreeCommand(cfg),
			CountCommand(cfg),
			MatchCommand(cfg),
			DiffCommand(cfg))
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Tree, "tree").
		WithAliases("t").
		WithSynopsis("tree [files]").
		WithDescription("print the node outline of HTML documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return tree(cfg, cc, args)
		})
}

func CountCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CountConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Count, "count").
		WithAliases("c").
		WithSynopsis("count [files]").
		WithDescription("count the nodes of HTML documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return count(cfg, cc, args)
		})
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Match, "match").
		WithAliases("m").
		WithSynopsis("match <expr> [files]").
		WithDescription("print nodes matching a boolean expression").
		WithRun(func(cc *cli.Context, args []string) error {
			return matchNodes(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff <file> <file>").
		WithDescription("diff the node outlines of two HTML documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
