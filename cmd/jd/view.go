package main

import (
	"github.com/jdom-format/go-jdom/encode"
	"github.com/jdom-format/go-jdom/format"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return render(cfg.MainConfig, cc, args, format.Pretty)
}

func minimize(cfg *MinConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Min.Parse(cc, args)
	if err != nil {
		cfg.Min.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return render(cfg.MainConfig, cc, args, format.Minimized)
}

func render(cfg *MainConfig, cc *cli.Context, args []string, fmat format.Format) error {
	if cfg.OutFormat == nil {
		cfg.OutFormat = &fmat
	}
	for _, arg := range inputArgs(args) {
		node, err := parseArg(cfg, cc, arg)
		if err != nil {
			return err
		}
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		if _, err := cc.Out.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}
