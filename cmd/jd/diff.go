package main

import (
	"fmt"

	jdom "github.com/jdom-format/go-jdom"
	"github.com/jdom-format/go-jdom/encode"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	a, err := parseArg(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := parseArg(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	if cfg.Text {
		txt, err := jdom.TextDiff(a, b)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write([]byte(txt))
		return err
	}
	patch, err := jdom.Diff(a, b)
	if err != nil {
		return err
	}
	if err := encode.Encode(patch, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	_, err = cc.Out.Write([]byte("\n"))
	return err
}
