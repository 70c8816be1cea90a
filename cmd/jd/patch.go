package main

import (
	"fmt"

	jdom "github.com/jdom-format/go-jdom"
	"github.com/jdom-format/go-jdom/encode"
	"github.com/jdom-format/go-jdom/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires two arguments", cli.ErrUsage)
	}
	doc, err := parseArg(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	p, err := parseArg(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	var res *ir.Node
	if cfg.Ops {
		res, err = jdom.PatchOps(doc, p)
	} else {
		res, err = jdom.Patch(doc, p)
	}
	if err != nil {
		return err
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	_, err = cc.Out.Write([]byte("\n"))
	return err
}
