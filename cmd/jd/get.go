package main

import (
	"fmt"

	"github.com/jdom-format/go-jdom/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a document path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	for _, arg := range inputArgs(args[1:]) {
		target, err := parseArg(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		res, err := target.GetPath(path)
		if err != nil {
			return fmt.Errorf("error executing get on %s: %w", arg, err)
		}
		if res == nil {
			// absent is not an error, and encodes nothing
			continue
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		if _, err := cc.Out.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}
