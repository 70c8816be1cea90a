package main

import (
	"github.com/jdom-format/go-jdom/encode"
	"github.com/jdom-format/go-jdom/yamlconv"

	"github.com/scott-cotton/cli"
)

func yamlConv(cfg *YAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.YAML.Parse(cc, args)
	if err != nil {
		cfg.YAML.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range inputArgs(args) {
		if cfg.To {
			node, err := parseArg(cfg.MainConfig, cc, arg)
			if err != nil {
				return err
			}
			d, err := yamlconv.ToYAML(node)
			if err != nil {
				return err
			}
			if _, err := cc.Out.Write(d); err != nil {
				return err
			}
			continue
		}
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		node, err := yamlconv.FromYAML(d)
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
