package main

import (
	"io"
	"os"

	"github.com/jdom-format/go-jdom/encode"
	"github.com/jdom-format/go-jdom/format"
	"github.com/jdom-format/go-jdom/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Pretty bool `cli:"name=p aliases=pretty desc='pretty output'"`
	Indent int  `cli:"name=indent desc='spaces per indent level (pretty output)'"`

	Strict   bool `cli:"name=strict desc='reject duplicate object keys'"`
	MaxDepth int  `cli:"name=depth desc='max nesting depth'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{}
	if cfg.Strict {
		res = append(res, parse.RejectDuplicateKeys())
	}
	if cfg.MaxDepth > 0 {
		res = append(res, parse.MaxDepth(cfg.MaxDepth))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Pretty {
		res = append(res, encode.Pretty())
	}
	if cfg.OutFormat != nil {
		res = append(res, encode.EncodeFormat(*cfg.OutFormat))
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) && encode.FormatFromOpts(res...).IsPretty() {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type MinConfig struct {
	*MainConfig

	Min *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Text    bool `cli:"name=text desc='line-oriented text diff instead of a merge patch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Ops bool `cli:"name=ops desc='patch arg is an operation list, not a merge patch'"`

	Patch *cli.Command
}

type YAMLConfig struct {
	*MainConfig
	To bool `cli:"name=to desc='convert json to yaml instead'"`

	YAML *cli.Command
}
