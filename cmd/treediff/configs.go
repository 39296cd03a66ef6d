package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/YPYT1/awesome-react-sub004/encode"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force color output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return nil
	}
	f, ok := w.(*os.File)
	if ok && isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type DiffConfig struct {
	*MainConfig

	JSON  bool   `cli:"name=json desc='emit an RFC 6902 patch instead of operation lines'"`
	Tree  bool   `cli:"name=tree desc='print the reconciled tree instead of operations'"`
	Where string `cli:"name=where desc='filter operations, e.g. op == \"move\" && kind == \"item\"'"`

	Diff *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type ApplyConfig struct {
	*MainConfig

	Apply *cli.Command
}
