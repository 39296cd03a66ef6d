package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"

	"github.com/YPYT1/awesome-react-sub004/elem"
	"github.com/YPYT1/awesome-react-sub004/encode"
	"github.com/YPYT1/awesome-react-sub004/libpatch"
	"github.com/YPYT1/awesome-react-sub004/parse"
	"github.com/YPYT1/awesome-react-sub004/reconcile"
)

func tdMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	switch {
	case sub != nil:
		args = args[1:]
	case len(args) == 2:
		// treediff OLD NEW is shorthand for treediff diff OLD NEW
		sub = cfg.Main.FindSub(cc, "diff")
	default:
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args)
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func readDoc(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(arg)
}

func readElems(arg string) ([]*elem.Elem, error) {
	d, err := readDoc(arg)
	if err != nil {
		return nil, err
	}
	es, err := parse.ParseAll(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", arg, err)
	}
	return es, nil
}

func materialize(tr *reconcile.Tree, es []*elem.Elem) error {
	p, err := tr.Begin(es)
	if err != nil {
		return err
	}
	return p.Commit()
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes an old and a new document", cli.ErrUsage)
	}
	if args[0] == "-" && args[1] == "-" {
		return fmt.Errorf("%w: only one argument may read stdin", cli.ErrUsage)
	}
	oldElems, err := readElems(args[0])
	if err != nil {
		return err
	}
	newElems, err := readElems(args[1])
	if err != nil {
		return err
	}
	tr := reconcile.NewTree()
	if err := materialize(tr, oldElems); err != nil {
		return err
	}
	p, err := tr.Begin(newElems)
	if err != nil {
		return err
	}
	ops := libpatch.FromEffects(p.Effects())
	if cfg.Where != "" {
		ops, err = filterOps(ops, cfg.Where)
		if err != nil {
			return err
		}
	}
	if cfg.JSON {
		patch, err := libpatch.JSONPatch(tr.Root(), ops)
		if err != nil {
			return err
		}
		if err := p.Commit(); err != nil {
			return err
		}
		return writeJSON(cc.Out, patch)
	}
	if cfg.Tree {
		if err := p.Commit(); err != nil {
			return err
		}
		return encode.EncodeNode(tr.Root(), cc.Out, cfg.encOpts(cc.Out)...)
	}
	if err := encode.EncodeOps(ops, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	return p.Commit()
}

// filterOps keeps the operations for which the where expression holds.
// The expression sees op, kind, key, index, from, id, and parent.
func filterOps(ops []libpatch.Op, where string) ([]libpatch.Op, error) {
	prg, err := expr.Compile(where, expr.Env(opExprEnv(libpatch.Op{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: where: %w", cli.ErrUsage, err)
	}
	var res []libpatch.Op
	for _, op := range ops {
		keep, err := expr.Run(prg, opExprEnv(op))
		if err != nil {
			return nil, fmt.Errorf("where: %w", err)
		}
		if keep.(bool) {
			res = append(res, op)
		}
	}
	return res, nil
}

func opExprEnv(op libpatch.Op) map[string]any {
	return map[string]any{
		"op":     op.Type.String(),
		"kind":   op.Kind.String(),
		"key":    op.Key,
		"index":  op.Index,
		"from":   op.From,
		"id":     op.ID,
		"parent": op.Parent,
	}
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := cfg.encOpts(cc.Out)
	n := 0
	for _, arg := range args {
		es, err := readElems(arg)
		if err != nil {
			return err
		}
		for _, e := range es {
			if n > 0 {
				if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
					return err
				}
			}
			n++
			if err := encode.Encode(e, cc.Out, opts...); err != nil {
				return err
			}
		}
	}
	return nil
}

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: apply takes a document and a patch file", cli.ErrUsage)
	}
	es, err := readElems(args[0])
	if err != nil {
		return err
	}
	patchData, err := readDoc(args[1])
	if err != nil {
		return err
	}
	patch, err := jsonpatch.DecodePatch(patchData)
	if err != nil {
		return fmt.Errorf("%s: %w", args[1], err)
	}
	tr := reconcile.NewTree()
	if err := materialize(tr, es); err != nil {
		return err
	}
	doc, err := json.Marshal(libpatch.JSONTree(tr.Root()))
	if err != nil {
		return err
	}
	doc, err = patch.Apply(doc)
	if err != nil {
		return err
	}
	return writeJSON(cc.Out, doc)
}

func writeJSON(w io.Writer, d []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, d, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}
