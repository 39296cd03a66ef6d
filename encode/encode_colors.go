package encode

import (
	"github.com/fatih/color"

	"github.com/YPYT1/awesome-react-sub004/elem"
	"github.com/YPYT1/awesome-react-sub004/libpatch"
)

type Colorable struct {
	Kind elem.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	KindColor ColorAttr = iota
	KeyColor
	FieldColor
	ValueColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
	Ops     map[libpatch.OpType]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
		Ops:     map[libpatch.OpType]func(string, ...any) string{},
	}
	for _, k := range elem.Kinds() {
		able := Colorable{Kind: k, Attr: KindColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		able.Attr = KeyColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = ValueColor
		colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	}
	colors.Map[Colorable{Kind: elem.TextKind, Attr: ValueColor}] = color.RGB(198, 198, 46).SprintfFunc()

	colors.Ops[libpatch.OpInsert] = color.GreenString
	colors.Ops[libpatch.OpDelete] = color.RedString
	colors.Ops[libpatch.OpMove] = color.CyanString
	colors.Ops[libpatch.OpUpdate] = color.YellowString
	return colors
}

func colorDefault(s string, args ...any) string {
	if len(args) == 0 {
		return s
	}
	return color.WhiteString(s, args...)
}

func (c *Colors) Color(k elem.Kind, attr ColorAttr, s string) string {
	f, ok := c.Map[Colorable{Kind: k, Attr: attr}]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}

func (c *Colors) OpColor(t libpatch.OpType, s string) string {
	f, ok := c.Ops[t]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}
