package dump

import (
	"strings"

	"github.com/nfrr/confval/go-confval/cv"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind cv.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range cv.Kinds() {
		able := Colorable{
			Kind: k,
			Attr: SepColor,
		}
		colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = cv.IntKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = cv.FloatKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = cv.NullKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = cv.BoolKind
	colors.Map[able] = color.CyanString

	able.Kind = cv.StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = cv.ObjectKind
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k cv.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k cv.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
