package debug

import (
	"os"
	"strconv"
)

type debug struct {
	List    bool
	Single  bool
	Place   bool
	Keys    bool
	Effects bool
}

var d *debug

func init() {
	d = &debug{}
	d.List = boolEnv("TREEDIFF_DEBUG_LIST")
	d.Single = boolEnv("TREEDIFF_DEBUG_SINGLE")
	d.Place = boolEnv("TREEDIFF_DEBUG_PLACE")
	d.Keys = boolEnv("TREEDIFF_DEBUG_KEYS")
	d.Effects = boolEnv("TREEDIFF_DEBUG_EFFECTS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func List() bool {
	return d.List
}
func Single() bool {
	return d.Single
}
func Place() bool {
	return d.Place
}
func Keys() bool {
	return d.Keys
}
func Effects() bool {
	return d.Effects
}
