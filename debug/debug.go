package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Split   bool
	Combine bool
	OCStyle bool
	Order   bool
	Refs    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Split = boolEnv("YS_DEBUG_SPLIT")
	d.Combine = boolEnv("YS_DEBUG_COMBINE")
	d.OCStyle = boolEnv("YS_DEBUG_OCSTYLE")
	d.Order = boolEnv("YS_DEBUG_ORDER")
	d.Refs = boolEnv("YS_DEBUG_REFS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Split() bool {
	return d.Split
}
func Combine() bool {
	return d.Combine
}
func OCStyle() bool {
	return d.OCStyle
}
func Order() bool {
	return d.Order
}
func Refs() bool {
	return d.Refs
}
