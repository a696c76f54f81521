package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Poll  bool
	Walk  bool
	Match bool
}

var d *debug

func init() {
	d = &debug{}
	d.Poll = boolEnv("DOMSTREAM_DEBUG_POLL")
	d.Walk = boolEnv("DOMSTREAM_DEBUG_WALK")
	d.Match = boolEnv("DOMSTREAM_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Poll() bool {
	return d.Poll
}
func Walk() bool {
	return d.Walk
}
func Match() bool {
	return d.Match
}
