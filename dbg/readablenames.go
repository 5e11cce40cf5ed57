// Package dbg converts arbitrary values into random readable names, and
// colors event-set statuses for terminal output. It flagrantly leaks memory
// but generates the names lazily, so it's not a problem unless you're
// actually using it. This is helpful for turning pointer strings into
// something more easily distinguishable when debugging tree structures.
package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
)

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

// ColorStatus colors a status string for terminal trace dumps: green for
// finalized items, cyan for live ones, red for rejections.
func ColorStatus(status string) string {
	switch status {
	case "completed", "kept", "processed":
		return aurora.Green(status).String()
	case "active", "current", "new":
		return aurora.Cyan(status).String()
	case "rejected":
		return aurora.Red(status).String()
	default:
		return status
	}
}
