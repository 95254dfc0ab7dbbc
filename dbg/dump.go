package dbg

import "github.com/kr/pretty"

// Multi-line dump of any value, with field names, for error messages and
// debugging sessions.
func Dump(v interface{}) string {
	return pretty.Sprint(v)
}
