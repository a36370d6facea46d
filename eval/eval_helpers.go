/*
File    : gomonkey/eval/eval_helpers.go
Package : eval
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/gomonkey/objects"
)

func newError(format string, a ...interface{}) *objects.Error {
	return &objects.Error{Message: fmt.Sprintf(format, a...)}
}
