/*
File    : lumen/eval/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/lumen/object"
)

// builtins is the fixed table of native functions visible to every
// program, looked up only after an identifier fails to resolve in the
// environment chain; user code can shadow a builtin with a `let` of
// the same name.
var builtins = map[string]*object.Builtin{
	"len": {
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 1 {
				return newError("wrong number of arguments. got=%d, want=1", len(args))
			}

			switch arg := args[0].(type) {
			case *object.String:
				return &object.Integer{Value: int64(len(arg.Value))}
			default:
				return newError("argument to 'len' not supported, got %s", args[0].Type())
			}
		},
	},
	"puts": {
		Fn: func(args ...object.Object) object.Object {
			for _, arg := range args {
				fmt.Fprintln(writer, arg.Inspect())
			}
			return object.NULL
		},
	},
}
