// Package deprecate marks functions as deprecated: every call through the
// wrapper logs a warning naming the function, then runs it unchanged.
package deprecate

import (
	"fmt"
	"path"
	"reflect"
	"runtime"

	"go.uber.org/zap"
)

// Category is attached to every warning so log pipelines can filter them.
const Category = "DeprecationWarning"

// Func wraps fn so each call warns through the global zap logger. The
// global logger discards everything until zap.ReplaceGlobals is called,
// so warnings stay hidden unless the application opts in.
//
// Func panics if fn is not a non-nil function.
func Func[F any](fn F) F {
	return wrap(zap.L, "", fn)
}

// Named is Func reporting name instead of the wrapped function's own name.
// It suits methods kept as thin shims over an unexported implementation.
func Named[F any](name string, fn F) F {
	return wrap(zap.L, name, fn)
}

// Wrap is Func with an explicit logger.
func Wrap[F any](log *zap.Logger, fn F) F {
	return wrap(func() *zap.Logger { return log }, "", fn)
}

func wrap[F any](logger func() *zap.Logger, alias string, fn F) F {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		panic(fmt.Sprintf("deprecate: %T is not a function", fn))
	}

	name, file, line := describe(v)
	if alias != "" {
		name = alias
	}
	msg := fmt.Sprintf("Call to deprecated function %s.", name)
	variadic := v.Type().IsVariadic()

	wrapped := reflect.MakeFunc(v.Type(), func(args []reflect.Value) []reflect.Value {
		logger().Warn(msg,
			zap.String("function", name),
			zap.String("file", file),
			zap.Int("line", line),
			zap.String("category", Category),
		)
		if variadic {
			return v.CallSlice(args)
		}
		return v.Call(args)
	})

	return wrapped.Interface().(F)
}

// describe returns pkg.Func and the declaration site of fn.
func describe(v reflect.Value) (name, file string, line int) {
	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return v.Type().String(), "", 0
	}
	file, line = rf.FileLine(rf.Entry())
	return path.Base(rf.Name()), file, line
}
