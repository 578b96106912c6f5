package deprecate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func oldSum(a, b int) int { return a + b }

func oldJoin(sep string, parts ...string) (string, error) {
	if len(parts) == 0 {
		return "", errors.New("nothing to join")
	}
	return strings.Join(parts, sep), nil
}

type handler func(string) string

func newObserved() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.WarnLevel)
	return zap.New(core), logs
}

func TestWrap_ForwardsAndWarns(t *testing.T) {
	log, logs := newObserved()

	sum := Wrap(log, oldSum)
	assert.Equal(t, 5, sum(2, 3))
	assert.Equal(t, 0, sum(0, 0))

	entries := logs.All()
	require.Len(t, entries, 2)

	e := entries[0]
	assert.Equal(t, zapcore.WarnLevel, e.Level)
	assert.Equal(t, "Call to deprecated function deprecate.oldSum.", e.Message)

	fields := e.ContextMap()
	assert.Equal(t, "deprecate.oldSum", fields["function"])
	assert.Equal(t, Category, fields["category"])
	assert.True(t, strings.HasSuffix(fields["file"].(string), "deprecate_test.go"))
	assert.Positive(t, fields["line"])
}

func TestWrap_Variadic(t *testing.T) {
	log, logs := newObserved()

	join := Wrap(log, oldJoin)

	got, err := join("-", "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, "a-b-c", got)

	_, err = join(",")
	assert.EqualError(t, err, "nothing to join")

	assert.Equal(t, 2, logs.Len())
}

func TestWrap_NamedFuncType(t *testing.T) {
	log, logs := newObserved()

	var h handler = strings.ToUpper
	wrapped := Wrap(log, h)

	assert.Equal(t, "HI", wrapped("hi"))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "strings.ToUpper", logs.All()[0].ContextMap()["function"])
}

func TestFunc_UsesGlobalLogger(t *testing.T) {
	log, logs := newObserved()
	restore := zap.ReplaceGlobals(log)
	defer restore()

	sum := Func(oldSum)
	assert.Equal(t, 3, sum(1, 2))
	assert.Equal(t, 1, logs.Len())
}

func TestNamed_ReportsGivenName(t *testing.T) {
	log, logs := newObserved()
	restore := zap.ReplaceGlobals(log)
	defer restore()

	sum := Named("deprecate.(*Calc).Sum", oldSum)
	assert.Equal(t, 7, sum(3, 4))

	require.Equal(t, 1, logs.Len())
	e := logs.All()[0]
	assert.Equal(t, "Call to deprecated function deprecate.(*Calc).Sum.", e.Message)
	assert.Equal(t, "deprecate.(*Calc).Sum", e.ContextMap()["function"])
	assert.True(t, strings.HasSuffix(e.ContextMap()["file"].(string), "deprecate_test.go"))
}

func TestWrap_PanicsOnNonFunc(t *testing.T) {
	log, _ := newObserved()

	assert.Panics(t, func() { Wrap(log, 42) })
	assert.Panics(t, func() { Wrap[func()](log, nil) })
}
