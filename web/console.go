//go:build js
// +build js

package web

import (
	"fmt"

	"github.com/gopherjs/gopherjs/js"
)

// ConsoleLogger writes engine diagnostics to the browser console.
type ConsoleLogger struct{}

func (ConsoleLogger) Debugf(format string, args ...interface{}) {
	js.Global.Get("console").Call("log", "[DEBUG] "+fmt.Sprintf(format, args...))
}

func (ConsoleLogger) Infof(format string, args ...interface{}) {
	js.Global.Get("console").Call("info", fmt.Sprintf(format, args...))
}

func (ConsoleLogger) Errorf(format string, args ...interface{}) {
	js.Global.Get("console").Call("error", fmt.Sprintf(format, args...))
}
