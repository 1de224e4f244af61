// Package goroutine launches background work that must never take the process down.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

// SafeGo runs fn on its own goroutine, logging any panic with its stack.
func SafeGo(log logger.Interface, name string, fn func()) {
	go Run(log, name, fn)
}

// Run is the synchronous form of SafeGo.
func Run(log logger.Interface, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("background task panicked",
				"task", name,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
		}
	}()
	fn()
}
