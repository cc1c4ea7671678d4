package ebds

import "fmt"

// InfoLogFunc and DebugLogFunc hook the poller's logging. Both are nil by
// default; set them to log.Printf or similar to see traffic.
var (
	InfoLogFunc  func(format string, v ...any)
	DebugLogFunc func(format string, v ...any)
)

func log(format string, v ...any) {
	if InfoLogFunc != nil {
		InfoLogFunc(format, v...)
	}
}

func debugLog(format string, v ...any) {
	if DebugLogFunc != nil {
		DebugLogFunc(format, v...)
	}
}

// Log captures both log streams, prefixed I: and D:. For tests.
type Log struct {
	Msgs []string
}

func NewLog() *Log {
	l := new(Log)
	InfoLogFunc = func(format string, v ...any) {
		l.Msgs = append(l.Msgs, "I:"+fmt.Sprintf(format, v...))
	}
	DebugLogFunc = func(format string, v ...any) {
		l.Msgs = append(l.Msgs, "D:"+fmt.Sprintf(format, v...))
	}
	return l
}
