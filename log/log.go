package log

import (
	"io/ioutil"
	"log"
	"os"
)

const (
	traceEnvVar = "RMEXPORT_TRACE"
)

var (
	// Trace is silent unless RMEXPORT_TRACE is set.
	Trace *log.Logger
	Info  *log.Logger
	Error *log.Logger
)

func init() {
	InitLog()
}

// InitLog (re)initializes the package loggers from the environment.
func InitLog() {
	traceOut := ioutil.Discard
	if os.Getenv(traceEnvVar) != "" {
		traceOut = os.Stderr
	}

	Trace = log.New(traceOut, "[trace] ", log.Lshortfile)
	Info = log.New(os.Stdout, "", 0)
	Error = log.New(os.Stderr, "[error] ", log.Lshortfile)
}
