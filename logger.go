package main

import (
	"log"
	"os"
)

var (
	errorLogger *log.Logger
	debugLogger *log.Logger
)

func setupLogging(debug bool) {
	errorLogger = log.New(os.Stderr, "shadey: ", 0)
	if debug {
		debugLogger = log.New(os.Stderr, "shadey: ", log.Ltime|log.Lmicroseconds)
	}
}

func logError(format string, v ...interface{}) {
	if errorLogger == nil {
		errorLogger = log.New(os.Stderr, "shadey: ", 0)
	}
	errorLogger.Printf(format, v...)
}

func logDebug(format string, v ...interface{}) {
	if debugLogger != nil {
		debugLogger.Printf(format, v...)
	}
}
