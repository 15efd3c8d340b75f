package main

import "go.uber.org/zap"

var importLog = zap.NewNop()

func enableDebugLogging(l *zap.Logger) {
	importLog = l
}
