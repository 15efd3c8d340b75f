package main

import "go.uber.org/zap"

var decoderLog = zap.NewNop()
var gestureMapLog = zap.NewNop()

func enableDebugLogging(l *zap.Logger) {
	decoderLog = l
	gestureMapLog = l
}
