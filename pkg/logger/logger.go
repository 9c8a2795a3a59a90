package logger

// Logger is satisfied by *zap.SugaredLogger. The launcher wires a nop
// implementation since it must stay silent on its own behalf; the
// doctor swaps in a real one under --debug.
type Logger interface {
	Debugf(template string, args ...interface{})
	Debugw(msg string, keysAndValues ...interface{})
	Warnf(template string, args ...interface{})
}
