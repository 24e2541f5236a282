package core

// Logger is the app's logging interface.
// args may contain errors, maps of extras and a user.User (the person logs are attributed to).
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
