package logger

import (
	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithRequestID returns a logger tagged with the current request identifier
func WithRequestID(requestID string) *Logger {
	l := New()
	if requestID == "" {
		requestID = "unknown"
	}
	return &Logger{Entry: l.Entry.WithField("request_id", requestID)}
}

// WithUser returns a logger tagged with the acting user's identifier
func WithUser(userID string) *Logger {
	l := New()
	if userID == "" {
		userID = "anonymous"
	}
	return &Logger{Entry: l.Entry.WithField("user", userID)}
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}
