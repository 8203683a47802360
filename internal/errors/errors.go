package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/hrportal/internal/logger"
)

// UserFacing is implemented by errors that carry a message meant for the
// person at the terminal rather than for the log.
type UserFacing interface {
	UserMessage() string
}

// Message returns the text to show a user for err. Errors implementing
// UserFacing anywhere in the chain win over the wrapped error string.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var uf UserFacing
	if stderrors.As(err, &uf) {
		return uf.UserMessage()
	}
	return err.Error()
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s", Message(err))
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
