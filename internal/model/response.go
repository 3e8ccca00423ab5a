package model

import "time"

// TimestampLayout matches JavaScript's Date.prototype.toISOString.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp formats t in UTC using TimestampLayout.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Response is the envelope every resource route and error is wrapped in.
// A successful response carries Data; a failed one carries Error and Message.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK wraps data in a successful envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Fail builds an error envelope. An empty message falls back to err so a
// failure always carries both fields.
func Fail(err, message string) Response {
	if message == "" {
		message = err
	}
	return Response{Success: false, Error: err, Message: message}
}
