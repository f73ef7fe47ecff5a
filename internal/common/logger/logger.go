package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// LogEntry is the JSON shape of every log line.
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Service   string `json:"service"`
	Action    string `json:"action"`
	Message   string `json:"message"`
	Hostname  string `json:"hostname"`
	Network   string `json:"network,omitempty"`
	Entity    string `json:"entity,omitempty"`
	Error     *struct {
		Msg string `json:"msg"`
	} `json:"error,omitempty"`
}

var hostname, _ = os.Hostname()

var serviceName = "unknown-service"

var out io.Writer = os.Stdout

// SetServiceName sets the service field of every subsequent entry.
func SetServiceName(name string) {
	serviceName = name
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	out = w
}

func entry(level, action, message, network, entity string) LogEntry {
	return LogEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     level,
		Service:   serviceName,
		Action:    action,
		Message:   message,
		Hostname:  hostname,
		Network:   network,
		Entity:    entity,
	}
}

func Info(action, message, network, entity string) {
	output(entry("INFO", action, message, network, entity))
}

func Warn(action, message, network, entity string) {
	output(entry("WARN", action, message, network, entity))
}

func Error(action, message, network, entity, errMsg string) {
	e := entry("ERROR", action, message, network, entity)
	e.Error = &struct {
		Msg string `json:"msg"`
	}{Msg: errMsg}
	output(e)
}

func output(e LogEntry) {
	data, err := json.Marshal(e)
	if err != nil {
		fmt.Fprintf(out, `{"level":"ERROR","message":"failed to marshal log entry: %v"}`+"\n", err)
		return
	}
	fmt.Fprintln(out, string(data))
}
