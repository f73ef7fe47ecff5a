package clui

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// TimeLayout is the timestamp format accepted in commands.
const TimeLayout = "2006-01-02 15:04"

var argSplitter = regexp.MustCompile(`>\s*<`)

// ParseCommand extracts the verb of an instruction and checks it
// against the command table.
func ParseCommand(line string) (Command, error) {
	keyword := strings.SplitN(strings.TrimSpace(line), " ", 2)[0]
	cmd, ok := findCommand(keyword)
	if !ok {
		return Command{}, fmt.Errorf("%w: %s", ErrInvalidCommand, keyword)
	}
	return cmd, nil
}

// ParseArgs extracts the angle-bracketed arguments of an instruction:
// everything between the first '<' and the last '>', split on the
// closing-opening bracket pairs.
func ParseArgs(line string) ([]string, error) {
	first := strings.Index(line, "<")
	last := strings.LastIndex(line, ">")
	if first < 0 || last < first {
		return nil, ErrInvalidArguments
	}
	return argSplitter.Split(line[first+1:last], -1), nil
}

// ParseTime parses a command timestamp.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time must be on the format %q", ErrInvalidArguments, TimeLayout)
	}
	return t, nil
}
