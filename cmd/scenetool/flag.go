package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"
)

// levelValue is a flag.Value accepting slog level names.
type levelValue struct {
	level slog.Level
}

func (v *levelValue) String() string {
	return v.level.String()
}

func (v *levelValue) Set(s string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return fmt.Errorf("unknown log level %q", s)
	}
	v.level = l
	return nil
}

var (
	logLevel    = levelValue{level: slog.LevelWarn}
	logFileFlag = flag.Bool("logfile", false, "Write logs to a rotating file in the user log directory")
)

func init() {
	flag.Var(&logLevel, "loglevel", "log level: DEBUG, INFO, WARN or ERROR")
}
