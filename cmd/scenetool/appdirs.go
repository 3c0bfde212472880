package main

import (
	"os"
	"path/filepath"

	xappdirs "github.com/chasinglogic/appdirs"
)

const (
	appName     = "sceneforge"
	logFileName = "scenetool.log"
)

// initLogFile creates the user log directory and returns the log file path.
func initLogFile() (string, error) {
	dir := xappdirs.New(appName).UserLog()
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}
	return filepath.Join(dir, logFileName), nil
}
