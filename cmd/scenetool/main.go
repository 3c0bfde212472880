// Scenetool inspects and converts scene files and manages editor projects.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

const usage = `Usage: scenetool [flags] <command> [args]

Commands:
  info <file>               show a summary of a scene file
  find <file> <query>       list objects of a scene file by name or tag
  convert <in> <out>        convert a scene file to the format of <out>
  init <dir> <name>         create a new project
  add <dir> <scene-file>    add a scene file to a project
  list <dir>                list the scenes of a project
  asset <dir> <kind> <id> <path>
                            register a model, terrain or skybox asset
  skybox <dir> <scene-id> <skybox-id>
                            set the skybox of a scene, 0 removes it
  check <dir>               load every scene of a project and check its assets

Flags:
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	slog.SetLogLoggerLevel(logLevel.level)
	if *logFileFlag {
		fn, err := initLogFile()
		if err != nil {
			log.Fatal(err)
		}
		log.SetOutput(&lumberjack.Logger{
			Filename:   fn,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		})
	}
	if err := run(os.Stdout, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "scenetool: %s\n", err)
		if errors.Is(err, errUsage) {
			flag.Usage()
			os.Exit(2)
		}
		os.Exit(1)
	}
}
