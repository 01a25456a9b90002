package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/BobRollenhagen/reqif"
	reqiferrors "github.com/BobRollenhagen/reqif/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("reqiflint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	debug := fs.Bool("debug", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] <document.reqif>\n\n", os.Args[0])
		fmt.Fprintln(stderr, "Checks the structure of a ReqIF document and prints a content summary.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	remaining := fs.Args()
	if len(remaining) != 1 {
		fmt.Fprintln(stderr, "error: exactly one ReqIF file argument is required")
		fs.Usage()
		return 2
	}
	path := remaining[0]

	log := zap.NewNop()
	if *debug {
		devLog, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(stderr, "error creating logger: %v\n", err)
			return 1
		}
		defer func() {
			_ = devLog.Sync()
		}()
		log = devLog
	}

	bundle, err := reqif.ParseFile(path, reqif.WithLogger(log))
	if err != nil {
		if violations, ok := reqiferrors.AsFormats(err); ok {
			for _, v := range violations {
				fmt.Fprintln(stderr, v.Error())
			}
			fmt.Fprintf(stderr, "%s fails to parse\n", path)
			return 1
		}
		fmt.Fprintf(stderr, "error parsing: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "%s parses\n", path)
	fmt.Fprintf(stdout, "  data types:        %d\n", len(bundle.DataTypes))
	fmt.Fprintf(stdout, "  spec object types: %d\n", len(bundle.SpecObjectTypes))
	fmt.Fprintf(stdout, "  spec objects:      %d\n", len(bundle.SpecObjects))
	fmt.Fprintf(stdout, "  spec relations:    %d\n", len(bundle.SpecRelations))
	fmt.Fprintf(stdout, "  specifications:    %d\n", len(bundle.Specifications))
	return 0
}
