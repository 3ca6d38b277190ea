package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/chardet"
	"github.com/lestrrat-go/chardet/internal/cliutil"
)

type cmdopts struct {
	Decode  bool `long:"decode"`
	Limit   int  `long:"limit"`
	Version bool `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("chardet: using chardet version %s\n", chardet.Version)
}

func showUsage() {
	fmt.Printf(`Usage : chardet [options] files ...
	Detect the text encoding of each file and print it
	--decode  : print the file contents converted to UTF-8 instead
	--limit=N : only examine the first N bytes of each file
	--version : display the version of the chardet library used
`)
}

type input struct {
	name string
	rdr  io.Reader
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	inputCh := make(chan input)
	errCh := make(chan error)
	switch {
	case len(args) > 0: // filename present
		go func() {
			defer close(inputCh)
			for _, f := range args {
				fh, err := os.Open(f)
				if err != nil {
					errCh <- err
					return
				}
				inputCh <- input{name: f, rdr: fh}
			}
		}()
	case !cliutil.IsTty(os.Stdin):
		go func() {
			defer close(inputCh)
			inputCh <- input{name: "(stdin)", rdr: os.Stdin}
		}()
	default:
		showUsage()
		return 1
	}

	ctx := context.Background()
	var options []chardet.DetectOption
	if opts.Limit > 0 {
		options = append(options, chardet.WithScanLimit(opts.Limit))
	}

	for in := range inputCh {
		buf, err := io.ReadAll(in.rdr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}

		if opts.Decode {
			converted, _, err := chardet.Decode(ctx, buf, options...)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s\n", err)
				return 1
			}
			os.Stdout.Write(converted)
			continue
		}

		fmt.Printf("%s: %s\n", in.name, chardet.Detect(ctx, buf, options...))
	}

	select {
	case err := <-errCh:
		fmt.Fprintf(os.Stderr, "%s", err)
		return 1
	default:
	}

	return 0
}
