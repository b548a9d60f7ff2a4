// Command crtf decodes Compressed RTF streams (for example PR_RTF_COMPRESSED
// property dumps) to RTF.
//
//	crtf [-strict] [-bound input|declared] [-text] [-o out] file...
//	crtf -dump file...
//
// A file name of "-" reads standard input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/afero"
	"github.com/woozymasta/crtf"
)

// errUsage is returned for bad command lines; flag has already printed why.
var errUsage = errors.New("usage")

type config struct {
	strict bool
	bound  string
	text   bool
	dump   bool
	output string
	inputs []string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("crtf: ")

	if err := run(afero.NewOsFs(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}

	fs := flag.NewFlagSet("crtf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cfg.strict, "strict", false, "treat truncated input and bad references as errors")
	fs.StringVar(&cfg.bound, "bound", crtf.BoundInput.String(), "payload limit: input or declared (COMPSIZE)")
	fs.BoolVar(&cfg.text, "text", false, "require 7-bit ASCII output")
	fs.BoolVar(&cfg.dump, "dump", false, "print header fields instead of the body")
	fs.StringVar(&cfg.output, "o", "", "write output to file instead of stdout")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: crtf [flags] file...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, errUsage
	}

	cfg.inputs = fs.Args()
	if len(cfg.inputs) == 0 {
		fs.Usage()
		return nil, errUsage
	}

	return cfg, nil
}

func (c *config) options() (*crtf.Options, error) {
	opts := crtf.DefaultOptions()
	opts.Strict = c.strict

	switch c.bound {
	case crtf.BoundInput.String():
		opts.Bound = crtf.BoundInput
	case crtf.BoundDeclared.String():
		opts.Bound = crtf.BoundDeclared
	default:
		return nil, fmt.Errorf("unknown bound %q", c.bound)
	}

	return opts, nil
}

func run(fsys afero.Fs, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	opts, err := cfg.options()
	if err != nil {
		return err
	}

	w := stdout
	if cfg.output != "" {
		f, err := fsys.Create(cfg.output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	for _, name := range cfg.inputs {
		src, err := readInput(fsys, name, stdin)
		if err != nil {
			return err
		}

		if cfg.dump {
			if err := dump(w, name, src); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			continue
		}

		out, err := decode(src, opts, cfg.text)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if _, err := w.Write(out); err != nil {
			return err
		}
	}

	return nil
}

func readInput(fsys afero.Fs, name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}

	return afero.ReadFile(fsys, name)
}

func decode(src []byte, opts *crtf.Options, text bool) ([]byte, error) {
	if !text {
		return crtf.Decompress(src, opts)
	}

	s, err := crtf.DecompressString(src, opts)
	if err != nil {
		return nil, err
	}

	return []byte(s), nil
}
