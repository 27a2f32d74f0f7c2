// Command lexgen reads a token battery file (see package langdef) and
// writes one generated DFA (the token automaton, or the whitespace
// automaton with -whitespace) as Graphviz DOT, optionally rendered to a
// PNG via the local `dot` binary.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"

	"lexgen"
	"lexgen/langdef"
)

func main() {
	inFile := flag.String("in", "", "token battery file (required)")
	outFile := flag.String("o", "graph.dot", "output file, or - for stdout")
	whitespaceFlag := flag.Bool("whitespace", false, "export the whitespace automaton instead of the token automaton")
	pngFlag := flag.Bool("png", false, "render PNG via `dot -Tpng` instead of writing DOT")
	flag.Parse()

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "usage: lexgen -in <battery> [-whitespace] [-o file] [-png]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	source, err := os.ReadFile(*inFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", *inFile, err)
		os.Exit(1)
	}

	battery, err := langdef.Parse(string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		os.Exit(1)
	}
	tokens, whitespace := battery.Tokens()

	sink := &lexgen.SliceSink{}
	generator := lexgen.NewGenerator(sink, nil)
	result := generator.Generate(tokens, whitespace)
	for _, msg := range sink.Messages {
		fmt.Fprintln(os.Stderr, msg)
	}
	for _, e := range sink.Errors {
		fmt.Fprintln(os.Stderr, e)
	}

	automaton := result.Tokens
	name := "tokens"
	if *whitespaceFlag {
		automaton = result.Whitespace
		name = "whitespace"
	}

	var buf bytes.Buffer
	if err := lexgen.WriteDOT(&buf, automaton, name); err != nil {
		fmt.Fprintf(os.Stderr, "dot export failed: %v\n", err)
		os.Exit(1)
	}

	if *pngFlag {
		cmd := exec.Command("dot", "-Tpng", "-o", *outFile)
		cmd.Stdin = bytes.NewReader(buf.Bytes())
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "dot failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("PNG written to %s\n", *outFile)
		return
	}

	var w io.Writer
	if *outFile == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(*outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot create %s: %v\n", *outFile, err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	_, _ = io.Copy(w, &buf)
	if *outFile != "-" {
		fmt.Printf("DOT written to %s\n", *outFile)
	}
}
