/*
gifx is a command-line harness around the gifx effect pipeline: it reads
a source GIF or PNG, a JSON command list, and writes the transformed,
infinite-loop GIF to a destination file.

Usage of gifx:
  -commands="-": path to a JSON array of {"name","param"} commands, or -
    for stdin
  -dest="output.gif": destination filename for the transformed GIF
  -ext="gif": extension hint for the source, "gif" or "png"
  -src="": path to the source image
  -verbose=false: show in-process messages
*/
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/srinathh/gifx"
	"github.com/srinathh/gifx/commands"
)

func main() {
	src := flag.String("src", "", "path to the source image")
	dest := flag.String("dest", "output.gif", "destination filename for the transformed GIF")
	ext := flag.String("ext", "gif", "extension hint for the source, \"gif\" or \"png\"")
	commandsPath := flag.String("commands", "-", "path to a JSON array of commands, or - for stdin")
	verbose := flag.Bool("verbose", false, "show in-process messages")

	flag.Parse()

	if *src == "" {
		log.Print("-src is required")
		flag.PrintDefaults()
		os.Exit(1)
	}

	data, err := os.ReadFile(*src)
	if err != nil {
		log.Fatalf("Error reading source file %s : %s", *src, err)
	}

	rawJSON, err := readCommandsJSON(*commandsPath)
	if err != nil {
		log.Fatalf("Error reading commands from %s : %s", *commandsPath, err)
	}

	raw, err := commands.DecodeRawCommands(rawJSON)
	if err != nil {
		log.Fatalf("Error parsing commands : %s", err)
	}

	if *verbose {
		log.Printf("Applying %d commands to %s (%s)", len(raw), *src, *ext)
	}

	output, err := gifx.ApplyCommands(data, *ext, raw)
	if err != nil {
		log.Fatalf("Error applying commands : %s", err)
	}

	if err := os.WriteFile(*dest, output, 0o644); err != nil {
		log.Fatalf("Error writing destination file %s : %s", *dest, err)
	}

	if *verbose {
		log.Printf("Wrote %d bytes to %s", len(output), *dest)
	}
}

func readCommandsJSON(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
