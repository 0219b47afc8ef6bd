package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/mastercactapus/gparse/gcode"
)

func parseFile(name string) (*gcode.Program, error) {
	data, err := ioutil.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return gcode.Parse(string(data))
}

// checkFiles reports on each file and returns the exit status.
func checkFiles(w io.Writer, names []string) int {
	status := 0
	for _, name := range names {
		p, err := parseFile(name)
		if err != nil {
			fmt.Fprintf(w, "%s: %v\n", name, err)
			status = 1
			continue
		}
		s := summarize(p)
		fmt.Fprintf(w, "%s: %d lines, %d commands, %d raw\n", name, s.Lines, s.Commands, s.Raw)
	}
	return status
}

// formatFiles streams each file through the parser, so large files are
// never held in memory.
func formatFiles(w io.Writer, names []string) error {
	for _, name := range names {
		err := formatFile(w, name)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func formatFile(w io.Writer, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, gcode.NewBuffer(gcode.NewParser(f)))
	return err
}
