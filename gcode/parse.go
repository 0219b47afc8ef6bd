package gcode

import (
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Programs with at least this many lines are parsed in parallel chunks.
var parallelThreshold = 8192

func parseLine(s string, n int) (Line, *ScanError) {
	sc, err := scanLine(s, n)
	if err != nil {
		return Line{}, err
	}
	return assemble(sc, classify(sc)), nil
}

// splitLines splits on "\n", dropping one "\r" before each newline. A
// trailing newline does not start another line.
func splitLines(data string) []string {
	if data == "" {
		return nil
	}
	src := strings.Split(data, "\n")
	if src[len(src)-1] == "" {
		src = src[:len(src)-1]
	}
	for i, s := range src {
		src[i] = strings.TrimSuffix(s, "\r")
	}
	return src
}

// Parse parses a whole program. On failure the returned error is a
// *ParseError for the first bad line and no Program is returned.
func Parse(data string) (*Program, error) {
	src := splitLines(data)
	lines := make([]Line, len(src))

	var err *ScanError
	if len(src) >= parallelThreshold {
		err = parseChunks(src, lines, runtime.GOMAXPROCS(0))
	} else {
		err = parseRange(src, lines, 0)
	}
	if err != nil {
		return nil, wrapScanError(err)
	}

	return &Program{lines: lines}, nil
}

func MustParse(data string) *Program {
	p, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return p
}

func parseRange(src []string, dst []Line, offset int) *ScanError {
	for i, s := range src {
		l, err := parseLine(s, offset+i+1)
		if err != nil {
			return err
		}
		dst[i] = l
	}
	return nil
}

// parseChunks splits src into contiguous chunks, one per worker. Each
// chunk records its own first error so the lowest failing line is
// reported no matter which chunk finishes first.
func parseChunks(src []string, dst []Line, workers int) *ScanError {
	if workers < 1 {
		workers = 1
	}
	size := (len(src) + workers - 1) / workers
	errs := make([]*ScanError, (len(src)+size-1)/size)

	var g errgroup.Group
	g.SetLimit(workers)
	for c := range errs {
		lo := c * size
		hi := min(lo+size, len(src))
		g.Go(func() error {
			errs[c] = parseRange(src[lo:hi], dst[lo:hi], lo)
			return nil
		})
	}
	g.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
