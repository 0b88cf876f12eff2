// Package parse reads valve scans in the puzzle-input form
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
//
// and builds a valve.Network from them.
package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/pressure/valve"
)

// ErrMalformedLine is returned for a line that does not match the scan format.
var ErrMalformedLine = errors.New("parse: malformed valve line")

var lineRE = regexp.MustCompile(`^Valve (\w+) has flow rate=(\d+); tunnels? leads? to valves? (.*)$`)

// Line decodes a single scan line.
func Line(s string) (valve.Valve, error) {
	m := lineRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return valve.Valve{}, fmt.Errorf("%w: %q", ErrMalformedLine, s)
	}
	rate, err := strconv.Atoi(m[2])
	if err != nil {
		return valve.Valve{}, fmt.Errorf("%w: flow rate %q: %v", ErrMalformedLine, m[2], err)
	}
	var nbrs []string
	for _, n := range strings.Split(m[3], ",") {
		if n = strings.TrimSpace(n); n != "" {
			nbrs = append(nbrs, n)
		}
	}

	return valve.Valve{ID: m[1], FlowRate: rate, Neighbors: nbrs}, nil
}

// Network decodes one valve per non-blank line of r and validates the
// result with valve.New.
func Network(r io.Reader) (*valve.Network, error) {
	var valves []valve.Valve
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		v, err := Line(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		valves = append(valves, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse: reading input: %w", err)
	}

	return valve.New(valves)
}
