package script

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"ropesim/internal/geom"
)

// Command is a single "<D> <N>" line, e.g. "L 7".
type Command struct {
	Dir  string `parser:"@Word"`
	Dist string `parser:"@Word"`
}

var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Word", Pattern: `[^\s]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[Command](
	participle.Lexer(commandLexer),
	participle.Elide("Whitespace"),
)

// Move converts the command into a displacement.
func (c *Command) Move() (geom.Move, error) {
	d, err := geom.ParseDirection(c.Dir)
	if err != nil {
		return geom.Move{}, err
	}
	n, err := geom.ParseDistance(c.Dist)
	if err != nil {
		return geom.Move{}, err
	}
	return geom.MoveFrom(d, n), nil
}

// ParseMove parses one command line.
func ParseMove(line string) (geom.Move, error) {
	cmd, err := parser.ParseString("", line)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return geom.Move{}, &geom.ParseError{Token: line, Reason: "malformed move: " + perr.Message()}
		}
		return geom.Move{}, &geom.ParseError{Token: line, Reason: "malformed move"}
	}
	return cmd.Move()
}

// ParseLines parses one command per line. Blank lines are skipped.
func ParseLines(lines []string) ([]geom.Move, error) {
	moves := make([]geom.Move, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m, err := ParseMove(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Parse splits text into lines and parses each of them.
func Parse(text string) ([]geom.Move, error) {
	var lines []string
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return ParseLines(lines)
}
