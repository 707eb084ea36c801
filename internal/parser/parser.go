// Package parser turns a command line into a validated command.
package parser

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/nikbrunner/bizbook/internal/command"
	"github.com/nikbrunner/bizbook/internal/errors"
)

type parseFunc func(args string) (command.Command, error)

var parsers = map[string]parseFunc{
	command.WordAdd:    parseAdd,
	command.WordEdit:   parseEdit,
	command.WordDelete: parseDelete,
	command.WordList:   parseList,
	command.WordFind:   parseFind,
	command.WordBiz:    parseBiz,
	command.WordUnbiz:  parseUnbiz,
	command.WordMan:    parseMan,
	command.WordClear:  noArgs(func() command.Command { return command.NewClear() }),
	command.WordStats:  noArgs(func() command.Command { return command.NewStats() }),
	command.WordUndo:   noArgs(func() command.Command { return command.NewUndo() }),
	command.WordRedo:   noArgs(func() command.Command { return command.NewRedo() }),
	command.WordHelp:   noArgs(func() command.Command { return command.NewHelp() }),
	command.WordExit:   noArgs(func() command.Command { return command.NewExit() }),
}

// Parse parses one line of user input into a command.
func Parse(line string) (command.Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, errors.NewInvalidFormat(command.HelpUsage)
	}

	word, args := splitCommandWord(line)
	parse, ok := parsers[word]
	if !ok {
		return nil, errors.NewUnknownCommand(word)
	}
	return parse(args)
}

// CommandWord returns the first word of line.
func CommandWord(line string) string {
	word, _ := splitCommandWord(strings.TrimSpace(line))
	return word
}

func splitCommandWord(line string) (string, string) {
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], line[i:]
}

// noArgs wraps commands that take no arguments. Trailing text is ignored.
func noArgs(build func() command.Command) parseFunc {
	return func(string) (command.Command, error) {
		return build(), nil
	}
}

// ParseIndex parses a 1-based index. Only plain positive decimal integers
// are accepted.
func ParseIndex(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, errors.NewInvalidFormatMsg("Index is not a non-zero unsigned integer.", "")
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, errors.NewInvalidFormatMsg("Index is not a non-zero unsigned integer.", "")
	}
	return n, nil
}
