package handlers

import (
	"errors"
	"strconv"
	"strings"

	"minesweep/internal/game"
	"minesweep/internal/mines"
)

// Maps known commands to number of arguments.
var commandNargs = map[string]int{
	"r": 2, // reveal row col
	"c": 2, // chord row col
	"m": 2, // mark row col
	"p": 2, // preview chord row col
	"n": 1, // new game at difficulty
}

func parseRowCol(two []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(two[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if col, err = strconv.Atoi(two[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

// executeCommand applies one text command to a game session. Preview
// commands mutate nothing and return the would-be reveal set instead.
func executeCommand(ctrl *game.Controller, c string) (preview []mines.Point, err error) {
	parts := strings.Split(strings.TrimSpace(c), " ")
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return nil, errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return nil, errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "r":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return nil, err
		}
		ctrl.Reveal(row, col)
	case "c":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return nil, err
		}
		ctrl.Chord(row, col)
	case "m":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return nil, err
		}
		ctrl.Mark(row, col)
	case "p":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return nil, err
		}
		preview = ctrl.PreviewChord(row, col)
		if preview == nil {
			preview = []mines.Point{}
		}
	case "n":
		difficulty, err := mines.ParseDifficulty(parts[1])
		if err != nil {
			return nil, err
		}
		ctrl.Start(difficulty)
	}
	return preview, nil
}
