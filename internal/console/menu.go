package console

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"hanoi-search/internal/hanoi"
)

// Choice is a validated menu entry.
type Choice int

const (
	ChoiceUninformed Choice = iota + 1
	ChoiceInformed
	ChoiceExit
)

const (
	menuPrompt   = "Please enter 1, 2, or 3: "
	invalidInput = "Invalid input, please enter 1, 2, or 3"
)

var menuLines = []string{
	"Which algorithm would you like to use to solve the Tower of Hanoi?",
	"1. Breadth-First Search (uninformed)",
	"2. A* Search (informed)",
	"3. Exit",
}

// Strategy maps the choice to a search strategy; ok is false for exit.
func (c Choice) Strategy() (hanoi.Strategy, bool) {
	switch c {
	case ChoiceUninformed:
		return hanoi.BreadthFirst, true
	case ChoiceInformed:
		return hanoi.BestFirst, true
	default:
		return 0, false
	}
}

// ReadChoice shows the menu and reads lines until one is exactly "1", "2" or
// "3". End of input counts as exit.
func ReadChoice(in *bufio.Reader, r *Renderer) (Choice, error) {
	for {
		for _, line := range menuLines {
			r.Line("%s", line)
		}
		if _, err := io.WriteString(r.w, menuPrompt); err != nil {
			return 0, err
		}

		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
		input := strings.TrimRight(line, "\r\n")
		switch input {
		case "1":
			return ChoiceUninformed, nil
		case "2":
			return ChoiceInformed, nil
		case "3":
			return ChoiceExit, nil
		}
		if errors.Is(err, io.EOF) {
			r.Line("")
			return ChoiceExit, nil
		}
		r.Warn(invalidInput)
	}
}
