package utils

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type Console struct {
	IsTTY  bool
	stdin  *bufio.Scanner
	logger io.Writer
}

func NewConsole() Console {
	return Console{
		IsTTY:  term.IsTerminal(int(os.Stdin.Fd())),
		stdin:  bufio.NewScanner(os.Stdin),
		logger: GetDebugLogger(),
	}
}

// PromptYesNo asks yes/no questions using the label.
func (c Console) PromptYesNo(ctx context.Context, label string, def bool) (bool, error) {
	choices := "Y/n"
	if !def {
		choices = "y/N"
	}
	labelWithChoice := fmt.Sprintf("%s [%s] ", label, choices)
	// Any scan error will be handled as default value
	input, err := c.PromptText(ctx, labelWithChoice)
	if err != nil {
		return def, err
	}
	if answer := parseYesNo(input); answer != nil {
		return *answer, nil
	}
	return def, nil
}

func parseYesNo(s string) *bool {
	s = strings.ToLower(s)
	if s == "y" || s == "yes" {
		return Ptr(true)
	}
	if s == "n" || s == "no" {
		return Ptr(false)
	}
	return nil
}

// PromptText asks for input using the label.
func (c Console) PromptText(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(os.Stderr, label)
	token := make(chan string, 1)
	go func() {
		// Scan a single line from input or file
		if !c.stdin.Scan() {
			fmt.Fprintln(c.logger, io.EOF)
		}
		if err := c.stdin.Err(); err != nil {
			fmt.Fprintln(c.logger, err)
		}
		token <- strings.TrimSpace(c.stdin.Text())
	}()
	select {
	case input := <-token:
		// Echo input to stderr for non-interactive terminals
		if !c.IsTTY {
			fmt.Fprintln(os.Stderr, input)
		}
		return input, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
