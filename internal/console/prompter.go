// Package console is the interactive menu front end of the ledger.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Back is returned by Menu when the user picks the return option or the
// input ends.
const Back = 0

const invalidChoice = "Invalid choice. Please try again."

// Prompter reads answers line by line and writes prompts to out.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

// Ask prints prompt and returns the trimmed answer. ok is false once the
// input is exhausted.
func (p *Prompter) Ask(prompt string) (string, bool) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		fmt.Fprintln(p.out)
		return "", false
	}
	return strings.TrimSpace(p.scanner.Text()), true
}

func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Prompter) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// Menu shows options numbered from 1 followed by the back option and keeps
// asking until it gets a valid choice. It returns the 1-based option or Back.
func (p *Prompter) Menu(title string, options []string, back string) int {
	for {
		p.Printf("\n%s:\n", title)
		for i, o := range options {
			p.Printf("%d. %s\n", i+1, o)
		}
		p.Printf("%d. %s\n", len(options)+1, back)

		answer, ok := p.Ask("Enter your choice: ")
		if !ok {
			return Back
		}
		n, err := strconv.Atoi(answer)
		switch {
		case err != nil || n < 1 || n > len(options)+1:
			p.Println(invalidChoice)
		case n == len(options)+1:
			return Back
		default:
			return n
		}
	}
}

// Pick lets the user choose one of items. ok is false when they go back.
func (p *Prompter) Pick(title string, items []string) (string, bool) {
	n := p.Menu(title, items, "Cancel")
	if n == Back {
		return "", false
	}
	return items[n-1], true
}
