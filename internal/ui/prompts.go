package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// PromptYesNo asks a yes/no question on the terminal and returns the
// answer. Empty or unrecognized input, a read error, and non-interactive
// runs all yield defaultYes.
func PromptYesNo(question string, defaultYes bool) bool {
	prompt := fmt.Sprintf("%s [y/N] ", question)
	if defaultYes {
		prompt = fmt.Sprintf("%s [Y/n] ", question)
	}

	if !IsTerminal() {
		fmt.Printf("%s (non-interactive, defaulting to %t)\n", prompt, defaultYes)
		return defaultYes
	}

	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		fmt.Printf("(error reading input, defaulting to %t)\n", defaultYes)
		return defaultYes
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	}
	return defaultYes
}
