package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"sieve/internal/common"
)

const maxHistorySize = 1000

// History is the persisted list of shell commands, oldest first.
type History struct {
	commands []string
	file     string
}

func newHistory() (*History, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return openHistory(filepath.Join(home, ".sieve_history"))
}

func openHistory(file string) (*History, error) {
	h := &History{
		commands: make([]string, 0, maxHistorySize),
		file:     file,
	}

	// Load existing history
	if err := h.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return h, nil
}

func (h *History) load() error {
	f, err := os.Open(h.file)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		h.add(scanner.Text())
	}

	return scanner.Err()
}

func (h *History) add(cmd string) {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return
	}

	// Don't add duplicates of the last command
	if len(h.commands) > 0 && h.commands[len(h.commands)-1] == cmd {
		return
	}

	h.commands = append(h.commands, cmd)

	if len(h.commands) > maxHistorySize {
		h.commands = h.commands[len(h.commands)-maxHistorySize:]
	}
}

func (h *History) save() error {
	f, err := os.Create(h.file)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, cmd := range h.commands {
		if _, err := fmt.Fprintln(w, cmd); err != nil {
			return err
		}
	}

	return w.Flush()
}

// list returns the last n commands, or all of them when n is out of range.
func (h *History) list(n int) []string {
	if n <= 0 || n > len(h.commands) {
		n = len(h.commands)
	}

	start := len(h.commands) - n
	return h.commands[start:]
}

// printHistory handles "history [n]".
func printHistory(h *History, input string) {
	if h == nil {
		common.Logf("history unavailable\n")
		return
	}

	parts := strings.Fields(input)
	n := 0
	if len(parts) == 2 {
		v, err := strconv.Atoi(parts[1])
		if err != nil || v < 1 {
			common.Logf("usage: history [n]\n")
			return
		}
		n = v
	}

	cmds := h.list(n)
	offset := len(h.commands) - len(cmds)
	for i, cmd := range cmds {
		common.Logf("%5d  %s\n", offset+i+1, cmd)
	}
}
