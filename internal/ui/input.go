package ui

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/Amr-9/SeedHunter/pkg/generator"
	"github.com/Amr-9/SeedHunter/pkg/generator/ethereum"
	"github.com/Amr-9/SeedHunter/pkg/generator/solana"
	"github.com/Amr-9/SeedHunter/pkg/generator/tron"
)

// Command is an interactive keyboard command.
type Command int

const (
	// CommandTogglePause pauses a running search or resumes a paused one.
	CommandTogglePause Command = iota
	// CommandQuit stops the search.
	CommandQuit
)

// ReadCommands reads line-oriented commands from r until ctx is done or r
// is exhausted. "p" toggles pause; "q", "quit" and "exit" stop. Unknown
// lines are ignored. The returned channel is closed when reading ends.
func ReadCommands(ctx context.Context, r io.Reader) <-chan Command {
	out := make(chan Command)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			cmd, ok := parseCommand(scanner.Text())
			if !ok {
				continue
			}
			select {
			case out <- cmd:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func parseCommand(line string) (Command, bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "p", "pause", "r", "resume":
		return CommandTogglePause, true
	case "q", "quit", "exit":
		return CommandQuit, true
	default:
		return 0, false
	}
}

// UnmatchablePatterns returns, per chain, the patterns that can never
// match an address of that chain's alphabet.
func UnmatchablePatterns(chains []generator.Chain, patterns []string) map[generator.Chain][]string {
	out := make(map[generator.Chain][]string)
	for _, p := range generator.NewMatchPolicy(patterns).Patterns() {
		for _, chain := range chains {
			if !canMatch(chain, p) {
				out[chain] = append(out[chain], p)
			}
		}
	}
	return out
}

func canMatch(chain generator.Chain, pattern string) bool {
	switch chain {
	case generator.Tron:
		return tron.CanMatch(pattern)
	case generator.Ethereum:
		return ethereum.CanMatch(pattern)
	case generator.Solana:
		return solana.CanMatch(pattern)
	default:
		return false
	}
}
