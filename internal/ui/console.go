package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Amr-9/SeedHunter/pkg/generator"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorPurple = "\033[35m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
)

// Console writes the interactive search display.
type Console struct {
	w io.Writer
}

// NewConsole creates a console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// PrintWelcomeBanner shows the welcome screen
func (c *Console) PrintWelcomeBanner(version string) {
	fmt.Fprintln(c.w)
	fmt.Fprintf(c.w, "%s%s", ColorCyan, ColorBold)
	fmt.Fprintln(c.w, "  ╔══════════════════════════════════════════════════════════╗")
	fmt.Fprintf(c.w, "  ║  SeedHunter %s• mnemonic vanity search • v%-13s%s%s ║\n", ColorDim, version, ColorReset, ColorCyan+ColorBold)
	fmt.Fprintln(c.w, "  ╚══════════════════════════════════════════════════════════╝")
	fmt.Fprint(c.w, ColorReset)
	fmt.Fprintln(c.w)
}

// PrintSearchInfo displays search configuration
func (c *Console) PrintSearchInfo(config *generator.Config, output string) {
	chains := make([]string, len(config.Chains))
	for i, chain := range config.Chains {
		chains[i] = chain.String()
	}

	fmt.Fprintf(c.w, "\n    %s🚀 SEARCHING%s %s%s%s", ColorGreen+ColorBold, ColorReset, ColorBold+ColorCyan, strings.Join(chains, " + "), ColorReset)

	policy := generator.NewMatchPolicy(config.Patterns)
	if patterns := policy.Patterns(); len(patterns) > 0 {
		fmt.Fprintf(c.w, " %s...%s%s%s\n", ColorDim, ColorCyan+ColorBold, strings.Join(patterns, " | "), ColorReset)
	} else {
		fmt.Fprintf(c.w, " %s(trailing run of %d+ identical characters)%s\n", ColorDim, generator.MinRunLength, ColorReset)
	}

	fmt.Fprintf(c.w, "    %s%d threads │ batch %d │ saving to %s%s\n", ColorDim, config.Threads, config.BatchSize, output, ColorReset)
	fmt.Fprintf(c.w, "    %s[p] pause/resume  [q] stop%s\n\n", ColorDim, ColorReset)
}

// PrintProgress shows the live status line
func (c *Console) PrintProgress(stats generator.Stats, state generator.State, frame int) {
	spinners := []string{"◐", "◓", "◑", "◒"}
	spinner := spinners[frame%len(spinners)]
	if state == generator.StatePaused {
		spinner = "⏸"
	}

	fmt.Fprintf(c.w, "\r    %s%s%s %s%s%s │ %s%s generated%s │ %s%s found%s │ %s",
		ColorCyan, spinner, ColorReset,
		ColorGreen+ColorBold, FormatHashRate(stats.HashRate), ColorReset,
		ColorYellow, FormatNumber(stats.Generated), ColorReset,
		ColorPurple, FormatNumber(stats.Found), ColorReset,
		FormatDuration(time.Duration(stats.ElapsedSecs*float64(time.Second))))
}

// PrintHit shows a found address
func (c *Console) PrintHit(hit generator.Hit) {
	rec := hit.Record()

	c.ClearLine()
	fmt.Fprintf(c.w, "\n    %s✨ %s VANITY%s %s(...%s)%s\n", ColorGreen+ColorBold, hit.Chain, ColorReset, ColorDim, hit.Pattern, ColorReset)
	fmt.Fprintf(c.w, "       %s%s%s\n", ColorGreen+ColorBold, rec.Address, ColorReset)
	fmt.Fprintf(c.w, "    %s🔑 %s%s%s\n", ColorPurple+ColorBold, ColorYellow, rec.PrivateKeyString(), ColorReset)
	fmt.Fprintf(c.w, "    %s📝 %s%s\n\n", ColorDim, hit.Wallet.Mnemonic, ColorReset)
}

// PrintSummary shows the final statistics
func (c *Console) PrintSummary(stats generator.Stats, output string) {
	c.ClearLine()
	fmt.Fprintf(c.w, "\n    %s⏹ Stopped%s │ %s generated │ %s found │ %s │ %s\n",
		ColorYellow+ColorBold, ColorReset,
		FormatNumber(stats.Generated),
		FormatNumber(stats.Found),
		FormatHashRate(stats.HashRate),
		FormatDuration(time.Duration(stats.ElapsedSecs*float64(time.Second))))
	if stats.Found > 0 {
		fmt.Fprintf(c.w, "    %s💾 %s%s\n", ColorDim, output, ColorReset)
		fmt.Fprintf(c.w, "    %s%s⚠  KEEP YOUR MNEMONICS AND PRIVATE KEYS SECRET!%s\n", ColorRed, ColorBold, ColorReset)
	}
}

// PrintWarning prints a highlighted warning line
func (c *Console) PrintWarning(format string, args ...any) {
	fmt.Fprintf(c.w, "    %s⚠ %s%s\n", ColorYellow, fmt.Sprintf(format, args...), ColorReset)
}

// PrintRecord prints every chain of a wallet
func (c *Console) PrintRecord(w generator.Wallet) {
	fmt.Fprintf(c.w, "\n    %sMnemonic%s  %s\n", ColorPurple+ColorBold, ColorReset, w.Mnemonic)
	for _, rec := range w.Records() {
		fmt.Fprintf(c.w, "\n    %s%s%s\n", ColorCyan+ColorBold, rec.Chain, ColorReset)
		fmt.Fprintf(c.w, "       Address      %s%s%s\n", ColorGreen, rec.Address, ColorReset)
		fmt.Fprintf(c.w, "       Private Key  %s%s%s\n", ColorYellow, rec.PrivateKeyString(), ColorReset)
		fmt.Fprintf(c.w, "       Public Key   %s%s%s\n", ColorDim, rec.PublicKeyHex(), ColorReset)
	}
	fmt.Fprintln(c.w)
}

// ClearLine clears the current line
func (c *Console) ClearLine() {
	fmt.Fprint(c.w, "\r"+strings.Repeat(" ", 94)+"\r")
}

// FormatHashRate formats hash rate nicely
func FormatHashRate(rate float64) string {
	if rate >= 1000000 {
		return fmt.Sprintf("%.1fM/s", rate/1000000)
	}
	if rate >= 1000 {
		return fmt.Sprintf("%.1fK/s", rate/1000)
	}
	return fmt.Sprintf("%.0f/s", rate)
}

// FormatNumber adds commas to large numbers
func FormatNumber(n uint64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	s := fmt.Sprintf("%d", n)
	result := make([]byte, 0, len(s)+(len(s)-1)/3)
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}

// FormatDuration formats duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}
