package cli

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"sort"

	"github.com/fatih/color"

	"xlookup/internal/domain/entity"
	"xlookup/pkg/lox"
)

type messageKind int

const (
	kindSuccess messageKind = iota
	kindError
	kindWarning
	kindInfo
)

//nolint:gochecknoglobals
var (
	colorSuccess = color.New(color.FgGreen)
	colorError   = color.New(color.FgRed)
	colorWarning = color.New(color.FgYellow)
	colorInfo    = color.New(color.FgBlue)
	colorCyan    = color.New(color.FgCyan)
)

const banner = `
╔══════════════════════════════════════════════╗
║                   XLOOKUP                    ║
║         Caller Identification Lookup         ║
╚══════════════════════════════════════════════╝
`

func (h *Handler) printBanner() {
	fmt.Fprintln(h.out, colorCyan.Sprint(banner))
}

func (h *Handler) printNotice() {
	h.printMessage(kindWarning, "Use responsibly: only look up numbers you are authorized to research.")
}

func (h *Handler) printMenu() {
	fmt.Fprintf(h.out, `
%s
%s Single Number Lookup
%s Bulk Number Lookup
%s View Saved Results
%s Country Codes
%s Check API Status
%s Clear Screen
%s Exit

`,
		colorCyan.Sprint("=== XLOOKUP ==="),
		colorSuccess.Sprint("1."),
		colorSuccess.Sprint("2."),
		colorSuccess.Sprint("3."),
		colorSuccess.Sprint("4."),
		colorSuccess.Sprint("5."),
		colorSuccess.Sprint("6."),
		colorSuccess.Sprint("7."),
	)
}

func (h *Handler) printMessage(kind messageKind, message string) {
	var line string

	switch kind {
	case kindSuccess:
		line = colorSuccess.Sprintf("[✓] %s", message)
	case kindError:
		line = colorError.Sprintf("[✗] %s", message)
	case kindWarning:
		line = colorWarning.Sprintf("[!] %s", message)
	case kindInfo:
		line = colorInfo.Sprintf("[i] %s", message)
	}

	fmt.Fprintln(h.out, line)
}

func (h *Handler) displayResult(result *entity.LookupResult) {
	fmt.Fprintln(h.out, colorSuccess.Sprint("\n=== LOOKUP RESULT ==="))
	fmt.Fprintf(h.out, "%s%s\n", colorInfo.Sprint("Phone: "), result.SearchedNumber)

	h.printField("Name", result.Name)
	h.printField("Carrier", result.Carrier)
	h.printField("Type", result.NumberType)
	h.printField("Location", result.City)
	h.printField("Country", result.CountryCode)
	h.printField("Address", result.Address)
	h.printField("Email", result.Email)

	fmt.Fprintf(h.out, "%s%s\n",
		colorInfo.Sprint("Spam Score: "),
		spamColor(result.SpamScore).Sprintf("%d - %s", result.SpamScore, spamLabel(result.SpamScore)),
	)
	fmt.Fprintf(h.out, "%s%s\n",
		colorInfo.Sprint("Confidence Score: "),
		confidenceColor(result.ConfidenceScore).Sprintf("%d", result.ConfidenceScore),
	)

	h.printField("Spam Type", result.SpamType)
	h.printField("Source", result.Source)

	fmt.Fprintln(h.out, colorSuccess.Sprint("========================================"))
}

func (h *Handler) printField(label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(h.out, "%s%s\n", colorInfo.Sprintf("%s: ", label), value)
}

func (h *Handler) displayBatchSummary(batch *entity.BatchResult) {
	fmt.Fprintln(h.out, colorSuccess.Sprint("\n=== BULK SEARCH SUMMARY ==="))
	fmt.Fprintln(h.out, colorSuccess.Sprintf("Successful: %d", batch.Successful))
	fmt.Fprintln(h.out, colorError.Sprintf("Failed: %d", batch.Failed))
	fmt.Fprintln(h.out, colorInfo.Sprintf("Total: %d", batch.Total()))
}

func (h *Handler) displayCountries(countries map[string]string) {
	fmt.Fprintln(h.out, colorWarning.Sprint("\n=== SUPPORTED COUNTRY CODES ==="))

	codes := lox.ReverseMap(countries, func(code, _ string) string { return code })
	sort.Strings(codes)

	for _, code := range codes {
		fmt.Fprintf(h.out, "%s %s\n", colorSuccess.Sprintf("%s:", code), countries[code])
	}
}

func (h *Handler) clearScreen() {
	name := "clear"
	if runtime.GOOS == "windows" {
		name = "cls"
	}

	cmd := exec.Command(name)
	cmd.Stdout = h.out
	if err := cmd.Run(); err != nil && h.out == os.Stdout {
		// ANSI fallback when the clear binary is unavailable.
		fmt.Fprint(h.out, "\033[2J\033[H")
	}
}

func spamLabel(score int) string {
	switch entity.SpamBandFor(score) {
	case entity.BandHigh:
		return "HIGH SPAM"
	case entity.BandMedium:
		return "MEDIUM SPAM"
	default:
		return "CLEAN"
	}
}

func spamColor(score int) *color.Color {
	switch entity.SpamBandFor(score) {
	case entity.BandHigh:
		return colorError
	case entity.BandMedium:
		return colorWarning
	default:
		return colorSuccess
	}
}

func confidenceColor(score int) *color.Color {
	switch entity.ConfidenceBandFor(score) {
	case entity.BandHigh:
		return colorSuccess
	case entity.BandMedium:
		return colorWarning
	default:
		return colorError
	}
}
