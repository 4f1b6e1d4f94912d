// Package cli is the interactive terminal front end: a menu loop over the
// lookup service, the bulk runner and the result store.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/xid"

	"xlookup/internal/domain/entity"
	"xlookup/pkg/contextx"
)

type LookupService interface {
	Lookup(ctx context.Context, raw, countryHint string) (*entity.LookupResult, error)
	CheckReachability(ctx context.Context) error
	DefaultCountry() string
}

type BulkRunner interface {
	Run(ctx context.Context, numbers []string, countryHint string) *entity.BatchResult
}

type ResultStore interface {
	SaveResult(result *entity.LookupResult) (string, error)
	SaveBatch(batch *entity.BatchResult) (string, error)
	List() ([]string, error)
	Read(name string) ([]byte, error)
}

type Handler struct {
	lookups LookupService
	runner  BulkRunner
	store   ResultStore

	in  *bufio.Scanner
	out io.Writer
}

func NewHandler(lookups LookupService, runner BulkRunner, store ResultStore) *Handler {
	return &Handler{
		lookups: lookups,
		runner:  runner,
		store:   store,
		in:      bufio.NewScanner(os.Stdin),
		out:     os.Stdout,
	}
}

// WithIO replaces stdin/stdout, for tests.
func (h *Handler) WithIO(in io.Reader, out io.Writer) *Handler {
	h.in = bufio.NewScanner(in)
	h.out = out
	return h
}

// Run drives the menu until the user exits or input ends. Each operation gets
// its own trace id so its log lines can be correlated.
func (h *Handler) Run(ctx context.Context) error {
	h.printBanner()
	h.printNotice()

	for {
		if ctx.Err() != nil {
			return nil
		}

		h.printMenu()

		choice, ok := h.prompt("Select option (1-7): ")
		if !ok {
			return nil
		}

		opCtx := contextx.WithTraceID(ctx, contextx.TraceID(xid.New().String()))

		switch strings.TrimSpace(choice) {
		case "1":
			h.singleLookup(opCtx)
		case "2":
			h.bulkLookup(opCtx)
		case "3":
			h.viewSavedResults()
		case "4":
			h.showCountryCodes()
		case "5":
			h.checkStatus(opCtx)
		case "6":
			h.clearScreen()
			h.printBanner()
		case "7":
			h.printMessage(kindSuccess, "Goodbye!")
			return nil
		default:
			h.printMessage(kindError, "Invalid choice! Please select 1-7.")
		}
	}
}

// prompt reads one line; ok is false once input is exhausted.
func (h *Handler) prompt(label string) (string, bool) {
	fmt.Fprint(h.out, colorCyan.Sprint(label))

	if !h.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(h.in.Text()), true
}

func (h *Handler) promptCountry() (string, bool) {
	fallback := h.lookups.DefaultCountry()

	country, ok := h.prompt(fmt.Sprintf("Country code (IN, US, BD etc) [%s]: ", fallback))
	if !ok {
		return "", false
	}

	if country == "" {
		return fallback, true
	}

	return strings.ToUpper(country), true
}

func (h *Handler) confirm(label string) bool {
	answer, ok := h.prompt(label)
	if !ok {
		return false
	}

	answer = strings.ToLower(answer)

	return answer == "y" || answer == "yes"
}
