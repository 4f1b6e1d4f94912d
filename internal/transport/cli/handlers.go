package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"xlookup/internal/domain"
	"xlookup/internal/domain/service/phonenum"
	"xlookup/pkg/errcodes"
)

const bulkConfirmThreshold = 10

func (h *Handler) singleLookup(ctx context.Context) {
	fmt.Fprintln(h.out, colorWarning.Sprint("\n=== SINGLE NUMBER LOOKUP ==="))

	number, ok := h.prompt("Enter phone number (with country code): ")
	if !ok || number == "" {
		h.printMessage(kindError, "Phone number required!")
		return
	}

	country, ok := h.promptCountry()
	if !ok {
		return
	}

	if !phonenum.Supported(country) {
		h.printMessage(kindWarning, fmt.Sprintf("Country code %s not in list, but trying anyway...", country))
	}

	h.printMessage(kindInfo, fmt.Sprintf("Searching: %s (%s)", number, country))

	result, err := h.lookups.Lookup(ctx, number, country)
	if err != nil {
		h.printMessage(kindError, lookupErrorMessage(err))
		return
	}

	h.displayResult(result)

	if h.confirm("\nSave result? (y/n): ") {
		name, err := h.store.SaveResult(result)
		if err != nil {
			h.printMessage(kindError, fmt.Sprintf("Failed to save result: %v", err))
			return
		}
		h.printMessage(kindSuccess, fmt.Sprintf("Result saved to: %s", name))
	}
}

func (h *Handler) bulkLookup(ctx context.Context) {
	fmt.Fprintln(h.out, colorWarning.Sprint("\n=== BULK NUMBER LOOKUP ==="))
	h.printMessage(kindInfo, "Enter phone numbers (one per line). Type 'done' to finish:")
	h.printMessage(kindWarning, "Note: bulk search is rate limited and may take a while")

	var numbers []string

	for {
		line, ok := h.prompt("")
		if !ok || strings.EqualFold(line, "done") {
			break
		}
		if line != "" {
			numbers = append(numbers, line)
		}
	}

	if len(numbers) == 0 {
		h.printMessage(kindError, "No numbers provided!")
		return
	}

	if len(numbers) > bulkConfirmThreshold {
		h.printMessage(kindWarning, fmt.Sprintf("You entered %d numbers. This may take a while.", len(numbers)))
		if !h.confirm("Continue? (y/n): ") {
			return
		}
	}

	country, ok := h.promptCountry()
	if !ok {
		return
	}

	batch := h.runner.Run(ctx, numbers, country)

	h.displayBatchSummary(batch)

	for _, outcome := range batch.Outcomes {
		if outcome.Err != nil {
			h.printMessage(kindError, fmt.Sprintf("%s: %s", outcome.Input, lookupErrorMessage(outcome.Err)))
			continue
		}
		h.displayResult(outcome.Result)
	}

	if h.confirm("\nSave all results? (y/n): ") {
		name, err := h.store.SaveBatch(batch)
		if err != nil {
			h.printMessage(kindError, fmt.Sprintf("Failed to save results: %v", err))
			return
		}
		h.printMessage(kindSuccess, fmt.Sprintf("Results saved to: %s", name))
	}
}

func (h *Handler) viewSavedResults() {
	files, err := h.store.List()
	if err != nil {
		h.printMessage(kindError, fmt.Sprintf("Failed to list results: %v", err))
		return
	}

	if len(files) == 0 {
		h.printMessage(kindWarning, "No saved results found!")
		return
	}

	fmt.Fprintln(h.out, colorWarning.Sprintf("\n=== SAVED RESULTS (%d files) ===", len(files)))

	for i, name := range files {
		fmt.Fprintf(h.out, "%s %s\n", colorSuccess.Sprintf("%d.", i+1), name)
	}

	choice, ok := h.prompt("\nSelect file to view (0 to cancel): ")
	if !ok || choice == "0" || choice == "" {
		return
	}

	index, err := strconv.Atoi(choice)
	if err != nil || index < 1 || index > len(files) {
		h.printMessage(kindError, "Invalid selection!")
		return
	}

	data, err := h.store.Read(files[index-1])
	if err != nil {
		h.printMessage(kindError, fmt.Sprintf("Failed to read result: %v", err))
		return
	}

	fmt.Fprintln(h.out, colorSuccess.Sprintf("\n=== %s ===", files[index-1]))
	fmt.Fprintln(h.out, string(data))
}

func (h *Handler) showCountryCodes() {
	h.displayCountries(phonenum.Countries())
}

func (h *Handler) checkStatus(ctx context.Context) {
	fmt.Fprintln(h.out, colorWarning.Sprint("\n=== API STATUS CHECK ==="))
	h.printMessage(kindInfo, "Testing connection to the lookup API...")

	if err := h.lookups.CheckReachability(ctx); err != nil {
		h.printMessage(kindError, "API is not accessible. Check your internet connection.")
		return
	}

	h.printMessage(kindSuccess, "API is accessible and working")
}

// lookupErrorMessage maps domain codes to user-facing text; unknown errors
// pass through as-is.
func lookupErrorMessage(err error) string {
	code, ok := domain.GetCode(err)
	if !ok {
		return err.Error()
	}

	switch code {
	case errcodes.InvalidInput:
		return fmt.Sprintf("Invalid phone number: %v", err)
	case errcodes.EmptyResponse, errcodes.NoData:
		return "No data available for this number"
	case errcodes.NoIdentifiableInfo:
		return "No identifiable information found"
	case errcodes.NumberNotFound:
		return "Number not found"
	case errcodes.RateLimited:
		return "Rate limited by the API - slow down and try again later"
	case errcodes.Unreachable:
		return "Network connection failed"
	case errcodes.ParseFailure:
		return "Failed to parse API response"
	default:
		return err.Error()
	}
}
