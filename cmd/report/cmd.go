package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mthorsell/cashlens-backend/internal/dto"
	"github.com/mthorsell/cashlens-backend/internal/models"
	"github.com/mthorsell/cashlens-backend/internal/services"
)

// report builds a dashboard model from a transactions JSON file without
// touching Firestore. Useful for inspecting the numbers a feed would
// produce before uploading it.
func main() {
	var (
		input = flag.String("input", "-", "transactions JSON file, or - for stdin")
		mode  = flag.String("mode", string(dto.CashFlowModeTotal), "cash flow mode: operating or total")
	)
	flag.Parse()

	txs, err := readTransactions(*input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read transactions:", err)
		os.Exit(1)
	}

	model := services.BuildDashboardModel(txs, dto.ParseCashFlowMode(*mode))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(model); err != nil {
		fmt.Fprintln(os.Stderr, "encode dashboard:", err)
		os.Exit(1)
	}
}

func readTransactions(path string) ([]models.Transaction, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var txs []models.Transaction
	if err := json.NewDecoder(r).Decode(&txs); err != nil {
		return nil, err
	}
	return txs, nil
}
