package repository

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// UniverseRepository owns the default symbol set analyzed when a caller
// doesn't pass one. Order in the file is preserved, it drives matrix
// column order.
type UniverseRepository interface {
	ActiveSymbols() ([]string, error)
}

type universeRepositoryHandler struct {
	FilePath string
}

func NewUniverseRepository(filePath string) UniverseRepository {
	return universeRepositoryHandler{FilePath: filePath}
}

type universeRow struct {
	Symbol string `csv:"symbol"`
	Name   string `csv:"name"`
}

func (h universeRepositoryHandler) ActiveSymbols() ([]string, error) {
	f, err := os.Open(h.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open universe file: %w", err)
	}
	defer f.Close()

	rows := []universeRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse universe file %s: %w", h.FilePath, err)
	}

	symbols := []string{}
	for _, row := range rows {
		if row.Symbol == "" {
			continue
		}
		symbols = append(symbols, row.Symbol)
	}
	if len(symbols) == 0 {
		return nil, fmt.Errorf("no symbols found in universe file %s", h.FilePath)
	}

	return symbols, nil
}
