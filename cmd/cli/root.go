package main

import (
	"context"
	"fmt"
	"strings"

	"intermarket/cmd"
	"intermarket/internal/service"

	"github.com/spf13/cobra"
)

func Execute(ctx context.Context) error {
	root := &cobra.Command{
		Use:   "intermarket",
		Short: "Cross-asset correlation statistics from daily closes",
	}
	root.AddCommand(correlationsCmd())
	root.AddCommand(leadersCmd())
	root.AddCommand(spilloverCmd())
	root.AddCommand(networkCmd())
	root.AddCommand(regimeCmd())
	return root.ExecuteContext(ctx)
}

func newService() (service.IntermarketService, error) {
	handler, err := cmd.InitializeDependencies()
	if err != nil {
		return nil, err
	}
	return handler.IntermarketService, nil
}

// parseSymbols splits a comma-separated symbol list. Empty input means
// "use the configured universe".
func parseSymbols(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func requireSymbol(symbol string) error {
	if strings.TrimSpace(symbol) == "" {
		return fmt.Errorf("--symbol is required")
	}
	return nil
}
