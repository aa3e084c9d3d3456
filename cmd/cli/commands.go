package main

import (
	"fmt"

	"intermarket/internal/util"

	"github.com/spf13/cobra"
)

func correlationsCmd() *cobra.Command {
	var (
		symbols string
		window  int
	)
	cmd := &cobra.Command{
		Use:   "correlations",
		Short: "Compute the pairwise correlation matrix of daily returns",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			matrix, err := svc.CalculateCorrelations(cmd.Context(), parseSymbols(symbols), window)
			if err != nil {
				return err
			}
			util.Pprint(matrix)
			return nil
		},
	}
	cmd.Flags().StringVar(&symbols, "symbols", "", "comma-separated symbols, empty for the configured universe")
	cmd.Flags().IntVar(&window, "window", 0, "lookback window in calendar days, 0 for the default")
	return cmd
}

func leadersCmd() *cobra.Command {
	var (
		symbols string
		window  int
	)
	cmd := &cobra.Command{
		Use:   "leaders",
		Short: "Rank symbols by mean absolute correlation against the rest",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			matrix, err := svc.CalculateCorrelations(cmd.Context(), parseSymbols(symbols), window)
			if err != nil {
				return err
			}
			util.Pprint(svc.IdentifyLeaders(matrix))
			return nil
		},
	}
	cmd.Flags().StringVar(&symbols, "symbols", "", "comma-separated symbols, empty for the configured universe")
	cmd.Flags().IntVar(&window, "window", 0, "lookback window in calendar days, 0 for the default")
	return cmd
}

func spilloverCmd() *cobra.Command {
	var (
		symbol  string
		symbols string
	)
	cmd := &cobra.Command{
		Use:   "spillover",
		Short: "Find which symbols a given symbol co-moves with most strongly",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSymbol(symbol); err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			report, err := svc.DetectSpillover(cmd.Context(), symbol, parseSymbols(symbols))
			if err != nil {
				return err
			}
			util.Pprint(report)
			return nil
		},
	}
	cmd.Flags().StringVar(&symbol, "symbol", "", "symbol to analyze")
	cmd.Flags().StringVar(&symbols, "symbols", "", "comma-separated universe, empty for the configured universe")
	return cmd
}

func networkCmd() *cobra.Command {
	var symbols string
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Build the market graph of above-threshold correlations",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			network, err := svc.GetMarketNetwork(cmd.Context(), parseSymbols(symbols))
			if err != nil {
				return err
			}
			util.Pprint(network)
			return nil
		},
	}
	cmd.Flags().StringVar(&symbols, "symbols", "", "comma-separated symbols, empty for the configured universe")
	return cmd
}

func regimeCmd() *cobra.Command {
	var (
		symbols    string
		commentary bool
	)
	cmd := &cobra.Command{
		Use:   "regime",
		Short: "Classify the current correlation regime",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			if commentary {
				text, err := svc.DescribeRegime(cmd.Context(), parseSymbols(symbols))
				if err != nil {
					return err
				}
				fmt.Println(text)
				return nil
			}
			analysis, err := svc.AnalyzeMarketRegime(cmd.Context(), parseSymbols(symbols))
			if err != nil {
				return err
			}
			util.Pprint(analysis)
			return nil
		},
	}
	cmd.Flags().StringVar(&symbols, "symbols", "", "comma-separated symbols, empty for the configured universe")
	cmd.Flags().BoolVar(&commentary, "commentary", false, "generate model-written commentary instead of raw analysis")
	return cmd
}
