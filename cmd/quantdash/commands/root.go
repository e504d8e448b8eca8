package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	trendConfigFile string
	verbose         bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "quantdash",
	Short: "QuantDash - 랭킹 추세 분석 대시보드 백엔드",
	Long: `QuantDash Unified CLI

일별 랭킹 스냅샷에서 추세 검증·가중 랭킹·팩터 등급·이탈 분석을 계산하는
대시보드 백엔드.

Usage:
  go run ./cmd/quantdash [command]

Examples:
  go run ./cmd/quantdash api
  go run ./cmd/quantdash picks
  go run ./cmd/quantdash pipeline
  go run ./cmd/quantdash deathlist`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&trendConfigFile, "trend-config", "", "trend parameter YAML (default: built-in defaults or TREND_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
