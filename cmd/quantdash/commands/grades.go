package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// gradesCmd represents the grades command
var gradesCmd = &cobra.Command{
	Use:   "grades",
	Short: "팩터 등급 조회",
	Long: `최신 스냅샷 Top N의 팩터별 상대 등급(A+~D)을 조회합니다.

팩터: value, quality, growth, momentum

Example:
  go run ./cmd/quantdash grades`,
	RunE: runGrades,
}

func init() {
	rootCmd.AddCommand(gradesCmd)
}

func runGrades(cmd *cobra.Command, args []string) error {
	d, err := initDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	result, err := d.service.Grades(context.Background())
	if err != nil {
		return fmt.Errorf("compute grades: %w", err)
	}

	tickers := make([]string, 0, len(result))
	for ticker := range result {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)

	fmt.Println("=== Factor Grades ===")
	fmt.Printf("%-10s %-6s %-8s %-7s %-9s\n", "ticker", "value", "quality", "growth", "momentum")
	for _, ticker := range tickers {
		g := result[ticker]
		fmt.Printf("%-10s %-6s %-8s %-7s %-9s\n",
			ticker, g["value"], g["quality"], g["growth"], g["momentum"])
	}

	return nil
}
