package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// deathlistCmd represents the deathlist command
var deathlistCmd = &cobra.Command{
	Use:   "deathlist",
	Short: "Top N 이탈 종목 조회",
	Long: `어제 Top N에 있었으나 오늘 이탈한 종목을 조회합니다.

이탈 사유는 전망(선행 EPS)과 가격 두 축으로 독립 판정하며,
±3% 이내 변화는 무시합니다.

Example:
  go run ./cmd/quantdash deathlist`,
	RunE: runDeathList,
}

func init() {
	rootCmd.AddCommand(deathlistCmd)
}

func runDeathList(cmd *cobra.Command, args []string) error {
	d, err := initDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	result, err := d.service.DeathList(context.Background())
	if err != nil {
		return fmt.Errorf("compute death list: %w", err)
	}

	if result.Message != "" {
		fmt.Printf("⚠️  %s\n", result.Message)
		return nil
	}

	fmt.Printf("=== Death List (%s → %s) ===\n", result.Dates.Yesterday, result.Dates.Today)
	fmt.Printf("이탈 종목 수: %d\n\n", len(result.DeathList))

	for _, e := range result.DeathList {
		today := "제외"
		if e.TodayRank != nil {
			today = fmt.Sprintf("%d위", *e.TodayRank)
		}
		fmt.Printf("  %s (%s) %d위 → %s", e.Name, e.Ticker, e.YesterdayRank, today)
		if e.ExitReason != "" {
			fmt.Printf("  %s", e.ExitReason)
		}
		fmt.Println()
	}

	return nil
}
