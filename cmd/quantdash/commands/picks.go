package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// picksCmd represents the picks command
var picksCmd = &cobra.Command{
	Use:   "picks",
	Short: "가중 랭킹 종목 선정",
	Long: `N일 연속 Top N 교집합에서 가중 랭킹으로 종목을 선정합니다.

이 명령어는:
- 최근 N일 스냅샷 로드
- N일 교집합 계산
- 가중 평균 순위로 정렬 후 상위 선정
- 종목별 매수 근거 생성

Example:
  go run ./cmd/quantdash picks
  go run ./cmd/quantdash picks --trend-config config/trend.yaml`,
	RunE: runPicks,
}

func init() {
	rootCmd.AddCommand(picksCmd)
}

func runPicks(cmd *cobra.Command, args []string) error {
	d, err := initDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	result, err := d.service.Picks(context.Background())
	if err != nil {
		return fmt.Errorf("compute picks: %w", err)
	}

	if result.Insufficient() {
		fmt.Printf("⚠️  %s\n", result.Message)
		return nil
	}

	fmt.Printf("=== Picks (%s) ===\n", strings.Join(result.Dates, " → "))
	fmt.Printf("교집합 종목 수: %d\n\n", result.TotalCommon)

	for i, p := range result.Picks {
		fmt.Printf("%d. %s (%s)\n", i+1, p.Name, p.Ticker)
		fmt.Printf("   가중순위 %.1f | 비중 %d%% | 궤적 %v\n", p.WeightedRank, p.Weight, p.Trajectory)
		if p.BuyRationale != "" {
			fmt.Printf("   %s\n", p.BuyRationale)
		}
	}

	return nil
}
