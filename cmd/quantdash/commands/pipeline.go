package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/quantdash/internal/contracts"
)

// pipelineCmd represents the pipeline command
var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "추세 검증 파이프라인",
	Long: `최근 3일 스냅샷으로 Top N 지속성을 분류합니다.

분류:
  verified  - 3일 연속 Top N (가중 순위 부여)
  pending   - 2일 연속 Top N
  new_entry - 오늘 신규 진입

Example:
  go run ./cmd/quantdash pipeline`,
	RunE: runPipeline,
}

func init() {
	rootCmd.AddCommand(pipelineCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	d, err := initDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	result, err := d.service.Pipeline(context.Background())
	if err != nil {
		return fmt.Errorf("compute pipeline: %w", err)
	}

	fmt.Println("=== Trend Pipeline ===")
	printPipelineGroup("✅ Verified (3일 연속)", result.Verified, true)
	printPipelineGroup("⏳ Pending (2일 연속)", result.Pending, false)
	printPipelineGroup("🆕 New Entry (신규 진입)", result.NewEntry, false)

	if len(result.Sectors) > 0 {
		fmt.Println("\n섹터 분포 (verified):")
		for sector, count := range result.Sectors {
			fmt.Printf("  %-12s %d\n", sector, count)
		}
	}

	return nil
}

func printPipelineGroup(title string, entries []contracts.PipelineEntry, weighted bool) {
	fmt.Printf("\n%s: %d\n", title, len(entries))
	for _, e := range entries {
		if weighted && e.WeightedRank.Valid {
			fmt.Printf("  %3d위 %s (%s) 가중 %.1f\n", e.EffectiveRank(), e.Name, e.Ticker, e.WeightedRank.Value)
		} else {
			fmt.Printf("  %3d위 %s (%s)\n", e.EffectiveRank(), e.Name, e.Ticker)
		}
	}
}
