package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/skilltree-api/internal/engine"
	"github.com/KirkDiggler/skilltree-api/internal/errors"
	"github.com/KirkDiggler/skilltree-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/skilltree-api/internal/redis"
	"github.com/KirkDiggler/skilltree-api/internal/repositories/build"
)

var (
	repairRedisAddrs    []string
	repairApply         bool
	repairDeleteCorrupt bool
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Repair stored builds against the current catalog",
	Long: `Scan every build stored in Redis and repair it against the catalog. Builds
that reference removed skills or exceed their budget are rewritten. Entries
that cannot be decoded are listed, and deleted when --delete-corrupt is set.

Nothing is written unless --apply is given.`,
	Args: cobra.NoArgs,
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().StringVar(&toolCatalogPath, "catalog", "", "YAML skill catalog, defaults to the embedded catalog")
	repairCmd.Flags().StringSliceVar(&repairRedisAddrs, "redis-addr", []string{"localhost:6379"}, "redis endpoints")
	repairCmd.Flags().BoolVar(&repairApply, "apply", false, "write repaired builds back")
	repairCmd.Flags().BoolVar(&repairDeleteCorrupt, "delete-corrupt", false, "delete builds that cannot be decoded, requires --apply")
}

// repairReport counts what a repair pass found
type repairReport struct {
	Checked  int
	Repaired []string
	Corrupt  []string
	Deleted  []string
}

func runRepair(cmd *cobra.Command, _ []string) error {
	allocator, err := toolEngine()
	if err != nil {
		return err
	}

	client, err := redisclient.Connect(repairRedisAddrs, nil)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis configuration")
	}
	defer func() { _ = client.Close() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach redis")
	}

	repo, err := build.NewRedisRepository(&build.RedisConfig{Client: client, Clock: clock.New()})
	if err != nil {
		return err
	}

	ids, err := build.RedisSessionIDs(ctx, client)
	if err != nil {
		return err
	}

	report, err := repairBuilds(ctx, allocator, repo, ids, repairApply, repairApply && repairDeleteCorrupt)
	if err != nil {
		return err
	}

	printRepairReport(cmd.OutOrStdout(), report, repairApply)
	return nil
}

// repairBuilds loads each session, repairs it and saves the result when
// apply is set. Undecodable records are deleted only when deleteCorrupt is
// set.
func repairBuilds(
	ctx context.Context,
	allocator engine.Engine,
	repo build.Repository,
	ids []string,
	apply, deleteCorrupt bool,
) (*repairReport, error) {
	report := &repairReport{}
	version := allocator.Catalog().Version()

	for _, id := range ids {
		out, err := repo.Get(ctx, build.GetInput{SessionID: id})
		switch {
		case errors.IsNotFound(err):
			// expired between scan and read
			continue
		case errors.IsDataLoss(err):
			report.Checked++
			report.Corrupt = append(report.Corrupt, id)
			if deleteCorrupt {
				if _, err := repo.Delete(ctx, build.DeleteInput{SessionID: id}); err != nil {
					return report, errors.Wrapf(err, "failed to delete %s", id)
				}
				report.Deleted = append(report.Deleted, id)
			}
			continue
		case err != nil:
			return report, errors.Wrapf(err, "failed to read %s", id)
		}
		report.Checked++

		result := allocator.Repair(out.Record.State)
		if !result.Changed && out.Record.CatalogVersion == version {
			continue
		}
		if result.Changed {
			report.Repaired = append(report.Repaired, id)
			slog.Debug("Build needs repair",
				"session_id", id,
				"dropped", result.Dropped,
				"adjusted", result.Adjusted)
		}

		if !apply {
			continue
		}
		if _, err := repo.Save(ctx, build.SaveInput{
			SessionID:      id,
			CatalogVersion: version,
			State:          result.State,
		}); err != nil {
			return report, errors.Wrapf(err, "failed to save %s", id)
		}
	}

	return report, nil
}

func printRepairReport(out io.Writer, report *repairReport, applied bool) {
	fmt.Fprintf(out, "checked %d builds, %d need repair, %d corrupt\n",
		report.Checked, len(report.Repaired), len(report.Corrupt))
	for _, id := range report.Repaired {
		fmt.Fprintf(out, "  repaired  %s\n", id)
	}
	for _, id := range report.Corrupt {
		fmt.Fprintf(out, "  corrupt   %s\n", id)
	}
	for _, id := range report.Deleted {
		fmt.Fprintf(out, "  deleted   %s\n", id)
	}
	if !applied {
		fmt.Fprintln(out, "dry run, rerun with --apply to write changes")
	}
}
