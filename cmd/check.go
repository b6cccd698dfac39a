package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"apk-server/feature/artifact"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the APK is available for download",
	Long:  `Looks up the artifact at its configured source and prints its size and build time. Exits non-zero when the bucket or the artifact is missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		src, _, err := newSource(cfg)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		return runCheck(ctx, artifact.NewService(src, cfg.Artifact, zap.NewNop()), cmd.OutOrStdout())
	},
}

// runCheck prints the artifact report or returns why it is unavailable.
func runCheck(ctx context.Context, svc *artifact.Service, out io.Writer) error {
	info, ok, err := svc.Check(ctx)
	if errors.Is(err, artifact.ErrBucketMissing) {
		return fmt.Errorf("bucket missing for %s: %w", svc.Location(), err)
	}
	if err != nil {
		return fmt.Errorf("artifact check failed: %w", err)
	}
	if !ok {
		return fmt.Errorf("object missing: %w at %s", artifact.ErrNotFound, svc.Location())
	}

	fmt.Fprintln(out, "=== Artifact ===")
	fmt.Fprintf(out, "Location: %s\n", svc.Location())
	fmt.Fprintf(out, "Size: %d bytes\n", info.Size)
	fmt.Fprintf(out, "Modified: %s\n", info.ModTime.Format("2006-01-02 15:04:05"))
	for _, route := range svc.Routes() {
		fmt.Fprintf(out, "Route: %s\n", route)
	}
	return nil
}

func init() {
	checkCmd.Flags().String("root", "", "directory holding the artifact (overrides SERVER_ROOT)")
	RootCmd.AddCommand(checkCmd)
}
