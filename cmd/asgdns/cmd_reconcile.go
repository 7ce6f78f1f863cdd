package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kompox/asgdns/adapters/event"
	"github.com/kompox/asgdns/domain/model"
	"github.com/kompox/asgdns/internal/logging"
	"github.com/kompox/asgdns/usecase/dns"
	"github.com/spf13/cobra"
)

// reconcileTimeout bounds a single CLI reconciliation.
const reconcileTimeout = 5 * time.Minute

type reconcileFlags struct {
	eventPath string
	group     string
	region    string
	subnet    string
	dryRun    bool
}

func newCmdReconcile() *cobra.Command {
	var f reconcileFlags

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconcile the record set of one Auto Scaling group",
		Long: "Reconcile the record set of one Auto Scaling group, either from an EventBridge event JSON " +
			"(--event FILE, or - for stdin) or from --group, --region and --subnet.",
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ev, err := f.scaleEvent(cmd.InOrStdin())
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), reconcileTimeout)
			defer cancel()
			ctx, runID := withRunID(ctx)
			ctx, cleanup := withCmdRunLogger(ctx, "reconcile", ev.GroupName)
			defer func() { cleanup(err) }()

			uc, err := buildDNSUseCase(ctx, configFromContext(ctx), ev.Region, os.Getenv)
			if err != nil {
				return err
			}

			out, err := uc.Reconcile(ctx, &dns.ReconcileInput{Event: *ev, DryRun: f.dryRun, RunID: runID})
			if err != nil {
				return fmt.Errorf("failed to reconcile group %s: %w", ev.GroupName, err)
			}
			logging.FromContext(ctx).Info(ctx, "reconcile complete", "action", out.Action, "zone_id", out.ZoneID, "addresses", out.Addresses)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&f.eventPath, "event", "", "EventBridge event JSON file (- for stdin)")
	cmd.Flags().StringVar(&f.group, "group", "", "Auto Scaling group name")
	cmd.Flags().StringVar(&f.region, "region", "", "Region of the group")
	cmd.Flags().StringVar(&f.subnet, "subnet", "", "Subnet ID identifying the VPC")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "Show what would be changed without applying")
	cmd.MarkFlagsMutuallyExclusive("event", "group")
	cmd.MarkFlagsMutuallyExclusive("event", "subnet")

	return cmd
}

// scaleEvent builds the event to reconcile from --event or the discrete flags.
func (f *reconcileFlags) scaleEvent(stdin io.Reader) (*model.ScaleEvent, error) {
	if f.eventPath == "" {
		ev := &model.ScaleEvent{
			Region:      f.region,
			GroupName:   f.group,
			SubnetID:    f.subnet,
			Description: "manual reconcile",
		}
		if err := ev.Validate(); err != nil {
			return nil, fmt.Errorf("either --event or --group, --region and --subnet are required: %w", err)
		}
		return ev, nil
	}

	data, err := readEventFile(f.eventPath, stdin)
	if err != nil {
		return nil, err
	}
	ev, err := event.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("event %s: %w", f.eventPath, err)
	}
	if f.region != "" {
		ev.Region = f.region
	}
	return ev, nil
}

// readEventFile reads path, or stdin when path is "-".
func readEventFile(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read event from stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event file %s: %w", path, err)
	}
	return data, nil
}
