package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/ticketdesk/internal/actor"
	"github.com/yungbote/ticketdesk/internal/platform/logger"
	"github.com/yungbote/ticketdesk/internal/ticket"
)

type floodOptions struct {
	Producers int
	PerProd   int
	Capacity  int
	Retry     bool
	Backoff   time.Duration
}

type floodReport struct {
	Accepted int64
	Rejected int64
	Retries  int64
	Stored   int
	Elapsed  time.Duration
}

var floodOpts floodOptions

var floodCmd = &cobra.Command{
	Use:   "flood",
	Short: "Flood an actor mailbox and report how much was accepted",
	Long: `flood starts an in-process ticket worker and hammers it from many
goroutines at once. Inserts that find the mailbox full are counted as
rejected, or retried with --retry.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logger.New("development")
		if err != nil {
			return err
		}
		defer log.Sync()

		rep, err := runFlood(cmd.Context(), log, floodOpts)
		if err != nil {
			return err
		}
		printFloodReport(cmd.OutOrStdout(), floodOpts, rep)
		return nil
	},
}

func runFlood(ctx context.Context, log *logger.Logger, opts floodOptions) (floodReport, error) {
	if opts.Producers < 1 || opts.PerProd < 1 {
		return floodReport{}, errors.New("producers and per-producer must be positive")
	}

	client := actor.Launch(opts.Capacity, actor.WithLogger(log))
	defer client.Close()

	var rep floodReport
	draft := ticket.Draft{
		Title:       ticket.MustTitle("flood"),
		Description: ticket.MustDescription("generated by ticketd flood"),
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for p := 0; p < opts.Producers; p++ {
		handle := client.Clone()
		g.Go(func() error {
			defer handle.Close()
			for i := 0; i < opts.PerProd; i++ {
				for {
					_, err := handle.Insert(gctx, draft)
					if err == nil {
						atomic.AddInt64(&rep.Accepted, 1)
						break
					}
					if !errors.Is(err, actor.ErrMailboxFull) {
						return err
					}
					if !opts.Retry {
						atomic.AddInt64(&rep.Rejected, 1)
						break
					}
					atomic.AddInt64(&rep.Retries, 1)
					select {
					case <-time.After(opts.Backoff):
					case <-gctx.Done():
						return gctx.Err()
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return rep, err
	}
	rep.Elapsed = time.Since(start)

	// Every accepted insert produced exactly one ticket.
	for id := ticket.ID(0); ; id++ {
		_, found, err := client.Get(ctx, id)
		if err != nil {
			return rep, err
		}
		if !found {
			rep.Stored = int(id)
			break
		}
	}
	return rep, nil
}

func printFloodReport(w io.Writer, opts floodOptions, rep floodReport) {
	total := opts.Producers * opts.PerProd
	fmt.Fprintf(w, "producers=%d per_producer=%d capacity=%d\n", opts.Producers, opts.PerProd, opts.Capacity)
	fmt.Fprintf(w, "accepted=%d rejected=%d retries=%d stored=%d of %d\n", rep.Accepted, rep.Rejected, rep.Retries, rep.Stored, total)
	fmt.Fprintf(w, "elapsed=%s\n", rep.Elapsed.Round(time.Microsecond))
}

func init() {
	floodCmd.Flags().IntVar(&floodOpts.Producers, "producers", 8, "Concurrent producer goroutines")
	floodCmd.Flags().IntVar(&floodOpts.PerProd, "per-producer", 1000, "Inserts attempted by each producer")
	floodCmd.Flags().IntVar(&floodOpts.Capacity, "capacity", 4, "Mailbox capacity")
	floodCmd.Flags().BoolVar(&floodOpts.Retry, "retry", false, "Retry inserts rejected by a full mailbox")
	floodCmd.Flags().DurationVar(&floodOpts.Backoff, "backoff", 50*time.Microsecond, "Wait between retries")
	rootCmd.AddCommand(floodCmd)
}
