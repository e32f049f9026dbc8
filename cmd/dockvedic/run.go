package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/sarat-asymmetrica/dockvedic/internal/cache"
	"github.com/sarat-asymmetrica/dockvedic/internal/dockio"
	"github.com/sarat-asymmetrica/dockvedic/internal/logging"
	"github.com/sarat-asymmetrica/dockvedic/internal/metrics"
	"github.com/sarat-asymmetrica/dockvedic/internal/request"
)

func newRunCmd(root *rootOptions) *cobra.Command {
	var sfSections, stageSections, outPath, restartPath, resumePath string
	var seed int64

	cmd := &cobra.Command{
		Use:   "run <receptor.yaml> <ligand.yaml> <parameter-file>",
		Short: "run the parameter file's protocol pipeline and write the best pose",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = root.cfg.Run.Seed
			}
			if sfSections == "" {
				sfSections = root.cfg.Run.SFSections
			}
			if stageSections == "" {
				stageSections = root.cfg.Run.ProtocolSections
			}
			if outPath == "" {
				outPath = root.cfg.Run.OutputSDPath
			}
			if restartPath == "" {
				restartPath = root.cfg.Run.RestartPath
			}

			runID := uuid.New().String()
			runLogger := root.logger.With(logging.String("run_id", runID))

			rec, err := newMetricsRecorder(root, cmd.Context())
			if err != nil {
				return err
			}
			poseCache, err := newPoseCache(root)
			if err != nil {
				return err
			}
			defer poseCache.Close()

			rig, err := buildSearchRig(args[0], args[1], args[2], seed, sfSections, stageSections)
			if err != nil {
				return err
			}
			if rig.pipeline == nil {
				return fmt.Errorf("run: parameter file defines no protocol stage (check --stage-sections / run.protocol_sections)")
			}

			if resumePath != "" {
				resumed, err := dockio.ReadRestartFile(resumePath)
				if err != nil {
					return fmt.Errorf("resuming: %w", err)
				}
				if err := dockio.RestoreChromosome(rig.c, resumed); err != nil {
					return fmt.Errorf("resuming: %w", err)
				}
				runLogger.Info("resumed from restart record", logging.Float64("score.resumed", resumed.Score))
			}

			start := time.Now()
			runScorer(rig, poseCache, rec)
			rig.pipeline.Execute()
			rig.sf.HandleRequest(request.NewPartition(0))
			best := rig.sf.Score()
			rec.SetPopulationBestScore(best)

			runLogger.Info("run complete",
				logging.Float64("score.total", best),
				logging.Duration("elapsed", time.Since(start)))

			if outPath != "" {
				if err := writeBestPose(rig, outPath, rec); err != nil {
					return err
				}
			}
			if restartPath != "" {
				if err := dockio.WriteRestartFile(restartPath, dockio.RestartRecord{
					RunID:  runID,
					Vector: rig.c.GetVector(),
					Score:  best,
				}); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "score.total = %.6f\n", best)
			return nil
		},
	}

	cmd.Flags().StringVar(&sfSections, "sf-sections", "", "comma-separated scoring-function section allow-list (default: run.sf_sections from config; empty scans all)")
	cmd.Flags().StringVar(&stageSections, "stage-sections", "", "comma-separated protocol section allow-list (default: run.protocol_sections from config)")
	cmd.Flags().StringVar(&outPath, "out", "", "SD pose output path (default: run.output_sd_path from config)")
	cmd.Flags().StringVar(&restartPath, "restart", "", "restart record output path (default: run.restart_path from config)")
	cmd.Flags().StringVar(&resumePath, "resume", "", "restart record to resume the ligand chromosome from before running")
	cmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed (0 uses the config default)")
	return cmd
}

func newMetricsRecorder(root *rootOptions, ctx context.Context) (metrics.Recorder, error) {
	if !root.cfg.Metrics.Enabled {
		return metrics.Noop{}, nil
	}
	rec, err := metrics.New(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle(root.cfg.Metrics.Path, promhttp.Handler())
	srv := &http.Server{Addr: root.cfg.Metrics.Addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			root.logger.Warn("metrics server stopped", logging.Err(err))
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	return rec, nil
}

func newPoseCache(root *rootOptions) (cache.PoseCache, error) {
	if !root.cfg.Redis.Enabled {
		return cache.NewMemoryCache(0), nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c, err := cache.NewRedisCache(ctx, cache.Options{
		Addr:     root.cfg.Redis.Addr,
		Password: root.cfg.Redis.Password,
		DB:       root.cfg.Redis.DB,
		TTL:      root.cfg.Redis.TTL,
	})
	if err != nil {
		return nil, fmt.Errorf("pose cache: %w", err)
	}
	return c, nil
}

// runScorer scores the chromosome's current pose once, before the
// pipeline runs, consulting the pose cache first and recording the
// cache access and (on a miss) the evaluation. The transforms' own
// scoring calls do not go through it.
func runScorer(rig *searchRig, poseCache cache.PoseCache, rec metrics.Recorder) {
	rig.c.SyncToModel()
	ctx := context.Background()
	vector := rig.c.GetVector()
	if entry, err := poseCache.Get(ctx, vector); err == nil {
		rec.ObserveCacheAccess(true)
		rec.SetPopulationBestScore(entry.Score)
		return
	}
	rec.ObserveCacheAccess(false)
	start := time.Now()
	score := rig.sf.Score()
	rec.ObserveSFEvaluation(rig.sf.GetClass(), time.Since(start).Seconds(), true)
	_ = poseCache.Set(ctx, vector, cache.Entry{Score: score, ScoredAt: time.Now()})
}

func writeBestPose(rig *searchRig, outPath string, rec metrics.Recorder) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("opening pose output: %w", err)
	}
	defer f.Close()

	sink := dockio.NewSDSink(f)
	sm := make(map[string]float64)
	rig.sf.ScoreMap(sm)
	if err := sink.Render(rig.ligand, sm); err != nil {
		return fmt.Errorf("writing pose: %w", err)
	}
	rec.IncPosesWritten()
	return nil
}
