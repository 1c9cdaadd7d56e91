package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"
	"whisperwall/auth"
	"whisperwall/clock"
	"whisperwall/contract"
	"whisperwall/domain"
	"whisperwall/infrastructure/storage"
	"whisperwall/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// BuildCLI assembles the admin commands operating on the whisperd stores:
//
//	jobctl list   [--status pending] [--limit 50]
//	jobctl cancel <id>
//	jobctl audit  [--limit 50]
//	jobctl hash-password <password>
//
// The audit trail lives in badger, which whisperd keeps locked while running.
// cancel still works then, its audit entry is only logged.
func BuildCLI(cfg Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "jobctl",
		Short:        "Inspect and cancel whisperwall reply jobs",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(buildListCommand(cfg))
	rootCmd.AddCommand(buildCancelCommand(cfg))
	rootCmd.AddCommand(buildAuditCommand(cfg))
	rootCmd.AddCommand(buildHashPasswordCommand())

	return rootCmd
}

func buildListCommand(cfg Config) *cobra.Command {
	var status string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reply jobs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter *domain.JobStatus
			if status != "" {
				s := domain.JobStatus(status)
				if !s.Valid() {
					return fmt.Errorf("unknown status %q", status)
				}
				filter = &s
			}
			db, jobs, _, err := openStores(cmd.Context(), cfg, logs.GetLoggerFromString(cfg.LogLevel))
			if err != nil {
				return err
			}
			defer db.Close()

			res, err := jobs.List(cmd.Context(), filter, limit)
			if err != nil {
				return err
			}
			renderJobs(cmd.OutOrStdout(), res, cfg.Colours)
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Only jobs in this status (pending, running, done, error, cancelled)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "Maximum number of jobs")

	return cmd
}

func buildCancelCommand(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a pending or running job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid job id %q", args[0])
			}
			log := logs.GetLoggerFromString(cfg.LogLevel)
			db, jobs, whispers, err := openStores(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer db.Close()

			audit, closeAudit := openAuditOrLog(cfg, log)
			defer closeAudit()

			service := services.NewJobService(log, clock.System{}, jobs, whispers, audit)
			job, err := service.Cancel(cmd.Context(), domain.JobID(id))
			if err != nil {
				return err
			}
			renderJobs(cmd.OutOrStdout(), []domain.Job{job}, cfg.Colours)
			return nil
		},
	}
}

func buildAuditCommand(cfg Config) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show the job lifecycle audit trail, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := badger.Open(badger.DefaultOptions(cfg.BadgerFilepath).WithLoggingLevel(badger.WARNING))
			if err != nil {
				return fmt.Errorf("audit store unavailable (is whisperd running?): %w", err)
			}
			defer kv.Close()

			entries, err := storage.NewAuditRepository(kv, logs.GetLoggerFromString(cfg.LogLevel)).List(limit)
			if err != nil {
				return err
			}
			renderAudit(cmd.OutOrStdout(), entries, cfg.Colours)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "Maximum number of entries")

	return cmd
}

// openStores opens the sqlite database shared with whisperd, creating the tables when missing.
// buildHashPasswordCommand prints the value expected in ADMIN_PASSWORD_HASH.
func buildHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Hash an operator password for ADMIN_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
}

func openStores(ctx context.Context, cfg Config, log *slog.Logger) (*sql.DB, *storage.JobRepository, *storage.WhisperRepository, error) {
	db, err := storage.OpenSQLite(cfg.SQLitePath, 5*time.Second)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("sqlite opening failed: %w", err)
	}
	jobs := storage.NewJobRepository(db, log, clock.System{})
	whispers := storage.NewWhisperRepository(db, log, clock.System{})
	if err := whispers.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}
	if err := jobs.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}
	return db, jobs, whispers, nil
}

// logAudit stands in for the badger trail while whisperd holds its lock.
type logAudit struct {
	log *slog.Logger
}

func (a logAudit) Record(entry domain.AuditEntry) {
	a.log.Warn("Audit store locked, entry only logged",
		"job_id", entry.JobID, "action", entry.Action, "status", entry.Status)
}

func (a logAudit) List(int) ([]domain.AuditEntry, error) { return nil, nil }

func openAuditOrLog(cfg Config, log *slog.Logger) (contract.IAuditLog, func()) {
	kv, err := badger.Open(badger.DefaultOptions(cfg.BadgerFilepath).WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Debug("Audit store unavailable", "error", err)
		return logAudit{log: log}, func() {}
	}
	return storage.NewAuditRepository(kv, log), func() { _ = kv.Close() }
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func renderJobs(w io.Writer, jobs []domain.Job, colours bool) {
	table := newTable(w, []string{"ID", "Target", "Zone", "Emotion", "Status", "Run at", "Retries", "Error"})
	for _, j := range jobs {
		table.Append([]string{
			strconv.FormatInt(int64(j.ID), 10),
			shortID(j.TargetID),
			string(j.Zone),
			string(j.Emotion),
			paintStatus(j.Status, colours),
			j.RunAt.UTC().Format(time.DateTime),
			strconv.Itoa(j.RetryCount),
			lo.FromPtr(j.LastError),
		})
	}
	table.Render()
}

func renderAudit(w io.Writer, entries []domain.AuditEntry, colours bool) {
	table := newTable(w, []string{"At", "Job", "Target", "Action", "Status", "Detail"})
	for _, e := range entries {
		table.Append([]string{
			e.At.UTC().Format(time.DateTime),
			strconv.FormatInt(int64(e.JobID), 10),
			shortID(e.TargetID),
			string(e.Action),
			paintStatus(e.Status, colours),
			e.Detail,
		})
	}
	table.Render()
}

func paintStatus(s domain.JobStatus, colours bool) string {
	if !colours {
		return string(s)
	}
	switch s {
	case domain.JobDone:
		return color.New(color.FgGreen).Render(string(s))
	case domain.JobError:
		return color.New(color.FgRed).Render(string(s))
	case domain.JobCancelled:
		return color.New(color.FgGray).Render(string(s))
	case domain.JobRunning:
		return color.New(color.FgCyan).Render(string(s))
	default:
		return color.New(color.FgYellow).Render(string(s))
	}
}

// shortID keeps the first 8 characters of a uuid for readability.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
