package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/mindset/internal/coach"
	"github.com/abhisek/mindset/internal/llm"
	"github.com/abhisek/mindset/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Check the coach's LLM provider",
}

var llmPingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Send one recap request and show the recorded LLM event",
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if !cfg.LLM.Discover() {
			return errors.New("no LLM provider configured; set MINDSET_LLM_PROVIDER or one of the *_API_KEY variables")
		}

		logger, closer, err := cfg.NewLogger()
		if err != nil {
			return err
		}
		defer closer.Close()

		s, err := store.OpenMemory(uuid.NewString())
		if err != nil {
			return fmt.Errorf("open event store: %w", err)
		}
		defer s.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		provider, err := llm.NewProvider(ctx, cfg.LLM, s.EventRepo(), logger)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Asking %s for a recap...\n\n", cfg.LLM.Provider)

		svc := coach.NewService(provider, cfg.Coach)
		summary, recapErr := svc.Recap(ctx, []string{
			"09:00:00 name_submitted Ada",
			"09:01:10 details_submitted",
			"09:04:30 skill_added Public speaking (35)",
			"09:06:12 score_recorded 4/5",
		})
		if recapErr == nil {
			fmt.Fprintln(out, summary)
			fmt.Fprintln(out)
		}

		events, err := s.EventRepo().QueryLLMEvents(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		for _, e := range events {
			printEvent(out, e, verbose)
		}
		return recapErr
	},
}

func printEvent(w io.Writer, e store.LLMRequestEvent, verbose bool) {
	sep := strings.Repeat("─", 60)

	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "Sequence:  %d\n", e.Sequence)
	fmt.Fprintf(w, "Time:      %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Provider:  %s\n", e.Provider)
	fmt.Fprintf(w, "Model:     %s\n", e.Model)
	fmt.Fprintf(w, "Purpose:   %s\n", e.Purpose)
	fmt.Fprintf(w, "Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
	fmt.Fprintf(w, "Latency:   %dms\n", e.LatencyMs)
	if c := llm.LookupCost(e.Model); c != nil {
		fmt.Fprintf(w, "Cost:      %s\n", formatCost(c.Cost(e.InputTokens, e.OutputTokens)))
	} else {
		fmt.Fprintf(w, "Cost:      ?\n")
	}
	fmt.Fprintf(w, "Success:   %v\n", e.Success)
	if e.ErrorMessage != "" {
		fmt.Fprintf(w, "Error:     %s\n", e.ErrorMessage)
	}

	if !verbose {
		return
	}
	for _, part := range []struct{ title, body string }{
		{"REQUEST", e.RequestBody},
		{"RESPONSE", e.ResponseBody},
	} {
		fmt.Fprintln(w, sep)
		fmt.Fprintln(w, part.title)
		fmt.Fprintln(w, sep)
		if part.body != "" {
			fmt.Fprintln(w, part.body)
		} else {
			fmt.Fprintln(w, "(not captured)")
		}
	}
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmPingCmd.Flags().BoolP("verbose", "v", false, "Print request and response bodies")

	llmCmd.AddCommand(llmPingCmd)
}
