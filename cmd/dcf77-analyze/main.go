package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/giordano/godcf77/internal/simulate"
	"github.com/giordano/godcf77/pkg/dcf77"
)

var (
	rootCmd = &cobra.Command{
		Use:   "dcf77-analyze [bits]",
		Short: "Decode DCF77 time-code frames",
		Long:  "dcf77-analyze decodes 60-bit DCF77 frames using the godcf77 library.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runInteractive()
			}
			return runAnalyze(args[0])
		},
	}

	encodeCmd = &cobra.Command{
		Use:   "encode",
		Short: "Encode a Central-European datetime into a frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			var frame dcf77.Frame
			if encodeTime != "" {
				parsed, err := time.Parse(time.RFC3339, encodeTime)
				if err != nil {
					return fmt.Errorf("parse --time: %w", err)
				}
				frame = dcf77.Encode(parsed)
			} else {
				frame = dcf77.EncodeParts(encYear, time.Month(encMonth), encDay, encHour, encMinute)
			}
			return runAnalyze(frame.BitString())
		},
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Emit a simulated minute stream, one frame per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := simulate.Config{
				Start:           genStart,
				Count:           genCount,
				IntervalSeconds: genInterval,
			}
			if genConfig != "" {
				loaded, err := simulate.Load(genConfig)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			return simulate.Run(cmd.Context(), cfg, os.Stdout)
		},
	}

	encodeTime string
	encYear    int
	encMonth   int
	encDay     int
	encHour    int
	encMinute  int

	genConfig   string
	genStart    string
	genCount    int
	genInterval int
)

func init() {
	encodeCmd.Flags().StringVar(&encodeTime, "time", "", "RFC3339 datetime to encode")
	encodeCmd.Flags().IntVar(&encYear, "year", 2000, "year (2000-2099)")
	encodeCmd.Flags().IntVar(&encMonth, "month", 1, "month (1-12)")
	encodeCmd.Flags().IntVar(&encDay, "day", 1, "day of month")
	encodeCmd.Flags().IntVar(&encHour, "hour", 0, "hour (0-23)")
	encodeCmd.Flags().IntVar(&encMinute, "minute", 0, "minute (0-59)")

	generateCmd.Flags().StringVar(&genConfig, "config", "", "yaml config file (overrides the other flags)")
	generateCmd.Flags().StringVar(&genStart, "start", "", "first broadcast minute, RFC3339 (default now)")
	generateCmd.Flags().IntVar(&genCount, "count", 1, "number of frames to emit")
	generateCmd.Flags().IntVar(&genInterval, "interval-seconds", 0, "pacing between frames (60 mimics the transmitter)")

	rootCmd.AddCommand(encodeCmd, generateCmd)
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

func runInteractive() error {
	scanner := bufio.NewScanner(os.Stdin)
	logrus.Info("dcf77 analyze mode. Paste a 60-bit frame and press Enter (Ctrl+D to exit).")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := runAnalyze(line); err != nil {
			logrus.WithError(err).Error("failed to decode frame")
		}
	}
	return scanner.Err()
}

func runAnalyze(raw string) error {
	result, err := dcf77.Analyze(raw)
	if err != nil {
		return err
	}
	fmt.Println(result.String())
	return nil
}
