package main

import (
	"fmt"
	"os"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain"
	"github.com/diegoclair/gpns-planner/internal/domain/entity"
	"github.com/diegoclair/gpns-planner/internal/export"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportStart  string
	exportEnd    string
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:     "export TEMPLATE",
	Short:   "Write the planning of a template over a date range",
	Example: `  planner export Est --start 2025-03-01 --end 2025-03-31 --format xlsx`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		start, err := time.Parse(domain.ISODate, exportStart)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
		end, err := time.Parse(domain.ISODate, exportEnd)
		if err != nil {
			return fmt.Errorf("invalid --end: %w", err)
		}

		a, err := newApp(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		a.loadTemplates(ctx, logger)

		output := exportOutput
		if output == "" {
			output = export.FileName(&entity.Planning{Template: args[0], Start: start, End: end}, exportFormat)
		}

		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", output, err)
		}

		if err := a.services.Planning.ExportPlanning(ctx, f, exportFormat, args[0], start, end); err != nil {
			f.Close()
			os.Remove(output)
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}

		logger.Info("planning exported", zap.String("file", output))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportStart, "start", "", "first day, YYYY-MM-DD")
	exportCmd.Flags().StringVar(&exportEnd, "end", "", "last day, YYYY-MM-DD")
	exportCmd.Flags().StringVar(&exportFormat, "format", export.FormatXLSX, "xlsx or txt")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default Planning_<template>_<start>_<end>.<format>)")
	_ = exportCmd.MarkFlagRequired("start")
	_ = exportCmd.MarkFlagRequired("end")
}
