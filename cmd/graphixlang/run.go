package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/graphixlang/interpreter/internal/ast"
	"github.com/graphixlang/interpreter/internal/backend"
	"github.com/graphixlang/interpreter/internal/config"
	"github.com/graphixlang/interpreter/internal/interp"
	"github.com/graphixlang/interpreter/internal/logx"
)

var (
	colorSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	colorFailure = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	colorMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

func runInterpret(cmd *cobra.Command, args []string) error {
	astPath := args[0]
	var outputPath string
	if len(args) == 2 {
		outputPath = args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if verboseFlag {
		cfg.LogLevel = logx.LevelDebug
	}
	if noColorFlag {
		cfg.Color = false
	}

	log := logx.New(logx.Config{Level: cfg.LogLevel, Color: cfg.Color})

	data, err := os.ReadFile(astPath)
	if err != nil {
		printFailure(cfg.Color, fmt.Sprintf("could not read %s: %v", astPath, err))
		return err
	}

	doc, err := ast.Decode(data)
	if err != nil {
		printFailure(cfg.Color, fmt.Sprintf("malformed AST document: %v", err))
		return err
	}
	log.Debug("classified document", "shape", doc.Shape)

	in := interp.New(
		backend.NewDefaultImageBackend(),
		backend.NewTIFFMetadataBackend(),
		backend.NewOSFileSystem(),
		cfg.Extensions,
		log,
	)

	results, opCount := in.Interpret(doc)

	failed := 0
	for _, r := range results {
		var ierr *interp.Error
		if errors.As(r.Err, &ierr) && ierr.Kind == interp.KindUnknownNodeKind {
			continue // skipped by Interpret, not a failure
		}
		if r.Err != nil {
			failed++
		}
	}

	if outputPath != "" {
		if err := writeSummary(outputPath, results, opCount); err != nil {
			log.Warn("failed to write run summary", "path", outputPath, "error", err)
		}
	}

	if failed > 0 {
		printFailure(cfg.Color, fmt.Sprintf("interpretation stopped after %d statement(s); %d operation(s) completed", len(results), opCount))
		return fmt.Errorf("interpretation failed")
	}

	printSuccess(cfg.Color, fmt.Sprintf("interpreted %d statement(s), %d operation(s)", len(results), opCount))
	return nil
}

// summary mirrors bridge.py's execute_ast JSON shape, generalized from its
// single "result" string to a full per-statement list (SPEC_FULL.md §12).
type summary struct {
	Operations int              `json:"operations"`
	Results    []statementEntry `json:"results"`
}

type statementEntry struct {
	Value string `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

func writeSummary(path string, results []interp.Result, opCount int) error {
	out := summary{Operations: opCount, Results: make([]statementEntry, len(results))}
	for i, r := range results {
		if r.Err != nil {
			out.Results[i] = statementEntry{Error: r.Err.Error()}
			continue
		}
		out.Results[i] = statementEntry{Value: r.Value.String()}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func printSuccess(color bool, msg string) {
	if !color {
		fmt.Println(msg)
		return
	}
	fmt.Println(colorSuccess.Render("✓") + " " + msg)
}

func printFailure(color bool, msg string) {
	if !color {
		fmt.Fprintln(os.Stderr, msg)
		return
	}
	fmt.Fprintln(os.Stderr, colorFailure.Render("✗")+" "+colorMuted.Render(msg))
}
