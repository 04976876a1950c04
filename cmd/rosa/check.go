package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"rosa/internal/buildpipeline"
	"rosa/internal/config"
	"rosa/internal/diag"
	"rosa/internal/diagfmt"
	"rosa/internal/lexer"
	"rosa/internal/parser"
	"rosa/internal/sema"
	"rosa/internal/source"
	"rosa/internal/trace"
	"rosa/internal/ui"
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	var showUI bool
	var showTimings bool
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Lex, parse, and resolve one or more Rosa source files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(flags)
			tr := tracerFromConfig(cfg)
			return runCheck(cmd, args, cfg, tr, showUI, showTimings)
		},
	}
	cmd.Flags().BoolVar(&showUI, "ui", false, "render a progress bar while checking")
	cmd.Flags().BoolVar(&showTimings, "timings", false, "print per-stage timings")
	return cmd
}

func runCheck(cmd *cobra.Command, files []string, cfg config.Config, tr trace.Tracer, showUI, showTimings bool) error {
	color := shouldColor(cfg.Output.Color)
	events := make(chan buildpipeline.Event, len(files)*4)
	results := make([]checkResult, len(files))

	var uiDone chan struct{}
	if showUI {
		model := ui.NewProgressModel("checking", files, events)
		program := tea.NewProgram(model)
		uiDone = make(chan struct{})
		go func() {
			defer close(uiDone)
			program.Run()
		}()
	}

	g := new(errgroup.Group)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			results[i] = checkFile(file, tr, events)
			return nil
		})
	}
	_ = g.Wait()
	close(events)
	if showUI {
		<-uiDone
	}

	anyErr := false
	for i, res := range results {
		if res.readErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", files[i], res.readErr)
			anyErr = true
			continue
		}
		if len(res.diags) > 0 {
			diagfmt.Pretty(cmd.OutOrStdout(), res.fset, res.diags, diagfmt.Options{
				Color:   color,
				Context: cfg.Output.Context,
			})
		}
		if res.hasErrors {
			anyErr = true
		}
		if showTimings {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: lex=%s parse=%s sema=%s\n",
				files[i], res.timings.Duration(buildpipeline.StageLex),
				res.timings.Duration(buildpipeline.StageParse), res.timings.Duration(buildpipeline.StageSema))
		}
	}
	if anyErr {
		os.Exit(1)
	}
	return nil
}

type checkResult struct {
	fset      *source.FileSet
	diags     []*diag.Diagnostic
	hasErrors bool
	readErr   error
	timings   buildpipeline.Timings
}

func checkFile(path string, tr trace.Tracer, events chan<- buildpipeline.Event) checkResult {
	emit := func(stage buildpipeline.Stage, status buildpipeline.Status) {
		events <- buildpipeline.Event{File: path, Stage: stage, Status: status}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return checkResult{readErr: err}
	}
	fset := source.NewFileSet()
	f := fset.AddFile(path, data)
	bag := diag.NewBag()
	var timings buildpipeline.Timings

	emit(buildpipeline.StageLex, buildpipeline.StatusWorking)
	t0 := time.Now()
	lexRes := lexer.Lex(f)
	timings.Set(buildpipeline.StageLex, time.Since(t0))
	bag.Extend(lexRes.Diagnostics())

	emit(buildpipeline.StageParse, buildpipeline.StatusWorking)
	t0 = time.Now()
	parseRes := parser.ParseFile(f)
	timings.Set(buildpipeline.StageParse, time.Since(t0))
	bag.Extend(parseRes.Diagnostics())

	if !parseRes.IsErr() {
		emit(buildpipeline.StageSema, buildpipeline.StatusWorking)
		t0 = time.Now()
		astFile, _ := parseRes.Value()
		semaRes := sema.Check(astFile)
		timings.Set(buildpipeline.StageSema, time.Since(t0))
		bag.Extend(semaRes.Diagnostics())
	}

	status := buildpipeline.StatusDone
	if bag.HasErrors() {
		status = buildpipeline.StatusError
	}
	emit(buildpipeline.StageRun, status)

	return checkResult{fset: fset, diags: bag.All(), hasErrors: bag.HasErrors(), timings: timings}
}
