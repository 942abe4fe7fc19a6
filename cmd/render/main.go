// Command render turns a resume JSON file into a PDF, an HTML page or plain text.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"resume-builder/internal/adapter/storage"
	"resume-builder/internal/config"
	"resume-builder/internal/logger"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/spf13/pflag"
)

type options struct {
	in         string
	outDir     string
	format     string
	configPath string
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := pflag.NewFlagSet("render", pflag.ContinueOnError)
	fs.StringVarP(&o.in, "in", "i", "resume.json", "Resume JSON file")
	fs.StringVarP(&o.outDir, "out-dir", "o", "", "Output directory (defaults to storage.dir from config)")
	fs.StringVarP(&o.format, "format", "f", "pdf", "Output format: pdf, html or text")
	fs.StringVarP(&o.configPath, "config", "c", "", "Path to config file")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	switch o.format {
	case "pdf", "html", "text":
	default:
		return o, fmt.Errorf("unknown format %q", o.format)
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return err
	}
	logger.Init(cfg.Logger)

	b, err := os.ReadFile(o.in)
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}
	snap, err := model.DecodeSnapshot(b)
	if err != nil {
		return err
	}

	switch o.format {
	case "text":
		_, err := io.WriteString(stdout, render.Render(snap).String())
		return err
	case "html":
		page, err := usecase.HTML(snap)
		if err != nil {
			return err
		}
		if o.outDir == "" {
			_, err = stdout.Write(page)
			return err
		}
		if err := os.MkdirAll(o.outDir, 0o755); err != nil {
			return err
		}
		path := filepath.Join(o.outDir, "resume.html")
		if err := os.WriteFile(path, page, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s\n", path)
		return nil
	}

	dir := o.outDir
	if dir == "" {
		dir = cfg.Storage.Dir
	}
	renderer := infra.NewChromedpRenderer(infra.ChromedpOptions{
		ExecPath:    cfg.Renderer.ChromePath,
		Timeout:     cfg.Renderer.Timeout(),
		PaperWidth:  cfg.Renderer.PaperWidth,
		PaperHeight: cfg.Renderer.PaperHeight,
	})
	exporter := usecase.NewExporter(renderer, storage.NewFileStorage(dir), usecase.WithAttempts(cfg.Renderer.Attempts))
	res, err := exporter.Export(ctx, snap)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s (%d bytes)\n", res.Location, res.Size)
	return nil
}
