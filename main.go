package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"doc_auto_formatter/config"
	"doc_auto_formatter/generator"
	"doc_auto_formatter/logger"
	"doc_auto_formatter/observability"
	"doc_auto_formatter/render"
	"doc_auto_formatter/server"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config.yaml")
	serve := flag.Bool("serve", false, "start web server")
	addr := flag.String("addr", "", "http listen address when --serve (overrides server.addr)")
	inputPath := flag.String("input", "", "path to a JSON file with the document request (default: built-in example)")
	outPath := flag.String("out", "", "write the rendered document to this file instead of stdout")
	format := flag.String("format", "text", "output format: text, markdown or html")
	provider := flag.String("provider", "", "llm provider for one-shot mode (overrides llm.provider)")
	verbose := flag.Bool("v", false, "enable debug logs")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	log, err := logger.New(logger.Options{
		Mode:       cfg.Log.Mode,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing := observability.InitTracing(ctx, cfg.Tracing, log)
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing shutdown failed", "error", err)
		}
	}()

	if *serve {
		if *addr != "" {
			cfg.Server.Addr = *addr
		}
		if err := runServer(ctx, cfg, log); err != nil {
			log.Error("server stopped", "error", err)
			os.Exit(1)
		}
		return
	}

	if *provider != "" {
		cfg.LLM.Provider = *provider
	}
	if err := runOnce(ctx, cfg, log, *inputPath, *outPath, *format); err != nil {
		log.Error("generation failed", "error", err)
		os.Exit(1)
	}
}

func buildPipeline(settings generator.LLMSettings, log *logger.Logger) (*generator.Pipeline, error) {
	agent, err := generator.NewAgent(generator.NewLLMClient(settings, log), log)
	if err != nil {
		return nil, err
	}
	return generator.NewPipeline(agent, log)
}

func runServer(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	settings := server.ForcedLLMSettings(cfg)
	pipeline, err := buildPipeline(settings, log)
	if err != nil {
		return err
	}
	srv, err := server.New(pipeline, cfg.Server, settings.Provider, log)
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("starting web server", "addr", cfg.Server.Addr, "provider", settings.Provider)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down web server")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func runOnce(ctx context.Context, cfg config.Config, log *logger.Logger, inputPath, outPath, formatName string) error {
	f, err := render.ParseFormat(formatName)
	if err != nil {
		return err
	}
	raw, err := loadInput(inputPath)
	if err != nil {
		return err
	}
	pipeline, err := buildPipeline(generator.LLMSettings{
		Provider:   cfg.LLM.Provider,
		Model:      cfg.LLM.Model,
		APIKey:     cfg.LLM.APIKey,
		BaseURL:    cfg.LLM.BaseURL,
		MaxRetries: cfg.LLM.MaxRetries,
		Timeout:    cfg.LLM.Timeout,
	}, log)
	if err != nil {
		return err
	}

	doc, err := pipeline.Run(ctx, raw)
	if err != nil {
		return err
	}
	if outPath != "" {
		if err := render.SaveToFile(doc, outPath, f); err != nil {
			return err
		}
		log.Info("document saved", "path", outPath, "format", string(f))
		return nil
	}

	out, err := render.Render(doc, f)
	if err != nil {
		return err
	}
	rule := strings.Repeat("=", 80)
	fmt.Printf("\n%s\n생성된 문서:\n%s\n%s\n", rule, rule, out)
	return nil
}

func loadInput(path string) (map[string]any, error) {
	if path == "" {
		return exampleInput(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse input %s: %w", path, err)
	}
	// Accept the HTTP request shape as well.
	if inner, ok := raw["input"].(map[string]any); ok {
		return inner, nil
	}
	return raw, nil
}

func exampleInput() map[string]any {
	return map[string]any{
		"document_type":       "과제 레포트",
		"target_audience":     "대학교",
		"topic":               "인공지능의 미래와 사회적 영향",
		"length":              "A4 3장",
		"writing_style":       "학술적",
		"required_keywords":   []any{"AI", "머신러닝", "사회적 영향"},
		"evaluation_criteria": []any{"논리성", "객관성", "완전성"},
	}
}
