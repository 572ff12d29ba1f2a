package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/hackgods/clinic-scheduling/internal/bootstrap"
	"github.com/hackgods/clinic-scheduling/internal/command"
	"github.com/hackgods/clinic-scheduling/internal/config"
	"github.com/hackgods/clinic-scheduling/internal/logger"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	// stdout belongs to the console; logs go to stderr
	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat, "clinic-manager")
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("event sink connection failed", zap.Error(err))
	}
	defer app.Close()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	printLines(out, command.Roster(app.Service.Providers()))
	fmt.Fprintln(out, "Rotation list for the technicians.")
	fmt.Fprintln(out, command.Rotation(app.Service.Rotation()))
	fmt.Fprintln(out, "Clinic Manager is running...")
	out.Flush()

	d := command.NewDispatcher(app.Service)
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		if ctx.Err() != nil {
			break
		}
		lines, quit := d.Execute(ctx, sc.Text())
		printLines(out, lines)
		out.Flush()
		if quit {
			return
		}
	}
	if err := sc.Err(); err != nil {
		zl.Error("read commands", zap.Error(err))
	}
}

func printLines(w *bufio.Writer, lines []string) {
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}
