package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/afarenziya/smartdeals/config"
	"github.com/afarenziya/smartdeals/internal/adminapi"
	"github.com/afarenziya/smartdeals/internal/app"
	"github.com/afarenziya/smartdeals/internal/webserver"
)

var (
	h        = flag.Bool("h", false, "help usage")
	showVer  = flag.Bool("v", false, "show version")
	conffile = flag.String("c", "smartdeals.yml", "config file")
	initdb   = flag.Bool("initdb", false, "drop and recreate the database schema, then exit")
)

var version = "dev"

func main() {
	flag.Parse()
	if *h {
		flag.Usage()
		return
	}
	if *showVer {
		fmt.Println("smartdealsd", version)
		return
	}

	cfg := config.LoadConfig(*conffile)
	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initdb {
		application.InitDb()
		zap.S().Info("database schema recreated")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ws := webserver.New(cfg)
	adminapi.New(cfg, application.Store(), application.Bus(), application.Mailer()).
		RegisterRoutes(ws.Router())

	application.StartBackgroundJobs(ctx)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ws.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		return ws.Router().Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		zap.S().Errorf("server stopped: %v", err)
		os.Exit(1)
	}
}
