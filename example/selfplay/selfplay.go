package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/disgoorg/json"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jerry930829/ML-pingpong/match"
	"github.com/jerry930829/ML-pingpong/settings"
	"github.com/sirupsen/logrus"
)

// The following program plays a batch of headless matches between scripted
// agents and prints a summary of the results.
func main() {
	path := "settings.toml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:     false,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	if os.Getenv("DEBUG") != "" {
		log.SetLevel(logrus.DebugLevel)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := settings.SaveDefault(path); err != nil {
			log.Fatalf("unable to save default settings: %v", err)
		}
		log.Infof("created default settings at %s", path)
	}
	s, err := settings.Load(path)
	if err != nil {
		log.Fatalf("unable to load settings: %v", err)
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Errorf("unable to initialise sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	sum, err := match.Evaluate(ctx, s, log)
	if err != nil {
		log.Errorf("evaluation stopped early: %v", err)
	}
	log.WithFields(logrus.Fields{
		"completed":   sum.Completed,
		"failed":      sum.Failed,
		"wins_1P":     sum.Wins1P,
		"wins_2P":     sum.Wins2P,
		"win_rate_1P": sum.WinRate1P,
		"rally_mean":  sum.RallyFrames.Mean,
		"elapsed":     time.Since(start).Round(time.Millisecond),
	}).Info("evaluation finished")

	sum.Reports = nil
	enc, err := json.Marshal(sum)
	if err != nil {
		log.Fatalf("unable to encode summary: %v", err)
	}
	fmt.Println(string(enc))
}
