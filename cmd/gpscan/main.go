package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	maxGoroutines = 10
	flushTimeout  = 2 * time.Second
)

var (
	listFlag = flag.String("l", "", "The path to the list of Guitar Pro files,\nfind . -type f -name \"*.gp\" > gp_list.txt")
	maxFlag  = flag.Int("p", maxGoroutines, "Number of files processed in parallel, must be > 0")
	outFlag  = flag.String("o", "", "Output json file, stdout by default")
)

func readList(r io.Reader) <-chan string {
	out := make(chan string)

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)

	go func() {
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				out <- line
			}
		}
		close(out)
	}()

	return out
}

func sentryReporter() reporter {
	return func(r *result) {
		sentry.WithScope(func(scope *sentry.Scope) {
			scope.SetTag("file", r.name)
			sentry.CaptureException(r.err)
		})
	}
}

func writeMap(name string, m gestureMap) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if name == "" {
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	}
	return os.WriteFile(name, data, 0o644)
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s \n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *listFlag == "" {
		flag.Usage()
		return
	}

	if *maxFlag <= 0 {
		flag.Usage()
		return
	}

	_ = godotenv.Load()

	if os.Getenv("GPSCORE_DEBUG") != "" {
		l, err := zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
		defer l.Sync() //nolint:errcheck
		enableDebugLogging(l)
	}

	var report reporter
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Fatal(err)
		}
		defer sentry.Flush(flushTimeout)
		report = sentryReporter()
	}

	f, err := os.Open(*listFlag)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	paths := readList(f)
	m, failed := newGestureMap(context.Background(), paths, *maxFlag, report)
	if failed > 0 {
		log.Printf("failed to import %d files", failed)
	}

	if err := writeMap(*outFlag, m); err != nil {
		log.Println(err)
	}
}
