package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	httpadapter "svw.info/flowfinder/internal/adapters/http"
	"svw.info/flowfinder/internal/catalog"
	"svw.info/flowfinder/internal/decoy"
	"svw.info/flowfinder/internal/generator"
	"svw.info/flowfinder/internal/groups"
	"svw.info/flowfinder/internal/selector"
	"svw.info/flowfinder/internal/usecase"
	"svw.info/flowfinder/internal/verifier"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration per request.
func requestLogger(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sw.status),
			zap.Int("bytes", sw.bytes),
			zap.Duration("dur", time.Since(start).Round(time.Millisecond)),
		)
	})
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	catalogPath := flag.String("catalog", "", "YAML catalog overriding the embedded dataset")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	cfg := zap.NewProductionConfig()
	switch strings.ToLower(*levelStr) {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	var cat *catalog.Catalog
	if *catalogPath != "" {
		cat, err = catalog.LoadFile(*catalogPath)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		logger.Fatal("catalog build failed", zap.Error(err))
	}

	// Wire providers -> use cases -> HTTP adapter.
	gen := generator.New(selector.New(cat), groups.New(), decoy.New())
	uc := usecase.NewService(gen, verifier.New(), cat)
	h := httpadapter.New(uc)

	r := mux.NewRouter()
	h.Register(r)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           requestLogger(logger, r),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", zap.String("addr", *addr), zap.Int("patterns", cat.Len()))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}
}
