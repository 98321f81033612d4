// Command server exposes the stem derivation engine as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/stems?root=<root>&class=<class>
//	GET  /api/classes
//	POST /api/check?class=<class>[&name=<partition>]   body: YAML lexicon
//	GET  /metrics
package main

import (
	"errors"
	"flag"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/cours-de-grec/stems"
)

func newHandler(engine *stems.Engine, logger *zap.Logger, reg *prometheus.Registry, origins []string) http.Handler {
	s := &server{engine: engine, logger: logger}
	mux := s.routes()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	return c.Handler(mux)
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	origins := flag.String("cors-origins", "*", "comma-separated list of allowed CORS origins")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger, err := zap.NewProduction()
	if *debug {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	engine := stems.NewEngine(logger, stems.NewMetrics(reg))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           newHandler(engine, logger, reg, strings.Split(*origins, ",")),
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info("listening", zap.String("addr", *addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
}
