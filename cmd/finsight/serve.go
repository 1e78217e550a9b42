package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mwhitney/finsight/internal/calculation"
	"github.com/mwhitney/finsight/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the projection API over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		redisAddr, _ := cmd.Flags().GetString("redis")
		cacheTTL, _ := cmd.Flags().GetDuration("cache-ttl")
		rateLimit, _ := cmd.Flags().GetInt("rate-limit")

		opts := server.DefaultOptions()
		opts.RedisAddr = redisAddr
		if cacheTTL > 0 {
			opts.CacheTTL = cacheTTL
		}
		if rateLimit > 0 {
			opts.RateLimitCapacity = rateLimit
		}

		engine := calculation.NewEngine()
		engine.SetLogger(simpleCLILogger{})

		handlers := server.NewHandlers(engine, server.CacheFromOptions(opts))
		mux, limiter := server.NewMux(handlers, opts)
		defer limiter.Stop()

		srv := &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		go func() {
			log.Printf("INFO: listening on %s", addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("Server failed: %v", err)
			}
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop

		log.Printf("INFO: shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("ERROR: shutdown: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("redis", "", "redis address for the response cache; empty uses the in-process cache")
	serveCmd.Flags().Duration("cache-ttl", 0, "cache entry lifetime")
	serveCmd.Flags().Int("rate-limit", 0, "requests per client per minute")
}
