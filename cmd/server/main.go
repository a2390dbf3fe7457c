package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"

	"golf-match-api/internal/auth"
	"golf-match-api/internal/config"
	"golf-match-api/internal/engine"
	gweb "golf-match-api/internal/grpcweb"
	"golf-match-api/internal/handler"
	"golf-match-api/internal/httpapi"
	"golf-match-api/internal/media"
	"golf-match-api/internal/middleware"
	"golf-match-api/internal/store"
	"golf-match-api/internal/store/memory"
	"golf-match-api/internal/store/postgres"
	"golf-match-api/internal/wire"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	ctx := context.Background()

	st, closeStore := openStore(ctx, cfg)
	defer closeStore()

	if n, err := store.SeedVenues(ctx, st); err != nil {
		log.Fatalf("seed venues: %v", err)
	} else if n > 0 {
		log.Printf("seeded %d venues", n)
	}

	eng := engine.New(st)
	sessions := auth.NewSessions(st, cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	h := handler.New(eng, sessions)

	// grpc server
	rl := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer rl.Stop()
	srv := grpc.NewServer(
		grpc.ForceServerCodec(wire.Codec{}),
		grpc.ChainUnaryInterceptor(
			middleware.RateLimit(rl),
			middleware.Auth(sessions),
		),
	)
	wire.RegisterMatchServiceServer(srv, h)

	// start grpc on TCP
	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	go func() {
		log.Printf("grpc on :%s", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			log.Printf("grpc: %v", err)
		}
	}()

	// grpc-web bridge -> forwards browser requests to grpc on localhost
	bridge, err := gweb.New("localhost:" + cfg.GRPCPort)
	if err != nil {
		log.Fatalf("bridge: %v", err)
	}
	defer bridge.Close()

	opts := httpapi.Options{
		Limiter:     rl,
		CORSOrigins: cfg.CORSOrigins,
		GRPCWeb:     bridge.Handler(),
	}
	if cfg.PhotosEnabled() {
		photos, err := media.New(ctx, cfg.AWSRegion, cfg.S3Bucket)
		if err != nil {
			log.Fatalf("photos: %v", err)
		}
		opts.Photos = photos
		log.Printf("photo uploads to s3://%s", cfg.S3Bucket)
	}

	httpSrv := &http.Server{
		Addr:              ":" + cfg.WebPort,
		Handler:           httpapi.New(eng, sessions, opts).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("http + grpc-web on :%s", cfg.WebPort)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("http: %v", err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	srv.GracefulStop()
}

func openStore(ctx context.Context, cfg config.Config) (store.Store, func()) {
	if cfg.Store == config.StoreMemory {
		log.Println("using in-memory store")
		return memory.New(), func() {}
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("db ping: %v", err)
	}
	log.Println("connected to postgres")

	st := postgres.New(pool)
	if err := st.Migrate(ctx, cfg.Migrations); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Println("migration applied")
	return st, pool.Close
}
