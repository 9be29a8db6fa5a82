package postgres

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/invoices-dashboard/pkg/config"
	"github.com/jhoicas/invoices-dashboard/pkg/logger"
)

// PoolOptions reintentos de conexión al arrancar.
type PoolOptions struct {
	MaxAttempts   int
	RetryInterval time.Duration
}

// DefaultPoolOptions valores usados por cmd/api.
var DefaultPoolOptions = PoolOptions{MaxAttempts: 10, RetryInterval: 3 * time.Second}

// NewPool crea el pool de conexiones PostgreSQL y verifica con Ping, reintentando
// mientras la base no esté disponible. El pool se inyecta en los repositorios; no hay handle global.
func NewPool(ctx context.Context, cfg config.DBConfig, opts PoolOptions, log *logger.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	// Forzar IPv4 en el dial cuando el host lo tenga: Docker suele no tener IPv6.
	poolConfig.ConnConfig.DialFunc = dialPreferIPv4

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}
	var lastErr error
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		pool, err := connect(ctx, poolConfig)
		if err == nil {
			return pool, nil
		}
		lastErr = err
		log.Warn().Err(err).
			Str("attempt", fmt.Sprintf("#%d / %d", attempt, opts.MaxAttempts)).
			Msg("conexión a PostgreSQL fallida, reintentando")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(opts.RetryInterval):
		}
	}
	return nil, fmt.Errorf("conectar tras %d intentos: %w", opts.MaxAttempts, lastErr)
}

func connect(ctx context.Context, poolConfig *pgxpool.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

func dialPreferIPv4(ctx context.Context, network, addr string) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	ips, err := net.DefaultResolver.LookupIP(ctx, "ip4", host)
	if err != nil || len(ips) == 0 {
		return dialer.DialContext(ctx, network, addr)
	}
	return dialer.DialContext(ctx, "tcp4", net.JoinHostPort(ips[0].String(), port))
}
