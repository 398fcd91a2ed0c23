package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hellofresh/health-go/v5"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/rsalazarq/storefront/internal/config"
)

func NewHealthHandler(cfg *config.Config) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "storefront",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: healthRedis.New(
					healthRedis.Config{
						DSN: cfg.RedisConnect.GetDSN(),
					},
				),
			},
			health.Config{
				Name:      "catalog",
				Timeout:   5 * time.Second,
				SkipOnErr: true,
				Check:     reachableCheck(cfg.Upstreams.ProductsURL),
			},
			health.Config{
				Name:      "payments",
				Timeout:   5 * time.Second,
				SkipOnErr: true,
				Check:     reachableCheck(cfg.Upstreams.PaymentsURL),
			},
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

// reachableCheck probes a backend base URL. Any HTTP answer counts as up; the
// backends return 404 on their roots.
func reachableCheck(baseURL string) func(ctx context.Context) error {
	return func(ctx context.Context) error {

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
		if err != nil {
			return fmt.Errorf("failed to build health probe: %w", err)
		}

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return fmt.Errorf("backend unreachable: %w", err)
		}
		defer resp.Body.Close()

		return nil
	}
}
