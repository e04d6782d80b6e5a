package monitor

import (
	"context"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// DatabaseCheck pings the underlying connection.
func DatabaseCheck(db *gorm.DB) CheckFunc {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

// HTTPCheck probes a URL and expects a 2xx. The monitor's timeout
// applies through ctx, so a dead endpoint reports failure instead of
// hanging.
func HTTPCheck(client *http.Client, url string) CheckFunc {
	if client == nil {
		client = http.DefaultClient
	}
	return func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		res, err := client.Do(req)
		if err != nil {
			return err
		}
		defer res.Body.Close()
		if res.StatusCode < 200 || res.StatusCode > 299 {
			return fmt.Errorf("probe %s: status %d", url, res.StatusCode)
		}
		return nil
	}
}
