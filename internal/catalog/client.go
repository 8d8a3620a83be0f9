// SPDX-License-Identifier: MIT

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// fetchJSON issues one GET bound to ctx and decodes the body into out.
// The caller owns the timeout policy through ctx.
func fetchJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("catalog: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("catalog: fetch %s: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("catalog: fetch %s: unexpected status %d", url, res.StatusCode)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("catalog: decode %s: %w", url, err)
	}
	return nil
}
