package util

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxFetchBytes caps remote profile-photo downloads; anything larger than
// this is not a photo we want on a card.
const maxFetchBytes = 16 << 20

// GetBytes fetches a URL with a bounded timeout and a bounded read.
func GetBytes(url string) ([]byte, error) {
	client := http.Client{Timeout: 12 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
}
