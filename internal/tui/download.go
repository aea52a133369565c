package tui

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultVideoName = "animation.mp4"

// saves the video at videoURL into dir and returns the written path
func downloadVideo(ctx context.Context, client *http.Client, videoURL, dir string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, videoURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download failed with status %d", resp.StatusCode)
	}

	target := filepath.Join(dir, videoFileName(videoURL))

	f, err := os.Create(target) //nolint:gosec // G304: name is reduced to a base name
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close() //nolint:errcheck,gosec // already failing
		return "", fmt.Errorf("failed to write video: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write video: %w", err)
	}

	return target, nil
}

// picks a local file name from the URL path
func videoFileName(videoURL string) string {
	u, err := url.Parse(videoURL)
	if err != nil {
		return defaultVideoName
	}

	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return defaultVideoName
	}

	return name
}

// returns a tea.Cmd that downloads the video into the working directory
func (c *GatewayClient) DownloadCmd(videoURL string) tea.Cmd {
	return func() tea.Msg {
		dir, err := os.Getwd()
		if err != nil {
			return DownloadErrorMsg{err: err}
		}

		target, err := downloadVideo(context.Background(), c.httpClient, videoURL, dir)
		if err != nil {
			return DownloadErrorMsg{err: err}
		}

		return DownloadedMsg{path: target}
	}
}
