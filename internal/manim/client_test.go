package manim

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/code/generation", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req CodeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "draw a circle", req.Prompt)
		assert.Equal(t, "gpt-4o", req.Model)

		w.Write([]byte(`{"code":"print(1)"}`)) //nolint:errcheck
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", srv.Client())
	resp, err := client.GenerateCode(context.Background(), CodeRequest{Prompt: "draw a circle", Model: "gpt-4o"})

	require.NoError(t, err)
	assert.Equal(t, "print(1)", resp.Code)
}

func TestRenderVideo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/video/rendering", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "GenScene.py", body["file_name"])
		assert.Equal(t, "GenScene", body["file_class"])
		assert.Equal(t, "GenScene", body["project_name"])
		assert.EqualValues(t, 585400, body["iteration"])

		w.Write([]byte(`{"video_url":"https://x/y.mp4"}`)) //nolint:errcheck
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	resp, err := client.RenderVideo(context.Background(), RenderRequest{
		Code:        "print(1)",
		FileName:    "GenScene.py",
		FileClass:   "GenScene",
		Iteration:   585400,
		ProjectName: "GenScene",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://x/y.mp4", resp.VideoURL)
}

func TestPost_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	_, err := client.GenerateCode(context.Background(), CodeRequest{Prompt: "p"})

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Equal(t, "/code/generation", statusErr.Endpoint)
	assert.Equal(t, "model overloaded", statusErr.Body)
}

func TestPost_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`not json`)) //nolint:errcheck
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	_, err := client.RenderVideo(context.Background(), RenderRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "/video/rendering", decodeErr.Endpoint)
}

func TestRenderVideo_WrongFieldType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"video_url":42}`)) //nolint:errcheck
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.Client()).RenderVideo(context.Background(), RenderRequest{})

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
}

func TestPost_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`)) //nolint:errcheck
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL, srv.Client())
	_, err := client.GenerateCode(ctx, CodeRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
