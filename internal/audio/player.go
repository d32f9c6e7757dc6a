// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package audio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
)

// Playback errors.
var (
	ErrNoSource    = errors.New("no audio source configured")
	ErrUnavailable = errors.New("audio source unavailable")
	ErrNotAudio    = errors.New("audio source is not audio")
)

// audioTypes lists the local file extensions accepted as a soundtrack.
var audioTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".ogg":  "audio/ogg",
	".oga":  "audio/ogg",
	".opus": "audio/ogg",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".aac":  "audio/aac",
	".flac": "audio/flac",
}

// SourcePlayer plays a single soundtrack. Local sources ("/static/...") are
// looked up in assets; http and https sources are probed with HEAD.
type SourcePlayer struct {
	source string
	assets fs.FS
	client *http.Client
}

// NewSourcePlayer creates a player for source. A nil client uses
// http.DefaultClient.
func NewSourcePlayer(source string, assets fs.FS, client *http.Client) *SourcePlayer {
	if client == nil {
		client = http.DefaultClient
	}
	return &SourcePlayer{source: strings.TrimSpace(source), assets: assets, client: client}
}

// Source returns the configured soundtrack location.
func (p *SourcePlayer) Source() string {
	return p.source
}

// Play checks that the soundtrack can be served.
func (p *SourcePlayer) Play(ctx context.Context) error {
	if p.source == "" {
		return ErrNoSource
	}

	u, err := url.Parse(p.source)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch u.Scheme {
	case "http", "https":
		return p.probe(ctx, u.String())
	case "":
		return p.stat(u.Path)
	default:
		return fmt.Errorf("%w: unsupported scheme %q", ErrUnavailable, u.Scheme)
	}
}

func (p *SourcePlayer) stat(name string) error {
	if p.assets == nil {
		return fmt.Errorf("%w: no local assets", ErrUnavailable)
	}

	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	info, err := fs.Stat(p.assets, name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrUnavailable, name)
	}

	if _, ok := audioTypes[strings.ToLower(path.Ext(name))]; !ok {
		return fmt.Errorf("%w: %s", ErrNotAudio, name)
	}
	return nil
}

func (p *SourcePlayer) probe(ctx context.Context, rawURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if !strings.HasPrefix(mediaType, "audio/") {
		return fmt.Errorf("%w: content type %q", ErrNotAudio, mediaType)
	}
	return nil
}
