package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"infinityqr-go/internal/model"
)

// QRServerConfig configures the unauthenticated image-URL fallback.
type QRServerConfig struct {
	BaseURL      string // e.g. https://api.qrserver.com/v1/create-qr-code/
	ProbeTimeout time.Duration
}

// QRServer does not return a payload: the constructed URL is itself the
// image. The client verifies the image actually loads within the probe
// timeout before declaring success.
type QRServer struct {
	cfg    QRServerConfig
	client *http.Client
}

const defaultProbeTimeout = 5 * time.Second

func NewQRServer(cfg QRServerConfig, client *http.Client) *QRServer {
	if client == nil {
		client = http.DefaultClient
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = defaultProbeTimeout
	}
	return &QRServer{cfg: cfg, client: client}
}

func (q *QRServer) Name() string { return "qrserver" }

func (q *QRServer) Generate(ctx context.Context, target string, opts model.QROptions) (*model.QRCodeRecord, error) {
	params := url.Values{}
	params.Set("size", fmt.Sprintf("%dx%d", opts.Size, opts.Size))
	params.Set("data", target)
	params.Set("format", opts.Format)
	params.Set("margin", strconv.Itoa(opts.Margin))
	params.Set("qzone", "1")
	params.Set("color", strings.TrimPrefix(opts.DarkColor, "#"))
	params.Set("bgcolor", strings.TrimPrefix(opts.LightColor, "#"))

	imageURL := q.cfg.BaseURL + "?" + params.Encode()

	probeCtx, cancel := context.WithTimeout(ctx, q.cfg.ProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, newError(q.Name(), ReasonNetwork, 0, err)
	}

	resp, err := q.client.Do(req)
	if err != nil {
		return nil, newError(q.Name(), ReasonNetwork, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newError(q.Name(), ReasonBadStatus, resp.StatusCode, nil)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return nil, newError(q.Name(), ReasonBadBody, resp.StatusCode, nil)
	}

	return &model.QRCodeRecord{
		ID:        newRecordID(),
		URL:       target,
		ImageURL:  imageURL,
		Size:      opts.Size,
		Format:    opts.Format,
		CreatedAt: nowISO(),
		Downloads: 0,
	}, nil
}
