package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"infinityqr-go/internal/model"
)

// QRCodeUKConfig configures the primary, authenticated QR service. The
// service's published endpoint path has shifted between versions, so a list
// of candidates is probed in order.
type QRCodeUKConfig struct {
	BaseURL   string
	APIKey    string
	Endpoints []string // e.g. /api/v1/qrcode, /api/qrcode, /api/create, /api/generate
}

type QRCodeUK struct {
	cfg    QRCodeUKConfig
	client *http.Client
}

func NewQRCodeUK(cfg QRCodeUKConfig, client *http.Client) *QRCodeUK {
	if client == nil {
		client = http.DefaultClient
	}
	return &QRCodeUK{cfg: cfg, client: client}
}

func (q *QRCodeUK) Name() string { return "qrcodeuk" }

type qrcodeUKRequest struct {
	Data            string `json:"data"`
	Size            int    `json:"size"`
	Format          string `json:"format"`
	ErrorCorrection string `json:"error_correction"`
	Margin          int    `json:"margin"`
}

// imageURLFields are the response keys observed across endpoint versions.
var imageURLFields = []string{"qr_code_url", "qrCodeUrl", "url", "image", "imageUrl"}

func (q *QRCodeUK) Generate(ctx context.Context, url string, opts model.QROptions) (*model.QRCodeRecord, error) {
	body, err := json.Marshal(qrcodeUKRequest{
		Data:            url,
		Size:            opts.Size,
		Format:          opts.Format,
		ErrorCorrection: "M",
		Margin:          opts.Margin,
	})
	if err != nil {
		return nil, newError(q.Name(), ReasonBadBody, 0, err)
	}

	var lastErr *Error
	for _, endpoint := range q.cfg.Endpoints {
		imageURL, attemptErr := q.tryEndpoint(ctx, endpoint, body)
		if attemptErr != nil {
			zap.L().Debug("QR endpoint attempt failed",
				zap.String("endpoint", endpoint),
				zap.Error(attemptErr))
			lastErr = attemptErr
			continue
		}
		return &model.QRCodeRecord{
			ID:        newRecordID(),
			URL:       url,
			ImageURL:  imageURL,
			Size:      opts.Size,
			Format:    opts.Format,
			CreatedAt: nowISO(),
			Downloads: 0,
		}, nil
	}

	if lastErr == nil {
		lastErr = newError(q.Name(), ReasonBadStatus, 0, nil)
	}
	return nil, lastErr
}

func (q *QRCodeUK) tryEndpoint(ctx context.Context, endpoint string, body []byte) (string, *Error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, q.cfg.BaseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return "", newError(q.Name(), ReasonNetwork, 0, err)
	}
	req.Header.Set("Authorization", "Bearer "+q.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := q.client.Do(req)
	if err != nil {
		return "", newError(q.Name(), ReasonNetwork, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", newError(q.Name(), ReasonBadStatus, resp.StatusCode, nil)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", newError(q.Name(), ReasonBadBody, resp.StatusCode, err)
	}
	for _, field := range imageURLFields {
		if v, ok := payload[field].(string); ok && v != "" {
			return v, nil
		}
	}
	return "", newError(q.Name(), ReasonBadBody, resp.StatusCode, nil)
}
