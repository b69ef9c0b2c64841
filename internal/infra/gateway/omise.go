package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"shutterbook/internal/pkg/config"
	"shutterbook/internal/pkg/errs"
	"shutterbook/internal/usecase/commands"
)

var (
	ErrGatewayUnavailable = errs.New("charge gateway unreachable")
	ErrChargeFailed       = errs.New("charge was not paid")
)

// OmiseGateway talks to the Omise REST API. The secret key rides as the
// basic-auth username, and the Idempotency-Key header makes a retried
// charge for the same job/stage a replay instead of a second bill.
type OmiseGateway struct {
	endpoint  string
	secretKey string
	client    *http.Client
	logger    *slog.Logger
}

func NewOmiseGateway(cfg config.OmiseConfig, logger *slog.Logger) commands.ChargeGateway {
	return &OmiseGateway{
		endpoint:  strings.TrimRight(cfg.Endpoint, "/"),
		secretKey: cfg.SecretKey,
		client:    &http.Client{Timeout: cfg.Timeout},
		logger:    logger,
	}
}

type omiseCharge struct {
	Object         string `json:"object"`
	ID             string `json:"id"`
	Paid           bool   `json:"paid"`
	FailureCode    string `json:"failure_code"`
	FailureMessage string `json:"failure_message"`
}

func (g *OmiseGateway) Charge(ctx context.Context, amountSatang int64, currency, cardToken, idempotencyKey string) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountSatang, 10))
	form.Set("currency", currency)
	form.Set("card", cardToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint+"/charges", strings.NewReader(form.Encode()))
	if err != nil {
		return "", errs.Wrap(err, "failed to build charge request")
	}
	req.SetBasicAuth(g.secretKey, "")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Idempotency-Key", idempotencyKey)

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error("charge request failed", "error", err)
		return "", errs.Mark(err, ErrGatewayUnavailable)
	}
	defer resp.Body.Close()

	var charge omiseCharge
	if err := json.NewDecoder(resp.Body).Decode(&charge); err != nil {
		return "", errs.Mark(err, ErrGatewayUnavailable)
	}

	if resp.StatusCode != http.StatusOK || charge.Object != "charge" {
		g.logger.Warn("charge rejected",
			"status_code", resp.StatusCode,
			"failure_code", charge.FailureCode)
		return "", errs.Mark(errs.New(chargeFailureMessage(charge)), ErrChargeFailed)
	}
	if !charge.Paid || charge.FailureCode != "" {
		g.logger.Warn("charge not paid",
			"charge_id", charge.ID,
			"failure_code", charge.FailureCode)
		return "", errs.Mark(errs.New(chargeFailureMessage(charge)), ErrChargeFailed)
	}

	return charge.ID, nil
}

func chargeFailureMessage(c omiseCharge) string {
	if c.FailureMessage != "" {
		return c.FailureMessage
	}
	if c.FailureCode != "" {
		return c.FailureCode
	}
	return "charge declined"
}
