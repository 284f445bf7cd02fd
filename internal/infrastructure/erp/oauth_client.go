package erp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"loja_checkout/internal/domain/entities"
	"loja_checkout/internal/usecase/interfaces"
)

// refreshTokenLifetime is how long the ERP keeps a refresh token valid. The
// token endpoint only reports the access token's expires_in, so the refresh
// window is tracked locally from the moment the pair is issued.
const refreshTokenLifetime = 30 * 24 * time.Hour

// OAuthClient talks to the ERP's OAuth token endpoint with Basic-auth client
// credentials, covering both the initial authorization-code exchange and the
// subsequent refresh grants.

type OAuthClient struct {
	tokenURL     string
	clientID     string
	clientSecret string
	provider     string
	httpClient   *http.Client
}

var _ interfaces.IERPAuthClient = (*OAuthClient)(nil)

func NewOAuthClient(tokenURL, clientID, clientSecret, provider string) *OAuthClient {
	return &OAuthClient{
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		provider:     provider,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
	}
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

func (c *OAuthClient) ExchangeAuthorizationCode(ctx context.Context, code string) (entities.AuthToken, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	return c.requestToken(ctx, form)
}

func (c *OAuthClient) RefreshToken(ctx context.Context, refreshToken string) (entities.AuthToken, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	return c.requestToken(ctx, form)
}

func (c *OAuthClient) requestToken(ctx context.Context, form url.Values) (entities.AuthToken, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return entities.AuthToken{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.clientID, c.clientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[erp][oauth] token request failed grant=%s err=%v", form.Get("grant_type"), err)
		return entities.AuthToken{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[erp][oauth] token endpoint returned status=%d grant=%s", resp.StatusCode, form.Get("grant_type"))
		return entities.AuthToken{}, fmt.Errorf("erp token endpoint returned status %d", resp.StatusCode)
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.AuthToken{}, err
	}
	if body.AccessToken == "" {
		return entities.AuthToken{}, fmt.Errorf("erp token endpoint returned empty access token")
	}

	now := time.Now()
	return entities.AuthToken{
		Provider:         c.provider,
		AccessToken:      body.AccessToken,
		RefreshToken:     body.RefreshToken,
		ExpiresAt:        now.Add(time.Duration(body.ExpiresIn) * time.Second),
		RefreshExpiresAt: now.Add(refreshTokenLifetime),
		IsActive:         true,
	}, nil
}
