// Package client is a typed Go client for the CreatorTrust API. It unwraps
// the server envelope, carries the bearer token and mirrors it to a
// TokenStore so sessions survive restarts.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
)

// RequestError is returned for every non-2xx response. Message carries the
// server-provided error text when the body had one.
type RequestError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type Client struct {
	baseURL string
	http    *http.Client
	store   TokenStore

	mu    sync.RWMutex
	token string
}

// New builds a client against baseURL and loads any persisted token from the
// store. A nil httpClient falls back to http.DefaultClient.
func New(baseURL string, store TokenStore, httpClient *http.Client) (*Client, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if store == nil {
		store = NewMemoryTokenStore()
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		store:   store,
	}

	token, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load token: %w", err)
	}
	c.token = token
	return c, nil
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken installs the token for subsequent requests and mirrors it to the
// store.
func (c *Client) SetToken(token string) error {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	return c.store.Save(token)
}

func (c *Client) ClearToken() error {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
	return c.store.Clear()
}

// do performs a single attempt, no retries. out may be nil when the caller
// only cares about success.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newRequestError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func newRequestError(status int, body []byte) *RequestError {
	reqErr := &RequestError{StatusCode: status}

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil && env.Error.Message != "" {
		reqErr.Code = env.Error.Code
		reqErr.Message = env.Error.Message
		return reqErr
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		reqErr.Message = text
		return reqErr
	}

	reqErr.Message = http.StatusText(status)
	return reqErr
}

// --- auth ---

func (c *Client) Register(ctx context.Context, in RegisterInput) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, in, &out); err != nil {
		return nil, err
	}
	if err := c.SetToken(out.AccessToken); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	in := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, in, &out); err != nil {
		return nil, err
	}
	if err := c.SetToken(out.AccessToken); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*Identity, error) {
	var out Identity
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- creators ---

func (c *Client) UpsertCreatorProfile(ctx context.Context, in CreatorProfileInput) (*CreatorProfile, error) {
	var out struct {
		Profile *CreatorProfile `json:"profile"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/creators/profile", nil, in, &out); err != nil {
		return nil, err
	}
	return out.Profile, nil
}

func (c *Client) GetCreatorProfile(ctx context.Context, userID int64) (*CreatorProfile, error) {
	var out struct {
		Profile *CreatorProfile `json:"profile"`
	}
	path := "/api/creators/profile/" + strconv.FormatInt(userID, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Profile, nil
}

func (c *Client) SearchCreators(ctx context.Context, f CreatorSearchFilters) ([]CreatorProfile, error) {
	query := url.Values{}
	if f.Niche != "" {
		query.Set("niche", f.Niche)
	}
	if f.MinFollowers > 0 {
		query.Set("min_followers", strconv.Itoa(f.MinFollowers))
	}
	if f.Platform != "" {
		query.Set("platform", f.Platform)
	}
	if f.Location != "" {
		query.Set("location", f.Location)
	}

	var out struct {
		Creators []CreatorProfile `json:"creators"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/creators/search", query, nil, &out); err != nil {
		return nil, err
	}
	return out.Creators, nil
}

func (c *Client) CreatorDashboard(ctx context.Context) (*CreatorDashboard, error) {
	var out CreatorDashboard
	if err := c.do(ctx, http.MethodGet, "/api/creators/dashboard", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- brands ---

func (c *Client) UpsertBrandProfile(ctx context.Context, in BrandProfileInput) (*BrandProfile, error) {
	var out struct {
		Profile *BrandProfile `json:"profile"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/brands/profile", nil, in, &out); err != nil {
		return nil, err
	}
	return out.Profile, nil
}

func (c *Client) GetBrandProfile(ctx context.Context, userID int64) (*BrandProfile, error) {
	var out struct {
		Profile *BrandProfile `json:"profile"`
	}
	path := "/api/brands/profile/" + strconv.FormatInt(userID, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Profile, nil
}

func (c *Client) BrandDashboard(ctx context.Context) (*BrandDashboard, error) {
	var out BrandDashboard
	if err := c.do(ctx, http.MethodGet, "/api/brands/dashboard", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- campaigns ---

func (c *Client) CreateCampaign(ctx context.Context, in CampaignInput) (*Campaign, error) {
	var out struct {
		Campaign *Campaign `json:"campaign"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/campaigns", nil, in, &out); err != nil {
		return nil, err
	}
	return out.Campaign, nil
}

func (c *Client) ListCampaigns(ctx context.Context, f CampaignFilters) ([]Campaign, error) {
	query := url.Values{}
	if f.Status != "" {
		query.Set("status", f.Status)
	}
	if f.Niche != "" {
		query.Set("niche", f.Niche)
	}
	if f.BudgetMin > 0 {
		query.Set("budget_min", strconv.FormatFloat(f.BudgetMin, 'f', -1, 64))
	}
	if f.BudgetMax > 0 {
		query.Set("budget_max", strconv.FormatFloat(f.BudgetMax, 'f', -1, 64))
	}

	var out struct {
		Campaigns []Campaign `json:"campaigns"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/campaigns", query, nil, &out); err != nil {
		return nil, err
	}
	return out.Campaigns, nil
}

func (c *Client) GetCampaign(ctx context.Context, id int64) (*CampaignDetail, error) {
	var out CampaignDetail
	if err := c.do(ctx, http.MethodGet, campaignPath(id, ""), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCampaign(ctx context.Context, id int64, in CampaignUpdateInput) (*Campaign, error) {
	var out struct {
		Campaign *Campaign `json:"campaign"`
	}
	if err := c.do(ctx, http.MethodPut, campaignPath(id, ""), nil, in, &out); err != nil {
		return nil, err
	}
	return out.Campaign, nil
}

func (c *Client) ApplyToCampaign(ctx context.Context, id int64, message string) (*Application, error) {
	var out struct {
		Application *Application `json:"application"`
	}
	in := map[string]string{"message": message}
	if err := c.do(ctx, http.MethodPost, campaignPath(id, "/apply"), nil, in, &out); err != nil {
		return nil, err
	}
	return out.Application, nil
}

func (c *Client) ListApplicants(ctx context.Context, id int64) ([]Applicant, error) {
	var out struct {
		Applicants []Applicant `json:"applicants"`
	}
	if err := c.do(ctx, http.MethodGet, campaignPath(id, "/applicants"), nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Applicants, nil
}

func (c *Client) AssignCampaign(ctx context.Context, id, creatorID int64) (*Campaign, error) {
	var out struct {
		Campaign *Campaign `json:"campaign"`
	}
	in := map[string]int64{"creator_id": creatorID}
	if err := c.do(ctx, http.MethodPost, campaignPath(id, "/assign"), nil, in, &out); err != nil {
		return nil, err
	}
	return out.Campaign, nil
}

func (c *Client) SubmitContent(ctx context.Context, id int64, contentLinks []string, notes string) (*Submission, error) {
	var out struct {
		Submission *Submission `json:"submission"`
	}
	in := map[string]any{"content_links": contentLinks, "notes": notes}
	if err := c.do(ctx, http.MethodPost, campaignPath(id, "/submit"), nil, in, &out); err != nil {
		return nil, err
	}
	return out.Submission, nil
}

func (c *Client) ApproveCampaign(ctx context.Context, id int64) (*Campaign, *Payment, error) {
	var out struct {
		Campaign *Campaign `json:"campaign"`
		Payment  *Payment  `json:"payment"`
	}
	if err := c.do(ctx, http.MethodPost, campaignPath(id, "/approve"), nil, nil, &out); err != nil {
		return nil, nil, err
	}
	return out.Campaign, out.Payment, nil
}

// --- payments ---

func (c *Client) EscrowPayment(ctx context.Context, campaignID int64, amount float64) (*EscrowResult, error) {
	var out EscrowResult
	in := map[string]any{"campaign_id": campaignID}
	if amount > 0 {
		in["amount"] = amount
	}
	if err := c.do(ctx, http.MethodPost, "/api/payments/escrow", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReleasePayment(ctx context.Context, id int64) (*Payment, error) {
	var out struct {
		Payment *Payment `json:"payment"`
	}
	path := "/api/payments/" + strconv.FormatInt(id, 10) + "/release"
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Payment, nil
}

func (c *Client) PaymentHistory(ctx context.Context) (*PaymentHistory, error) {
	var out PaymentHistory
	if err := c.do(ctx, http.MethodGet, "/api/payments/history", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- reviews ---

func (c *Client) CreateReview(ctx context.Context, in ReviewInput) (*Review, error) {
	var out struct {
		Review *Review `json:"review"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/reviews", nil, in, &out); err != nil {
		return nil, err
	}
	return out.Review, nil
}

func (c *Client) ListCreatorReviews(ctx context.Context, creatorID int64) ([]Review, error) {
	var out struct {
		Reviews []Review `json:"reviews"`
	}
	path := "/api/reviews/creator/" + strconv.FormatInt(creatorID, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Reviews, nil
}

// --- analytics ---

func (c *Client) CreatorAnalytics(ctx context.Context) (*CreatorReport, error) {
	var out CreatorReport
	if err := c.do(ctx, http.MethodGet, "/api/analytics/creator", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) BrandAnalytics(ctx context.Context) (*BrandReport, error) {
	var out BrandReport
	if err := c.do(ctx, http.MethodGet, "/api/analytics/brand", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CampaignAnalytics(ctx context.Context, id int64) (*CampaignReport, error) {
	var out CampaignReport
	path := "/api/analytics/campaign/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- notifications ---

func (c *Client) Notifications(ctx context.Context, limit int) ([]Notification, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var out struct {
		Notifications []Notification `json:"notifications"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/notifications", query, nil, &out); err != nil {
		return nil, err
	}
	return out.Notifications, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	path := "/api/notifications/" + strconv.FormatInt(id, 10) + "/read"
	return c.do(ctx, http.MethodPost, path, nil, nil, nil)
}

func campaignPath(id int64, suffix string) string {
	return "/api/campaigns/" + strconv.FormatInt(id, 10) + suffix
}
