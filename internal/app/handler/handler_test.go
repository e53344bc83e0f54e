package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artisan-backend/internal/app/config"
	"artisan-backend/internal/app/configurator"
	"artisan-backend/internal/app/ds"
	"artisan-backend/internal/app/dto"
	"artisan-backend/internal/app/fixtures"
	"artisan-backend/internal/app/middleware"
	"artisan-backend/internal/app/repository"
	"artisan-backend/internal/app/validation"
	"artisan-backend/internal/app/wizard"
)

// fakeArchive - архив в памяти
type fakeArchive struct {
	mu      sync.Mutex
	objects map[string]any
}

func (a *fakeArchive) PutJSON(_ context.Context, name string, v any) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.objects[name] = v
	return nil
}

func (a *fakeArchive) GetFileURL(_ context.Context, name string) (string, error) {
	return "http://minio.local/" + name, nil
}

type testServer struct {
	router  *gin.Engine
	handler *Handler
	archive *fakeArchive
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.Register())

	bundle, err := fixtures.Load(context.Background(), fixtures.Embedded())
	require.NoError(t, err)

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Token:         "secret",
			ExpiresIn:     time.Hour,
			SigningMethod: jwt.SigningMethodHS256,
		},
		Admin: config.AdminConfig{APIKey: "admin-key"},
	}
	archive := &fakeArchive{objects: map[string]any{}}

	h := NewHandler(
		cfg,
		bundle,
		repository.NewMemoryStore[ds.Artisan]("artisan"),
		repository.NewMemoryStore[ds.Submission]("submission"),
		wizard.NewManager(wizard.NewMemoryStateStore()),
		middleware.NewAuthMiddleware(middleware.NewMemoryBlacklist(), cfg),
		archive,
	)

	r := gin.New()
	h.RegisterRoutes(r)
	return &testServer{router: r, handler: h, archive: archive}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func onboardBody() map[string]any {
	return map[string]any{
		"type":       "individual",
		"legal_name": "Ravi Kumar",
		"industry":   "Leather",
		"contact": map[string]any{
			"email":  "ravi@example.com",
			"mobile": "9876543210",
		},
		"registration": map[string]any{
			"udyam_registered":    true,
			"registration_number": "UDYAM-UP-01-0000001",
		},
		"banking": map[string]any{
			"bank_name":      "State Bank",
			"account_number": "123456789012",
			"ifsc":           "SBIN0001234",
		},
	}
}

func (s *testServer) onboard(t *testing.T) dto.OnboardResponse {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/onboard", "", onboardBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[dto.OnboardResponse](t, w)
}

func TestPing(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestGetProducts(t *testing.T) {
	s := newTestServer(t)

	resp := decode[dto.ProductListResponse](t, s.do(t, http.MethodGet, "/api/products?industry=Leather", "", nil))
	require.Equal(t, 3, resp.Total)
	assert.Equal(t, "Leather Shoes", resp.Products[0].Name)

	all := decode[dto.ProductListResponse](t, s.do(t, http.MethodGet, "/api/products", "", nil))
	assert.Equal(t, 6, all.Total)
}

func TestGetProduct(t *testing.T) {
	s := newTestServer(t)

	resp := decode[dto.ProductResponse](t, s.do(t, http.MethodGet, "/api/products/Leather?product=Leather%20Bags", "", nil))
	assert.Equal(t, "Leather Bags", resp.Product.Name)

	// товар другой отрасли не отдаётся, возвращается первый товар отрасли
	resp = decode[dto.ProductResponse](t, s.do(t, http.MethodGet, "/api/products/Carpets?product=Leather%20Shoes", "", nil))
	assert.Equal(t, "Bhadohi Carpets", resp.Product.Name)

	w := s.do(t, http.MethodGet, "/api/products/Glass", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConfigureProduct(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/products/Leather/configure", "", map[string]any{
		"product": "Leather Shoes",
		"tier":    "standard",
		"values": map[string]any{
			"shoe_type":       "Oxford",
			"leather_grade":   "Full Grain",
			"size_range_min":  "6",
			"size_range_max":  11,
			"custom_branding": "true",
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[dto.ConfigureResponse](t, w)

	assert.False(t, resp.Valid)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "brand_name", resp.Errors[0].FieldID)
	assert.Equal(t, true, resp.Values["custom_branding"])

	visible := make([]string, 0, len(resp.VisibleFields))
	for _, f := range resp.VisibleFields {
		visible = append(visible, f.FieldID)
	}
	assert.Contains(t, visible, "brand_name")
	assert.NotContains(t, visible, "stitching_type")
}

func TestConfigureProduct_TierFromMarket(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/products/Leather/configure", "", map[string]any{
		"product": "Leather Shoes",
		"market":  "EU",
		"values": map[string]any{
			"shoe_type":      "Boot",
			"leather_grade":  "Top Grain",
			"size_range_min": 5,
			"size_range_max": 10,
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[dto.ConfigureResponse](t, w)

	assert.True(t, resp.Valid)
	assert.Equal(t, "premium", string(resp.Tier))
	assert.Empty(t, resp.Errors)

	found := false
	for _, f := range resp.VisibleFields {
		found = found || f.FieldID == "stitching_type"
	}
	assert.True(t, found)
}

func carpetValues() map[string]any {
	return map[string]any{
		"material":       "Wool",
		"length_ft":      8,
		"width_ft":       5,
		"dominant_color": "#8b0000",
	}
}

func fieldIDs(fields []configurator.Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.FieldID)
	}
	return out
}

func TestConfigureProduct_IndustryConditionFromServer(t *testing.T) {
	s := newTestServer(t)

	for name, values := range map[string]map[string]any{
		"industry omitted": carpetValues(),
		// отрасль из формы не должна скрывать поле
		"industry spoofed": func() map[string]any {
			v := carpetValues()
			v["industry"] = "Leather"
			return v
		}(),
	} {
		t.Run(name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/api/products/Carpets/configure", "", map[string]any{
				"product": "Bhadohi Carpets",
				"tier":    "standard",
				"values":  values,
			})
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			resp := decode[dto.ConfigureResponse](t, w)

			assert.False(t, resp.Valid)
			assert.Contains(t, fieldIDs(resp.VisibleFields), "weave_type")
			assert.Equal(t, []configurator.FieldError{
				{FieldID: "weave_type", Message: "Weave Type is required"},
			}, resp.Errors)
		})
	}

	values := carpetValues()
	values["weave_type"] = "Hand-knotted"
	w := s.do(t, http.MethodPost, "/api/products/Carpets/configure", "", map[string]any{
		"product": "Bhadohi Carpets",
		"tier":    "standard",
		"values":  values,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, decode[dto.ConfigureResponse](t, w).Valid)
}

func TestProductIntelligence(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/product-intelligence?industry=Leather", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[dto.IntelligenceResponse](t, w)
	assert.Equal(t, "USA", resp.Intelligence.Market)
	require.Len(t, resp.AllMarkets, 4)
	assert.Equal(t, "EU", resp.AllMarkets[1].Market)

	w = s.do(t, http.MethodGet, "/api/product-intelligence?industry=Leather&market=EU", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp = decode[dto.IntelligenceResponse](t, w)
	assert.Empty(t, resp.AllMarkets)
	require.NotNil(t, resp.Intelligence.AdjustedPrice)
	// RODTEP 4% + EPCH_MDA 2.5%, GI_PREMIUM не применима
	assert.InDelta(t, 4153.5, *resp.Intelligence.AdjustedPrice, 0.001)
}

func TestProductIntelligence_Errors(t *testing.T) {
	s := newTestServer(t)

	cases := []struct {
		path   string
		status int
	}{
		{"/api/product-intelligence", http.StatusBadRequest},
		{"/api/product-intelligence?industry=Glass", http.StatusBadRequest},
		{"/api/product-intelligence?industry=Leather&market=XX", http.StatusNotFound},
		{"/api/product-intelligence?industry=Handloom", http.StatusNotFound},
		{"/api/product-intelligence?industry=Leather&artisan_id=artisan-missing", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		w := s.do(t, http.MethodGet, tc.path, "", nil)
		assert.Equal(t, tc.status, w.Code, tc.path)
		assert.False(t, decode[dto.ErrorResponse](t, w).Success, tc.path)
	}
}

func TestProductIntelligence_ArtisanEligibility(t *testing.T) {
	s := newTestServer(t)
	onboarded := s.onboard(t)

	path := "/api/product-intelligence?industry=Leather&market=EU&artisan_id=" + onboarded.ArtisanID

	// только udyam: RODTEP требует налоговой регистрации
	w := s.do(t, http.MethodGet, path, onboarded.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[dto.IntelligenceResponse](t, w)

	applicable := map[string]bool{}
	for _, sc := range resp.Intelligence.Phase2Schemes {
		applicable[sc.SchemeKey] = sc.Applicable
	}
	assert.False(t, applicable["RODTEP"])
	assert.True(t, applicable["EPCH_MDA"])
	assert.InDelta(t, 3997.5, *resp.Intelligence.AdjustedPrice, 0.001)
}

func TestProductIntelligence_ArtisanRequiresOwner(t *testing.T) {
	s := newTestServer(t)
	onboarded := s.onboard(t)
	other := s.onboard(t)
	path := "/api/product-intelligence?industry=Leather&market=EU&artisan_id=" + onboarded.ArtisanID

	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, path, "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, path, "garbage", nil).Code)
	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, path, other.Token, nil).Code)

	w := s.do(t, http.MethodPost, "/api/auth/admin", "", map[string]any{"api_key": "admin-key"})
	require.Equal(t, http.StatusOK, w.Code)
	admin := decode[dto.TokenResponse](t, w).Token

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, path, admin, nil).Code)
	w = s.do(t, http.MethodGet, "/api/product-intelligence?industry=Leather&artisan_id=artisan-missing", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// без artisan_id токен не нужен
	w = s.do(t, http.MethodGet, "/api/product-intelligence?industry=Leather&market=EU", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProductInsights(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/product-insights/Leather?product=Leather%20Bags", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[dto.InsightsResponse](t, w).ProductFallback)

	w = s.do(t, http.MethodGet, "/api/product-insights/Carpets?product=Persian%20Carpets", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[dto.InsightsResponse](t, w).ProductFallback)

	w = s.do(t, http.MethodGet, "/api/product-insights/Glass", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSchemes(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/schemes/phase1?udyam_registered=true", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.SchemeListResponse](t, w)
	require.Len(t, resp.Schemes, 4)
	applicable := map[string]bool{}
	for _, sc := range resp.Schemes {
		applicable[sc.SchemeKey] = sc.Applicable
	}
	assert.True(t, applicable["MSME"])
	assert.True(t, applicable["UDYAM"])
	assert.False(t, applicable["GST_EXPORT"])
	assert.False(t, applicable["ARTISAN_CARD"])

	w = s.do(t, http.MethodGet, "/api/schemes/phase1?gst_registered=maybe", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/schemes/phase2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[dto.SchemeListResponse](t, w).Schemes, 4)
}

func TestOnboard(t *testing.T) {
	s := newTestServer(t)
	resp := s.onboard(t)

	assert.True(t, resp.Success)
	assert.Contains(t, resp.ArtisanID, "artisan-")
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, ds.StatusPending, resp.Artisan.OnboardingStatus)
	assert.Equal(t, "medium", resp.Artisan.SkillLevel)
	require.Len(t, resp.Phase1Schemes, 4)
	assert.True(t, resp.Phase1Schemes[0].Applicable)

	// мастер уже на шаге профиля
	w := s.do(t, http.MethodGet, "/api/wizard", resp.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	st := decode[dto.WizardResponse](t, w)
	assert.Equal(t, wizard.StepProfile, st.State.Step)
	assert.Equal(t, "Leather", st.State.Industry)
	assert.Len(t, st.Steps, 9)
}

func TestOnboard_Validation(t *testing.T) {
	s := newTestServer(t)

	body := onboardBody()
	body["contact"] = map[string]any{"email": "ravi@example.com", "mobile": "12345"}
	w := s.do(t, http.MethodPost, "/api/onboard", "", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[dto.ErrorResponse](t, w)
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "mobile", resp.Errors[0].Field)

	body = onboardBody()
	body["banking"] = map[string]any{"bank_name": "", "account_number": "123", "ifsc": "bad"}
	w = s.do(t, http.MethodPost, "/api/onboard", "", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, decode[dto.ErrorResponse](t, w).Errors, 3)
}

func TestArtisans_AccessAndUpdate(t *testing.T) {
	s := newTestServer(t)
	first := s.onboard(t)
	second := s.onboard(t)

	w := s.do(t, http.MethodGet, "/api/artisans/"+first.ArtisanID, first.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/artisans/"+first.ArtisanID, second.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodGet, "/api/artisans", first.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodPut, "/api/artisans/"+first.ArtisanID, first.Token, map[string]any{
		"skill_level":  "high",
		"registration": map[string]any{"udyam_registered": true, "gst_registered": true},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[dto.ArtisanResponse](t, w).Artisan
	assert.Equal(t, "high", updated.SkillLevel)
	assert.Equal(t, "Ravi Kumar", updated.LegalName)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))
	for _, sc := range updated.Phase1Schemes {
		if sc.SchemeKey == "GST_EXPORT" {
			assert.True(t, sc.Applicable)
		}
	}

	w = s.do(t, http.MethodPost, "/api/auth/admin", "", map[string]any{"api_key": "admin-key"})
	require.Equal(t, http.StatusOK, w.Code)
	admin := decode[dto.TokenResponse](t, w).Token

	w = s.do(t, http.MethodGet, "/api/artisans", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decode[dto.ArtisanListResponse](t, w).Total)

	w = s.do(t, http.MethodGet, "/api/artisans/artisan-missing", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWizard_Versioning(t *testing.T) {
	s := newTestServer(t)
	onboarded := s.onboard(t)

	st := decode[dto.WizardResponse](t, s.do(t, http.MethodGet, "/api/wizard", onboarded.Token, nil)).State

	next := *st
	next.Step = wizard.StepSelect
	next.Product = "Leather Belts"
	w := s.do(t, http.MethodPut, "/api/wizard", onboarded.Token, next)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	saved := decode[dto.WizardResponse](t, w).State
	assert.Equal(t, st.Version+1, saved.Version)

	// та же версия из второй вкладки
	w = s.do(t, http.MethodPut, "/api/wizard", onboarded.Token, next)
	assert.Equal(t, http.StatusConflict, w.Code)

	skip := *saved
	skip.Step = wizard.StepPreview
	w = s.do(t, http.MethodPut, "/api/wizard", onboarded.Token, skip)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/wizard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func submitBody() map[string]any {
	return map[string]any{
		"market": "EU",
		"product_data": map[string]any{
			"industry": "Leather",
			"product":  "Leather Belts",
			"values": map[string]any{
				"belt_width_mm": "35",
				"buckle_finish": "Brass",
			},
		},
		"production_inputs": map[string]any{
			"quantity":  50,
			"packaging": "Box",
		},
	}
}

func TestSubmitProduct(t *testing.T) {
	s := newTestServer(t)
	onboarded := s.onboard(t)

	w := s.do(t, http.MethodPost, "/api/submit-product", onboarded.Token, submitBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode[dto.SubmitProductResponse](t, w)

	assert.Equal(t, "Market-ready Product Submitted", resp.Message)
	assert.Contains(t, resp.SubmissionID, "submission-")
	sub := resp.Submission
	assert.Equal(t, ds.StatusSubmitted, sub.Status)
	assert.Equal(t, "EU", sub.Market)
	assert.Equal(t, 35.0, sub.ProductData.Values["belt_width_mm"])
	require.Len(t, sub.SchemesApplied, 1)
	assert.Equal(t, "EPCH_MDA", sub.SchemesApplied[0].SchemeKey)
	assert.Equal(t, 2.5, sub.Pricing.AdjustmentPct)
	require.NotNil(t, sub.Pricing.AdjustedPrice)
	require.NotNil(t, sub.Pricing.SuggestedPrice)
	assert.Greater(t, *sub.Pricing.AdjustedPrice, *sub.Pricing.SuggestedPrice)

	archived := "submissions/" + onboarded.ArtisanID + "/" + resp.SubmissionID + ".json"
	assert.Equal(t, archived, sub.ArchiveObject)
	assert.Contains(t, s.archive.objects, archived)

	st := decode[dto.WizardResponse](t, s.do(t, http.MethodGet, "/api/wizard", onboarded.Token, nil)).State
	assert.Equal(t, wizard.StepSubmitted, st.Step)
	assert.Equal(t, "Leather Belts", st.Product)

	w = s.do(t, http.MethodGet, "/api/submissions/"+resp.SubmissionID, onboarded.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://minio.local/"+archived, decode[dto.SubmissionResponse](t, w).ArchiveURL)

	other := s.onboard(t)
	w = s.do(t, http.MethodGet, "/api/submissions/"+resp.SubmissionID, other.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodGet, "/api/submissions", other.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[dto.SubmissionListResponse](t, w).Total)

	w = s.do(t, http.MethodGet, "/api/submissions", onboarded.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[dto.SubmissionListResponse](t, w).Total)
}

func TestSubmitProduct_Rejected(t *testing.T) {
	s := newTestServer(t)
	onboarded := s.onboard(t)

	body := submitBody()
	body["production_inputs"] = map[string]any{"quantity": 0, "packaging": ""}
	w := s.do(t, http.MethodPost, "/api/submit-product", onboarded.Token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = submitBody()
	body["production_inputs"] = map[string]any{"quantity": 5, "packaging": "Roll"}
	w = s.do(t, http.MethodPost, "/api/submit-product", onboarded.Token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = submitBody()
	body["product_data"] = map[string]any{
		"industry": "Leather",
		"product":  "Leather Belts",
		"values":   map[string]any{"belt_width_mm": 90, "buckle_finish": "Brass"},
	}
	w = s.do(t, http.MethodPost, "/api/submit-product", onboarded.Token, body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[dto.ErrorResponse](t, w)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "belt_width_mm", resp.Errors[0].Field)

	body = submitBody()
	body["product_data"] = map[string]any{"industry": "Leather", "product": "Leather Jackets"}
	w = s.do(t, http.MethodPost, "/api/submit-product", onboarded.Token, body)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodPost, "/api/submit-product", "", submitBody())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmitProduct_CarpetWeaveTypeRequired(t *testing.T) {
	s := newTestServer(t)
	onboarded := s.onboard(t)

	body := map[string]any{
		"market": "EU",
		"product_data": map[string]any{
			"industry": "Carpets",
			"product":  "Bhadohi Carpets",
			"tier":     "standard",
			"values":   carpetValues(),
		},
		"production_inputs": map[string]any{"quantity": 10, "packaging": "Roll"},
	}
	w := s.do(t, http.MethodPost, "/api/submit-product", onboarded.Token, body)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	resp := decode[dto.ErrorResponse](t, w)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "weave_type", resp.Errors[0].Field)
	assert.Equal(t, "Weave Type is required", resp.Error)

	values := carpetValues()
	values["weave_type"] = "Flat Weave"
	body["product_data"].(map[string]any)["values"] = values
	w = s.do(t, http.MethodPost, "/api/submit-product", onboarded.Token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	sub := decode[dto.SubmitProductResponse](t, w).Submission
	assert.Equal(t, "Flat Weave", sub.ProductData.Values["weave_type"])
	assert.Equal(t, "Carpets", sub.ProductData.Industry)
}

func TestAuth_LoginLogout(t *testing.T) {
	s := newTestServer(t)
	onboarded := s.onboard(t)

	w := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"artisan_id": onboarded.ArtisanID,
		"mobile":     "9123456789",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"artisan_id": onboarded.ArtisanID,
		"mobile":     "9876543210",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token := decode[dto.TokenResponse](t, w).Token
	require.NotEmpty(t, token)

	w = s.do(t, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/wizard", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/auth/admin", "", map[string]any{"api_key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
