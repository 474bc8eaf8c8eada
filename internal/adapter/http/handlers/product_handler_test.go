package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"product_estimator/internal/adapter/http/handlers/mocks"
	"product_estimator/internal/domain/entities"
	"product_estimator/internal/domain/pricing"
	"product_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProductHandler_GetBreakdown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	breakdown := pricing.BuildBreakdown(
		entities.PricedProduct{ProductID: "A", Name: "Oak flooring", PricingMethod: entities.PricingMethodPerArea, MinPrice: 10, MaxPrice: 20},
		[]entities.PricedProduct{{ProductID: "B", Name: "Underlay", PricingMethod: entities.PricingMethodFixed, MinPrice: 15, MaxPrice: 15}},
		20,
	)

	t.Run("invalid area", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewProductHandler(uc)
		uc.EXPECT().DefaultMarkup().Return(10.0).AnyTimes()

		r := gin.New()
		r.GET("/v1/products/:product_id/breakdown", h.GetBreakdown)

		w := performRequest(r, http.MethodGet, "/v1/products/A/breakdown?area=abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-finite query values", func(t *testing.T) {
		for _, query := range []string{"area=Inf", "area=NaN", "area=20&markup=NaN", "area=20&markup=-Inf"} {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIEstimateUseCase(ctrl)
			h := NewProductHandler(uc)
			uc.EXPECT().DefaultMarkup().Return(10.0).AnyTimes()

			r := gin.New()
			r.GET("/v1/products/:product_id/breakdown", h.GetBreakdown)

			w := performRequest(r, http.MethodGet, "/v1/products/A/breakdown?"+query, "")
			if w.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", query, w.Code)
			}
			ctrl.Finish()
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewProductHandler(uc)
		uc.EXPECT().DefaultMarkup().Return(10.0)
		uc.EXPECT().PreviewBreakdown(gomock.Any(), "Z", 20.0).Return(pricing.Breakdown{}, usecase.ErrProductNotFound)

		r := gin.New()
		r.GET("/v1/products/:product_id/breakdown", h.GetBreakdown)

		w := performRequest(r, http.MethodGet, "/v1/products/Z/breakdown?area=20", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("default markup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewProductHandler(uc)
		uc.EXPECT().DefaultMarkup().Return(10.0)
		uc.EXPECT().PreviewBreakdown(gomock.Any(), "A", 20.0).Return(breakdown, nil)

		r := gin.New()
		r.GET("/v1/products/:product_id/breakdown", h.GetBreakdown)

		w := performRequest(r, http.MethodGet, "/v1/products/A/breakdown?area=20", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Entries  []map[string]any `json:"entries"`
			TotalMin float64          `json:"total_min"`
			TotalMax float64          `json:"total_max"`
			Display  struct {
				Min float64 `json:"min"`
				Max float64 `json:"max"`
			} `json:"display"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body.Entries) != 2 || body.TotalMin != 215 || body.TotalMax != 415 {
			t.Fatalf("unexpected breakdown %+v", body)
		}
		if body.Display.Min != 236.5 || body.Display.Max != 456.5 {
			t.Fatalf("unexpected display %+v", body.Display)
		}
	})

	t.Run("markup override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewProductHandler(uc)
		uc.EXPECT().DefaultMarkup().Return(10.0)
		uc.EXPECT().PreviewBreakdown(gomock.Any(), "A", 20.0).Return(breakdown, nil)

		r := gin.New()
		r.GET("/v1/products/:product_id/breakdown", h.GetBreakdown)

		w := performRequest(r, http.MethodGet, "/v1/products/A/breakdown?area=20&markup=0", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Display struct {
				Min float64 `json:"min"`
				Max float64 `json:"max"`
			} `json:"display"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Display.Min != 215 || body.Display.Max != 415 {
			t.Fatalf("unexpected display %+v", body.Display)
		}
	})
}
