package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/savdo-next/internal/config"
	"github.com/savdo-next/internal/models"
	"github.com/savdo-next/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupHandlerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:api_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	models.DB = db
	if err := models.AutoMigrate(); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	handler := New(provider.NewContainer(&config.Config{}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PATCH("/products/:id", handler.PatchProduct)
	return r, db
}

func patchProduct(t *testing.T, r *gin.Engine, id uint, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPatch,
		"/products/"+strconv.FormatUint(uint64(id), 10), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPatchProductExplicitNullClearsDiscountAndScroll(t *testing.T) {
	r, db := setupHandlerTest(t)

	category := models.Category{Name: "热菜"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	scroll := models.CategoryScroll{Name: "今日推荐"}
	if err := db.Create(&scroll).Error; err != nil {
		t.Fatalf("create scroll failed: %v", err)
	}
	discount := int64(20)
	product := models.Product{
		Name:             "宫保鸡丁",
		Price:            models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
		Discount:         &discount,
		Quantity:         5,
		CategoryID:       category.ID,
		CategoryScrollID: &scroll.ID,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	w := patchProduct(t, r, product.ID, `{"discount": null, "category_scroll": null}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data ProductView `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.Data.Discount != nil {
		t.Fatalf("discount want null got %d", *resp.Data.Discount)
	}
	if resp.Data.ScrollID != nil {
		t.Fatalf("category_scroll want null got %d", *resp.Data.ScrollID)
	}
	if got := resp.Data.FinalPrice.String(); got != "100.00" {
		t.Fatalf("final_price after clearing discount want 100.00 got %s", got)
	}

	var reloaded models.Product
	if err := db.First(&reloaded, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if reloaded.Discount != nil || reloaded.CategoryScrollID != nil {
		t.Fatalf("cleared fields must be persisted as null")
	}
}

func TestPatchProductOmittedFieldsUntouched(t *testing.T) {
	r, db := setupHandlerTest(t)

	category := models.Category{Name: "凉菜"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	discount := int64(10)
	product := models.Product{
		Name:       "拍黄瓜",
		Price:      models.NewMoneyFromDecimal(decimal.NewFromInt(12)),
		Discount:   &discount,
		Quantity:   3,
		CategoryID: category.ID,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	w := patchProduct(t, r, product.ID, `{"name": "秘制拍黄瓜"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data ProductView `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.Data.Name != "秘制拍黄瓜" {
		t.Fatalf("name want 秘制拍黄瓜 got %s", resp.Data.Name)
	}
	if resp.Data.Discount == nil || *resp.Data.Discount != 10 {
		t.Fatalf("omitted discount must keep its value")
	}
}
