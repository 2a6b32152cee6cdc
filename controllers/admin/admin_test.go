package admincontroller

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/CGDEV2002/Brecho-CataRoupas/middleware"
	"github.com/CGDEV2002/Brecho-CataRoupas/models"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("UPLOADS_DIR", t.TempDir())

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{}, &models.Product{}, &models.ProductImage{},
		&models.CartItem{}, &models.Session{},
	))

	r := gin.New()
	r.Use(middleware.Session(db))
	admin := r.Group("/admin")
	admin.GET("/login", LoginScreen())
	admin.POST("/login", Login(db, PasswordAuthenticator{Password: "admin123"}))
	admin.POST("/logout", Logout(db))
	gated := admin.Group("")
	gated.Use(middleware.RequireAdmin(db))
	gated.GET("/dashboard", Dashboard(db))
	gated.POST("/produtos", SaveProduct(db))
	gated.POST("/produtos/:id", SaveProduct(db))
	gated.POST("/produtos/:id/delete", DeleteProduct(db))
	gated.GET("/produtos/export", ExportProducts(db))
	gated.POST("/categorias", CreateCategory(db))

	return db, r
}

func newSession(t *testing.T, db *gorm.DB, isAdmin bool) string {
	t.Helper()
	key := uuid.NewString()
	require.NoError(t, db.Create(&models.Session{Key: key, IsAdmin: isAdmin}).Error)
	return key
}

func seedCategory(t *testing.T, db *gorm.DB, name, slugValue string) models.Category {
	t.Helper()
	category := models.Category{Name: name, Slug: slugValue}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func seedProduct(t *testing.T, db *gorm.DB, category models.Category, name string) models.Product {
	t.Helper()
	product := models.Product{
		Name:       name,
		Slug:       uuid.NewString(),
		Price:      decimal.RequireFromString("30.00"),
		CategoryID: category.ID,
		Available:  true,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func doForm(r *gin.Engine, method, target, sessionKey string, form url.Values) *httptest.ResponseRecorder {
	body := ""
	if form != nil {
		body = form.Encode()
	}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: sessionKey})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doMultipart(t *testing.T, r *gin.Engine, target, sessionKey string, fields map[string]string, uploads map[string][]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for field, filenames := range uploads {
		for _, filename := range filenames {
			part, err := writer.CreateFormFile(field, filename)
			require.NoError(t, err)
			_, err = part.Write([]byte("fake image bytes"))
			require.NoError(t, err)
		}
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: sessionKey})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGateRedirectsToLoginWithoutMutation(t *testing.T) {
	db, r := setupTest(t)
	anonymous := newSession(t, db, false)

	w := doForm(r, http.MethodPost, "/admin/categorias", anonymous, url.Values{"nome": {"Invasor"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLogin(t *testing.T) {
	db, r := setupTest(t)
	session := newSession(t, db, false)

	w := doForm(r, http.MethodPost, "/admin/login", session, url.Values{"senha": {"errada"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Senha incorreta!")

	var row models.Session
	require.NoError(t, db.First(&row, "key = ?", session).Error)
	assert.False(t, row.IsAdmin)

	w = doForm(r, http.MethodPost, "/admin/login", session, url.Values{"senha": {"admin123"}})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.First(&row, "key = ?", session).Error)
	assert.True(t, row.IsAdmin)

	// The flag is all the gate checks.
	w = doForm(r, http.MethodGet, "/admin/dashboard", session, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doForm(r, http.MethodPost, "/admin/logout", session, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doForm(r, http.MethodGet, "/admin/dashboard", session, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestDashboardShowsEverythingWithCounts(t *testing.T) {
	db, r := setupTest(t)
	admin := newSession(t, db, true)
	category := seedCategory(t, db, "Geral", "geral")
	seedProduct(t, db, category, "Visível")
	hidden := seedProduct(t, db, category, "Escondido")
	require.NoError(t, db.Model(&hidden).Update("available", false).Error)

	w := doForm(r, http.MethodGet, "/admin/dashboard", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Visível")
	assert.Contains(t, w.Body.String(), "Escondido")
	assert.Contains(t, w.Body.String(), `"total_produtos":2`)
	assert.Contains(t, w.Body.String(), `"produtos_disponiveis":1`)
}

func TestCreateProductWithImages(t *testing.T) {
	db, r := setupTest(t)
	admin := newSession(t, db, true)
	category := seedCategory(t, db, "Vestidos", "vestidos")

	w := doMultipart(t, r, "/admin/produtos", admin, map[string]string{
		"nome":      "Vestido de Festa",
		"descricao": "pouquíssimo uso",
		"preco":     "120.00",
		"categoria": fmt.Sprintf("%d", category.ID),
		"tamanho":   "M",
		"condicao":  "usado_como_novo",
	}, map[string][]string{
		"imagem":  {"capa.jpg"},
		"imagens": {"frente.jpg", "costas.jpg"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var product models.Product
	require.NoError(t, db.Preload("Images").First(&product, "name = ?", "Vestido de Festa").Error)
	assert.Equal(t, "vestido-de-festa", product.Slug)
	assert.Contains(t, product.Image, "/uploads/products/")
	assert.Len(t, product.Images, 2)
	for _, image := range product.Images {
		assert.Equal(t, product.ID, image.ProductID)
	}
}

func TestEditProductAppliesImageFormset(t *testing.T) {
	db, r := setupTest(t)
	admin := newSession(t, db, true)
	category := seedCategory(t, db, "Calças", "calcas")
	product := seedProduct(t, db, category, "Calça Cargo")

	keep := models.ProductImage{ProductID: product.ID, Image: "/uploads/products/keep.jpg"}
	drop := models.ProductImage{ProductID: product.ID, Image: "/uploads/products/drop.jpg"}
	require.NoError(t, db.Create(&keep).Error)
	require.NoError(t, db.Create(&drop).Error)

	w := doMultipart(t, r, fmt.Sprintf("/admin/produtos/%d", product.ID), admin, map[string]string{
		"nome":            "Calça Cargo",
		"preco":           "35.00",
		"categoria":       fmt.Sprintf("%d", category.ID),
		"remover_imagens": fmt.Sprintf("%d", drop.ID),
	}, map[string][]string{
		"imagens": {"nova.jpg"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var images []models.ProductImage
	require.NoError(t, db.Where("product_id = ?", product.ID).Find(&images).Error)
	require.Len(t, images, 2)
	for _, image := range images {
		assert.NotEqual(t, drop.ID, image.ID)
	}
}

func TestSaveProductValidation(t *testing.T) {
	db, r := setupTest(t)
	admin := newSession(t, db, true)
	category := seedCategory(t, db, "Geral", "geral")

	// Missing required fields.
	w := doForm(r, http.MethodPost, "/admin/produtos", admin, url.Values{"nome": {"Sem Preço"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Negative price.
	w = doForm(r, http.MethodPost, "/admin/produtos", admin, url.Values{
		"nome": {"Errado"}, "preco": {"-5.00"}, "categoria": {fmt.Sprintf("%d", category.ID)},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown condition.
	w = doForm(r, http.MethodPost, "/admin/produtos", admin, url.Values{
		"nome": {"Errado"}, "preco": {"5.00"}, "categoria": {fmt.Sprintf("%d", category.ID)},
		"condicao": {"rasgado"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteProductRemovesOwnedImages(t *testing.T) {
	db, r := setupTest(t)
	admin := newSession(t, db, true)
	category := seedCategory(t, db, "Geral", "geral")
	product := seedProduct(t, db, category, "Com Galeria")
	require.NoError(t, db.Create(&models.ProductImage{ProductID: product.ID, Image: "/uploads/products/a.jpg"}).Error)
	require.NoError(t, db.Create(&models.ProductImage{ProductID: product.ID, Image: "/uploads/products/b.jpg"}).Error)

	w := doForm(r, http.MethodPost, fmt.Sprintf("/admin/produtos/%d/delete", product.ID), admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	err := db.First(&models.Product{}, product.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var images int64
	require.NoError(t, db.Model(&models.ProductImage{}).Where("product_id = ?", product.ID).Count(&images).Error)
	assert.Zero(t, images)
}

func TestCreateCategoryDerivesSlug(t *testing.T) {
	db, r := setupTest(t)
	admin := newSession(t, db, true)

	w := doForm(r, http.MethodPost, "/admin/categorias", admin, url.Values{"nome": {"Roupas de Inverno"}})
	require.Equal(t, http.StatusCreated, w.Code)

	var category models.Category
	require.NoError(t, db.First(&category, "name = ?", "Roupas de Inverno").Error)
	assert.Equal(t, "roupas-de-inverno", category.Slug)

	// Duplicate name violates the unique column.
	w = doForm(r, http.MethodPost, "/admin/categorias", admin, url.Values{"nome": {"Roupas de Inverno"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportProducts(t *testing.T) {
	db, r := setupTest(t)
	admin := newSession(t, db, true)
	category := seedCategory(t, db, "Geral", "geral")
	seedProduct(t, db, category, "Exportável")

	w := doForm(r, http.MethodGet, "/admin/produtos/export", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "produtos.xlsx")
	assert.NotEmpty(t, w.Body.Bytes())
}
