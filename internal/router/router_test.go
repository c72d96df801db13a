package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MuhammedMazinMH/FundFeed/internal/config"
	"github.com/MuhammedMazinMH/FundFeed/internal/logic"
	"github.com/MuhammedMazinMH/FundFeed/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.RoundModel{},
		&model.UserProfileModel{},
		&model.FollowModel{},
		&model.IntroRequestModel{},
	))

	cfg := &config.Config{}
	cfg.Auth.JWTSecret = testSecret

	return Setup(db, nil, cfg), db
}

func signToken(t *testing.T, subject string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": subject}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedRoundViaLogic(t *testing.T, db *gorm.DB) string {
	t.Helper()
	round := model.RoundModel{CompanyName: "Acme", Description: "d", RaisingAmount: 100, Currency: "USD"}
	require.NoError(t, logic.NewRoundLogic(db, nil).CreateRound("founder-1", &round))
	return round.Id
}

// TestIntroRequestEndpointAuth 无身份时拒绝提交
func TestIntroRequestEndpointAuth(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/intro-requests", "", gin.H{
		"round_id": "r1", "startup_name": "Acme",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestIntroRequestEndpointValidation 缺字段返回客户端错误
func TestIntroRequestEndpointValidation(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := signToken(t, "investor-1")

	w := doJSON(r, http.MethodPost, "/api/v1/intro-requests", token, gin.H{
		"startup_name": "Acme",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/v1/intro-requests", token, gin.H{
		"round_id": "r1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestIntroRequestEndpointIdempotent 首次201，重复提交200且返回同一ID
func TestIntroRequestEndpointIdempotent(t *testing.T) {
	r, db := setupTestRouter(t)
	roundId := seedRoundViaLogic(t, db)
	token := signToken(t, "investor-1")

	body := gin.H{"round_id": roundId, "startup_name": "Acme"}

	w := doJSON(r, http.MethodPost, "/api/v1/intro-requests", token, body)
	require.Equal(t, http.StatusCreated, w.Code)

	var first struct {
		Success bool `json:"success"`
		Data    struct {
			RequestId string `json:"request_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.True(t, first.Success)
	require.NotEmpty(t, first.Data.RequestId)

	w = doJSON(r, http.MethodPost, "/api/v1/intro-requests", token, body)
	require.Equal(t, http.StatusOK, w.Code, "duplicate submission is a distinct already-requested success")

	var second struct {
		Success bool `json:"success"`
		Data    struct {
			RequestId string `json:"request_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.True(t, second.Success)
	assert.Equal(t, first.Data.RequestId, second.Data.RequestId)
}

// TestFollowEndpoints 关注、查询、取消关注的完整链路
func TestFollowEndpoints(t *testing.T) {
	r, db := setupTestRouter(t)
	roundId := seedRoundViaLogic(t, db)
	token := signToken(t, "investor-1")

	w := doJSON(r, http.MethodPost, "/api/v1/rounds/"+roundId+"/follow", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/rounds/"+roundId+"/follow", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var state struct {
		Data struct {
			Following bool `json:"following"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.True(t, state.Data.Following)

	w = doJSON(r, http.MethodDelete, "/api/v1/rounds/"+roundId+"/follow", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/rounds/"+roundId+"/follow", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.False(t, state.Data.Following)
}

// TestTrendingEndpoint 发现页无需登录
func TestTrendingEndpoint(t *testing.T) {
	r, db := setupTestRouter(t)
	seedRoundViaLogic(t, db)

	w := doJSON(r, http.MethodGet, "/api/v1/rounds?limit=10", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Rounds []struct {
				Id            string `json:"id"`
				CompanyName   string `json:"companyName"`
				FollowerCount int64  `json:"followerCount"`
			} `json:"rounds"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data.Rounds, 1)
	assert.Equal(t, "Acme", resp.Data.Rounds[0].CompanyName)
}
