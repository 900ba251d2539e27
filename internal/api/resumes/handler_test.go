package resumes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coretalents-backend/database"
	"coretalents-backend/internal/domain/billing"
	"coretalents-backend/internal/domain/plans"
	"coretalents-backend/internal/domain/resumes"
	"coretalents-backend/internal/domain/users"
	"coretalents-backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupResumeDB(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	database.DB = testutil.OpenDB(t,
		&users.User{},
		&plans.Plan{},
		&billing.Subscription{},
		&resumes.Resume{},
	)
}

func seedUser(t *testing.T, role string) users.User {
	t.Helper()
	u := users.User{Name: "Asha", Email: fmt.Sprintf("asha+%s@example.com", role), Role: role}
	require.NoError(t, database.DB.Create(&u).Error)
	return u
}

func seedActiveSubscription(t *testing.T, u users.User, resumeLimit int) {
	t.Helper()

	p := plans.Plan{Name: "Pro", Price: 499, ResumeLimit: resumeLimit, DurationInDays: 30, IsActive: true}
	require.NoError(t, database.DB.Create(&p).Error)

	now := time.Now()
	end := now.AddDate(0, 0, 30)
	pay := "pay_seed"
	sub := billing.Subscription{
		UserID:    u.ID,
		PlanID:    p.ID,
		OrderID:   "order_seed",
		PaymentID: &pay,
		Amount:    p.Price,
		Status:    billing.StatusActive,
		StartDate: &now,
		EndDate:   &end,
	}
	require.NoError(t, database.DB.Create(&sub).Error)
}

func seedResumes(t *testing.T, u users.User, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		r := resumes.Resume{UserID: u.ID, Title: fmt.Sprintf("Resume %d", i+1), ThemeColor: "#3b82f6"}
		require.NoError(t, database.DB.Create(&r).Error)
	}
}

func postCreateResume(t *testing.T, u users.User, title string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(gin.H{"title": title})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/resume/create", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", u.ID)
	c.Set("role", u.Role)

	CreateResume(c)
	return w
}

func TestCreateResumeFreeTier(t *testing.T) {
	setupResumeDB(t)
	u := seedUser(t, "user")
	seedResumes(t, u, 1)

	// second creation is within the free limit
	w := postCreateResume(t, u, "Second")
	assert.Equal(t, http.StatusCreated, w.Code)

	// third is rejected with the structured discriminator
	w = postCreateResume(t, u, "Third")
	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp struct {
		IsLimitReached bool `json:"isLimitReached"`
		Limit          int  `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsLimitReached)
	assert.Equal(t, 2, resp.Limit)

	var count int64
	database.DB.Model(&resumes.Resume{}).Where("user_id = ?", u.ID).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestCreateResumePaidTier(t *testing.T) {
	setupResumeDB(t)
	u := seedUser(t, "user")
	seedActiveSubscription(t, u, 10)
	seedResumes(t, u, 9)

	w := postCreateResume(t, u, "Tenth")
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postCreateResume(t, u, "Eleventh")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateResumeExpiredSubscriptionFallsBackToFree(t *testing.T) {
	setupResumeDB(t)
	u := seedUser(t, "user")

	p := plans.Plan{Name: "Pro", Price: 499, ResumeLimit: 10, DurationInDays: 30, IsActive: true}
	require.NoError(t, database.DB.Create(&p).Error)

	start := time.Now().AddDate(0, 0, -40)
	end := time.Now().AddDate(0, 0, -10)
	pay := "pay_old"
	sub := billing.Subscription{
		UserID:    u.ID,
		PlanID:    p.ID,
		OrderID:   "order_old",
		PaymentID: &pay,
		Amount:    p.Price,
		Status:    billing.StatusActive,
		StartDate: &start,
		EndDate:   &end,
	}
	require.NoError(t, database.DB.Create(&sub).Error)

	seedResumes(t, u, 2)

	w := postCreateResume(t, u, "Third")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// the stale row was rewritten on the way through
	var stored billing.Subscription
	require.NoError(t, database.DB.First(&stored, sub.ID).Error)
	assert.Equal(t, billing.StatusExpired, stored.Status)
}

func TestCreateResumeAdminBypass(t *testing.T) {
	setupResumeDB(t)
	u := seedUser(t, "admin")
	seedResumes(t, u, 25)

	w := postCreateResume(t, u, "Another")
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateResumeDefaults(t *testing.T) {
	setupResumeDB(t)
	u := seedUser(t, "user")

	w := postCreateResume(t, u, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var created resumes.Resume
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Untitled Resume", created.Title)
	assert.Equal(t, "#3b82f6", created.ThemeColor)
}
