package entitlement

import (
	"testing"
	"time"

	"coretalents-backend/internal/domain/billing"
	"coretalents-backend/internal/domain/plans"
	"coretalents-backend/internal/domain/users"
	"coretalents-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func entitlementDB(t *testing.T) *gorm.DB {
	return testutil.OpenDB(t,
		&users.User{},
		&plans.Plan{},
		&billing.Subscription{},
	)
}

func seedUserAndPlan(t *testing.T, db *gorm.DB) (users.User, plans.Plan) {
	u := users.User{Name: "Asha", Email: "asha@example.com", Role: "user"}
	require.NoError(t, db.Create(&u).Error)

	p := plans.Plan{Name: "Pro", Price: 499, ResumeLimit: 10, DurationInDays: 30, IsActive: true}
	require.NoError(t, db.Create(&p).Error)

	return u, p
}

func activeSub(u users.User, p plans.Plan, orderID string, start, end time.Time) billing.Subscription {
	pay := "pay_" + orderID
	return billing.Subscription{
		UserID:    u.ID,
		PlanID:    p.ID,
		OrderID:   orderID,
		PaymentID: &pay,
		Amount:    p.Price,
		Status:    billing.StatusActive,
		StartDate: &start,
		EndDate:   &end,
	}
}

func TestResolveNoSubscription(t *testing.T) {
	db := entitlementDB(t)
	u, _ := seedUserAndPlan(t, db)

	ent, err := Resolve(db, u.ID, time.Now())
	require.NoError(t, err)
	assert.Nil(t, ent)
}

func TestResolveActiveSubscription(t *testing.T) {
	db := entitlementDB(t)
	u, p := seedUserAndPlan(t, db)

	now := time.Now()
	sub := activeSub(u, p, "order_live", now.AddDate(0, 0, -5), now.AddDate(0, 0, 25))
	require.NoError(t, db.Create(&sub).Error)

	ent, err := Resolve(db, u.ID, now)
	require.NoError(t, err)
	require.NotNil(t, ent)
	assert.Equal(t, 10, ent.ResumeLimit)
	assert.Equal(t, p.ID, ent.Subscription.PlanID)
	assert.WithinDuration(t, *sub.EndDate, ent.EndDate, time.Second)
}

func TestResolveExpiresOverdueOnRead(t *testing.T) {
	db := entitlementDB(t)
	u, p := seedUserAndPlan(t, db)

	now := time.Now()
	sub := activeSub(u, p, "order_old", now.AddDate(0, 0, -40), now.AddDate(0, 0, -10))
	require.NoError(t, db.Create(&sub).Error)

	ent, err := Resolve(db, u.ID, now)
	require.NoError(t, err)
	assert.Nil(t, ent)

	// the row itself must have been rewritten, not just filtered out
	var stored billing.Subscription
	require.NoError(t, db.First(&stored, sub.ID).Error)
	assert.Equal(t, billing.StatusExpired, stored.Status)

	// and a second read stays stable
	ent, err = Resolve(db, u.ID, now)
	require.NoError(t, err)
	assert.Nil(t, ent)
}

func TestResolvePicksMostRecentActive(t *testing.T) {
	db := entitlementDB(t)
	u, p := seedUserAndPlan(t, db)

	basic := plans.Plan{Name: "Basic", Price: 199, ResumeLimit: 5, DurationInDays: 30, IsActive: true}
	require.NoError(t, db.Create(&basic).Error)

	now := time.Now()
	older := activeSub(u, basic, "order_basic", now.AddDate(0, 0, -20), now.AddDate(0, 0, 10))
	newer := activeSub(u, p, "order_pro", now.AddDate(0, 0, -1), now.AddDate(0, 0, 29))
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	ent, err := Resolve(db, u.ID, now)
	require.NoError(t, err)
	require.NotNil(t, ent)
	assert.Equal(t, "order_pro", ent.Subscription.OrderID)
	assert.Equal(t, 10, ent.ResumeLimit)
}

func TestResolveIgnoresCreatedStatus(t *testing.T) {
	db := entitlementDB(t)
	u, p := seedUserAndPlan(t, db)

	pending := billing.Subscription{
		UserID:  u.ID,
		PlanID:  p.ID,
		OrderID: "order_pending",
		Amount:  p.Price,
		Status:  billing.StatusCreated,
	}
	require.NoError(t, db.Create(&pending).Error)

	ent, err := Resolve(db, u.ID, time.Now())
	require.NoError(t, err)
	assert.Nil(t, ent)
}
