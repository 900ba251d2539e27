package entitlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func paidEntitlement(limit int) *Entitlement {
	return &Entitlement{
		ResumeLimit: limit,
		EndDate:     time.Now().AddDate(0, 0, 30),
	}
}

func TestDecideCreateFreeTier(t *testing.T) {
	// second resume is fine
	d := DecideCreate("user", 1, nil)
	assert.True(t, d.Allowed)
	assert.Equal(t, FreeResumeLimit, d.Limit)
	assert.Equal(t, 1, d.Remaining)

	// third is not
	d = DecideCreate("user", 2, nil)
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
}

func TestDecideCreatePaidTier(t *testing.T) {
	ent := paidEntitlement(10)

	d := DecideCreate("user", 9, ent)
	assert.True(t, d.Allowed)
	assert.Equal(t, 10, d.Limit)

	d = DecideCreate("user", 10, ent)
	assert.False(t, d.Allowed)
}

func TestDecideCreateAdminBypass(t *testing.T) {
	d := DecideCreate("admin", 1000, nil)
	assert.True(t, d.Allowed)
	assert.Equal(t, -1, d.Limit)
}

func TestDecideCreateOverLimitRemainingClamped(t *testing.T) {
	// a user downgraded below their resume count must not see negative
	// remaining quota
	d := DecideCreate("user", 5, paidEntitlement(3))
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
}
