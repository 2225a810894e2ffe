package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDonationStatus_CanTransition(t *testing.T) {
	cases := []struct {
		from    DonationStatus
		to      DonationStatus
		allowed bool
	}{
		{DonationAvailable, DonationRequested, true},
		{DonationAvailable, DonationExpired, true},
		{DonationAvailable, DonationConfirmed, false},
		{DonationAvailable, DonationCompleted, false},
		{DonationRequested, DonationConfirmed, true},
		{DonationRequested, DonationCompleted, false},
		{DonationRequested, DonationExpired, false},
		{DonationRequested, DonationAvailable, false},
		{DonationConfirmed, DonationCompleted, true},
		{DonationConfirmed, DonationRequested, false},
		{DonationCompleted, DonationAvailable, false},
		{DonationCompleted, DonationExpired, false},
		{DonationExpired, DonationRequested, false},
	}

	for _, tc := range cases {
		t.Run(tc.from.String()+"_to_"+tc.to.String(), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to))
		})
	}
}

func TestDonationStatus_Terminal(t *testing.T) {
	assert.True(t, DonationCompleted.IsTerminal())
	assert.True(t, DonationExpired.IsTerminal())
	assert.False(t, DonationAvailable.IsTerminal())
	assert.False(t, DonationRequested.IsTerminal())
	assert.False(t, DonationConfirmed.IsTerminal())
}

func TestDonation_IsExpired(t *testing.T) {
	now := time.Now()
	d := &Donation{ExpiryDate: now.Add(time.Hour)}

	assert.False(t, d.IsExpired(now))
	assert.False(t, d.IsExpired(now.Add(time.Hour))) // boundary: not yet past
	assert.True(t, d.IsExpired(now.Add(time.Hour+time.Second)))
}

func TestDonation_Editable(t *testing.T) {
	d := &Donation{Status: DonationAvailable}
	assert.True(t, d.Editable())

	for _, s := range []DonationStatus{DonationRequested, DonationConfirmed, DonationCompleted, DonationExpired} {
		d.Status = s
		assert.False(t, d.Editable(), "status %s must not be editable", s)
	}
}

func TestDonation_IsOwnedBy(t *testing.T) {
	vendorID := uuid.New()
	d := &Donation{VendorID: vendorID}

	assert.True(t, d.IsOwnedBy(vendorID))
	assert.False(t, d.IsOwnedBy(uuid.New()))
}

func TestUser_Roles(t *testing.T) {
	u := &User{}
	assert.Equal(t, Roles{RoleCustomer}, u.Roles())

	u.VendorProfile = &VendorProfile{}
	assert.True(t, u.HasRole(RoleVendor))
	assert.False(t, u.HasRole(RoleNGO))

	u.NGOProfile = &NGOProfile{}
	assert.True(t, u.HasRole(RoleNGO))
	assert.True(t, u.HasRole(RoleCustomer))
}
