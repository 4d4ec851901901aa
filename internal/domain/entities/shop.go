package entities

import (
	"regexp"
	"time"

	"github.com/volatiletech/null/v8"
)

// ShopStatus is the lifecycle state of an installed shop.
type ShopStatus string

const (
	ShopStatusInstalled   ShopStatus = "installed"
	ShopStatusUninstalled ShopStatus = "uninstalled"
)

var shopDomainRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]*\.myshopify\.com$`)

// IsValidShopDomain reports whether domain is a well-formed myshopify domain.
func IsValidShopDomain(domain string) bool {
	return shopDomainRe.MatchString(domain)
}

// Shop represents a merchant store that installed the app. The shop domain
// is the aggregate root key; extension keys and the sender config are
// invalidated transitively when the shop deactivates.
type Shop struct {
	Domain        string    `json:"domain"`
	AccessToken   string    `json:"-"`
	Scope         string    `json:"scope"`
	IsActive      bool      `json:"isActive"`
	InstalledAt   time.Time `json:"installedAt"`
	UninstalledAt null.Time `json:"uninstalledAt,omitempty"`
}

// Status returns the tagged lifecycle state derived from the active flag.
func (s *Shop) Status() ShopStatus {
	if s.IsActive {
		return ShopStatusInstalled
	}
	return ShopStatusUninstalled
}

// Install transitions the shop to the installed state, refreshing the
// credentials and clearing any previous uninstall marker. Used both for
// first installs and reinstalls.
func (s *Shop) Install(accessToken, scope string, now time.Time) {
	s.AccessToken = accessToken
	s.Scope = scope
	s.IsActive = true
	s.InstalledAt = now
	s.UninstalledAt = null.Time{}
}

// Uninstall transitions the shop to the uninstalled state.
func (s *Shop) Uninstall(now time.Time) {
	s.IsActive = false
	s.UninstalledAt = null.TimeFrom(now)
}
