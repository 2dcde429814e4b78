package authz

import (
	"net/http"

	"github.com/aussiebroadwan/rollcall/internal/presence/domain"
)

var (
	sa       = domain.RoleSuperAdmin
	ma       = domain.RoleManagerAdmin
	personal = domain.RolePersonal
)

// DefaultConfig is the production rule table.
func DefaultConfig() Config {
	return Config{
		Public:    []string{"/livez", "/readyz", "/swagger", "/v1/session/login"},
		GuestOnly: []string{"/login"},
		Rules: []Rule{
			{Prefix: "/v1/locations", Methods: map[string][]domain.Role{
				http.MethodGet:    {sa, ma},
				http.MethodPost:   {sa},
				http.MethodPatch:  {sa},
				http.MethodDelete: {sa},
			}},
			{Prefix: "/v1/users", Methods: map[string][]domain.Role{
				http.MethodGet:    {sa, ma},
				http.MethodPost:   {sa},
				http.MethodPatch:  {sa},
				http.MethodDelete: {sa},
			}},
			{Prefix: "/v1/access-logs", Methods: map[string][]domain.Role{
				http.MethodGet: {sa, ma},
			}},
			{Prefix: "/v1/timeline", Methods: map[string][]domain.Role{
				http.MethodGet: {sa, ma},
			}},
			{Prefix: "/v1/presence", Methods: map[string][]domain.Role{
				http.MethodGet:  {sa, ma, personal},
				http.MethodPost: {sa, ma, personal},
			}},
		},
	}
}

// MustDefault compiles DefaultConfig, panicking if it is invalid.
func MustDefault() *Table {
	t, err := Compile(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return t
}
