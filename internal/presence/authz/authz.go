// Package authz decides whether a request may proceed, based on an ordered
// table of path-prefix rules keyed by HTTP method and role.
package authz

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"slices"
	"strings"

	"github.com/aussiebroadwan/rollcall/internal/presence/domain"
)

// Decision is the outcome of evaluating a request against a Table.
type Decision uint8

const (
	Allow Decision = iota
	Unauthenticated
	MethodNotAllowed
	Forbidden
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Unauthenticated:
		return "unauthenticated"
	case MethodNotAllowed:
		return "method_not_allowed"
	case Forbidden:
		return "forbidden"
	case RedirectHome:
		return "redirect_home"
	}
	return fmt.Sprintf("Decision(%d)", uint8(d))
}

// Principal is the authenticated caller. A nil *Principal means anonymous.
type Principal struct {
	UserID string
	Role   domain.Role
}

// Rule grants each listed method to the given roles for every path at or
// below Prefix.
type Rule struct {
	Prefix  string
	Methods map[string][]domain.Role
}

// Config is the uncompiled rule table. Rules are evaluated in order and the
// first match wins.
type Config struct {
	// Public paths skip identity entirely.
	Public []string

	// GuestOnly paths are for anonymous callers; authenticated callers are
	// sent home.
	GuestOnly []string

	Rules []Rule
}

var ErrInvalidConfig = errors.New("authz: invalid config")

type compiledRule struct {
	prefix  string
	methods map[string]map[domain.Role]struct{}
	allow   []string
}

// Table is a compiled, validated Config. It is safe for concurrent use.
type Table struct {
	public []string
	guest  []string
	rules  []compiledRule
}

var knownMethods = []string{
	http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
	http.MethodPatch, http.MethodDelete, http.MethodOptions,
}

// Compile validates cfg and builds a Table. It rejects malformed or
// duplicate prefixes, rules made unreachable by an earlier broader rule,
// unknown methods or roles, and rules nested under a public or guest-only
// prefix.
func Compile(cfg Config) (*Table, error) {
	t := &Table{}
	seen := map[string]string{}

	addPrefix := func(kind, p string) error {
		if err := checkPrefix(p); err != nil {
			return fmt.Errorf("%w: %s prefix %q: %v", ErrInvalidConfig, kind, p, err)
		}
		if prev, ok := seen[p]; ok {
			return fmt.Errorf("%w: duplicate prefix %q (%s and %s)", ErrInvalidConfig, p, prev, kind)
		}
		seen[p] = kind
		return nil
	}

	for _, p := range cfg.GuestOnly {
		if err := addPrefix("guest-only", p); err != nil {
			return nil, err
		}
		t.guest = append(t.guest, p)
	}
	for _, p := range cfg.Public {
		if err := addPrefix("public", p); err != nil {
			return nil, err
		}
		t.public = append(t.public, p)
	}

	for i, r := range cfg.Rules {
		if err := addPrefix("rule", r.Prefix); err != nil {
			return nil, err
		}
		for _, open := range slices.Concat(t.guest, t.public) {
			if matchPrefix(open, r.Prefix) {
				return nil, fmt.Errorf("%w: rule %q is nested under open prefix %q", ErrInvalidConfig, r.Prefix, open)
			}
		}
		for _, prev := range t.rules {
			if matchPrefix(prev.prefix, r.Prefix) {
				return nil, fmt.Errorf("%w: rule %d %q is shadowed by earlier rule %q", ErrInvalidConfig, i, r.Prefix, prev.prefix)
			}
		}

		cr, err := compileRule(r)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %q: %v", ErrInvalidConfig, r.Prefix, err)
		}
		t.rules = append(t.rules, cr)
	}
	return t, nil
}

func compileRule(r Rule) (compiledRule, error) {
	if len(r.Methods) == 0 {
		return compiledRule{}, errors.New("no methods")
	}
	cr := compiledRule{
		prefix:  r.Prefix,
		methods: make(map[string]map[domain.Role]struct{}, len(r.Methods)),
	}
	for m, roles := range r.Methods {
		if !slices.Contains(knownMethods, m) {
			return compiledRule{}, fmt.Errorf("unknown method %q", m)
		}
		if len(roles) == 0 {
			return compiledRule{}, fmt.Errorf("method %s grants no roles", m)
		}
		set := make(map[domain.Role]struct{}, len(roles))
		for _, role := range roles {
			if !role.Valid() {
				return compiledRule{}, fmt.Errorf("unknown role %q", role)
			}
			set[role] = struct{}{}
		}
		cr.methods[m] = set
		cr.allow = append(cr.allow, m)
	}
	if _, ok := cr.methods[http.MethodGet]; ok && !slices.Contains(cr.allow, http.MethodHead) {
		cr.allow = append(cr.allow, http.MethodHead)
	}
	slices.Sort(cr.allow)
	return cr, nil
}

func checkPrefix(p string) error {
	switch {
	case p == "":
		return errors.New("empty")
	case !strings.HasPrefix(p, "/"):
		return errors.New("must start with /")
	case strings.ContainsAny(p, "?#*{} "):
		return errors.New("must be a literal path")
	case p != "/" && path.Clean(p) != p:
		return errors.New("must be clean with no trailing slash")
	}
	return nil
}

// matchPrefix reports whether p is prefix or lies below it, segment-wise.
func matchPrefix(prefix, p string) bool {
	if prefix == "/" {
		return true
	}
	return p == prefix || strings.HasPrefix(p, prefix+"/")
}

func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	return path.Clean("/" + p)
}

// IsPublic reports whether p skips identity.
func (t *Table) IsPublic(p string) bool {
	p = cleanPath(p)
	for _, pub := range t.public {
		if matchPrefix(pub, p) {
			return true
		}
	}
	return false
}

// Evaluate decides the request. Guest-only paths come first, then public
// paths, then the first matching rule. Paths no rule covers only require a
// credential.
func (t *Table) Evaluate(method, urlPath string, p *Principal) Decision {
	urlPath = cleanPath(urlPath)

	for _, g := range t.guest {
		if matchPrefix(g, urlPath) {
			if p != nil {
				return RedirectHome
			}
			return Allow
		}
	}
	if t.IsPublic(urlPath) {
		return Allow
	}

	r, ok := t.match(urlPath)
	if !ok {
		if p == nil {
			return Unauthenticated
		}
		return Allow
	}
	if p == nil {
		return Unauthenticated
	}

	roles, ok := r.methods[method]
	if !ok && method == http.MethodHead {
		roles, ok = r.methods[http.MethodGet]
	}
	if !ok {
		return MethodNotAllowed
	}
	if _, ok := roles[p.Role]; !ok {
		return Forbidden
	}
	return Allow
}

// AllowedMethods lists the methods the governing rule permits for p, for
// an Allow header. Nil when no rule governs p.
func (t *Table) AllowedMethods(p string) []string {
	r, ok := t.match(cleanPath(p))
	if !ok {
		return nil
	}
	return slices.Clone(r.allow)
}

func (t *Table) match(p string) (compiledRule, bool) {
	for _, r := range t.rules {
		if matchPrefix(r.prefix, p) {
			return r, true
		}
	}
	return compiledRule{}, false
}
