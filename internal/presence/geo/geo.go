// Package geo resolves client IP addresses to a coarse country and city for
// audit records.
package geo

import (
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
)

// Place is the result of a lookup. Zero value when nothing is known.
type Place struct {
	Country string // ISO 3166-1 alpha-2
	City    string
}

// Resolver looks up an IP address. Implementations never fail the caller's
// operation; an unknown or private address yields an empty Place.
type Resolver interface {
	Lookup(ip string) Place
}

// Nop resolves nothing.
type Nop struct{}

func (Nop) Lookup(string) Place { return Place{} }

// CityDB resolves against a MaxMind GeoIP2/GeoLite2 City database.
type CityDB struct {
	reader *geoip2.Reader
}

// OpenCityDB opens the .mmdb file at path.
func OpenCityDB(path string) (*CityDB, error) {
	r, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open geoip city db: %w", err)
	}
	return &CityDB{reader: r}, nil
}

func (c *CityDB) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

func (c *CityDB) Lookup(ip string) Place {
	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() {
		return Place{}
	}

	record, err := c.reader.City(parsed)
	if err != nil {
		return Place{}
	}
	return Place{
		Country: record.Country.IsoCode,
		City:    record.City.Names["en"],
	}
}
