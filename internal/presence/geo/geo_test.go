package geo_test

import (
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/rollcall/internal/presence/geo"
	"github.com/stretchr/testify/require"
)

func TestNopResolvesNothing(t *testing.T) {
	var r geo.Resolver = geo.Nop{}
	require.Equal(t, geo.Place{}, r.Lookup("203.0.113.7"))
}

func TestOpenCityDBMissingFile(t *testing.T) {
	_, err := geo.OpenCityDB(filepath.Join(t.TempDir(), "missing.mmdb"))
	require.Error(t, err)
}

func TestCityDBSkipsPrivateAddresses(t *testing.T) {
	// A nil reader is never touched for addresses that cannot be located.
	db := &geo.CityDB{}
	for _, ip := range []string{"", "not-an-ip", "127.0.0.1", "10.1.2.3", "192.168.0.10", "::1", "0.0.0.0"} {
		require.Equal(t, geo.Place{}, db.Lookup(ip), ip)
	}
	require.NoError(t, db.Close())
}
