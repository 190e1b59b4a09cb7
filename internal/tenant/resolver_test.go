package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Run("returns first label for subdomain hosts", func(t *testing.T) {
		assert.Equal(t, "shop1", Resolve("shop1.example.com"))
		assert.Equal(t, "modern", Resolve("modern.shops.example.co.uk"))
		assert.Equal(t, "retro", Resolve("retro.example.com:3000"))
	})

	t.Run("falls back for hosts with fewer than three labels", func(t *testing.T) {
		assert.Equal(t, DefaultTenant, Resolve("example.com"))
		assert.Equal(t, DefaultTenant, Resolve("example"))
		assert.Equal(t, DefaultTenant, Resolve(""))
	})

	t.Run("falls back for loopback hosts", func(t *testing.T) {
		assert.Equal(t, DefaultTenant, Resolve("localhost"))
		assert.Equal(t, DefaultTenant, Resolve("localhost:3000"))
		assert.Equal(t, DefaultTenant, Resolve("127.0.0.1"))
		assert.Equal(t, DefaultTenant, Resolve("127.0.0.1:8080"))
		assert.Equal(t, DefaultTenant, Resolve("0.0.0.0"))
	})

	t.Run("falls back for bare IP addresses", func(t *testing.T) {
		assert.Equal(t, DefaultTenant, Resolve("192.168.1.10"))
		assert.Equal(t, DefaultTenant, Resolve("10.0.0.1:8080"))
	})

	t.Run("is idempotent", func(t *testing.T) {
		first := Resolve("shop1.example.com")
		assert.Equal(t, first, Resolve(first+".example.com"))
	})

	t.Run("honors a caller-chosen fallback", func(t *testing.T) {
		assert.Equal(t, "demo", ResolveWithDefault("localhost:3000", "demo"))
		assert.Equal(t, "shop1", ResolveWithDefault("shop1.example.com", "demo"))
	})
}
