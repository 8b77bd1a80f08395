package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubdomainFromHost(t *testing.T) {
	tests := []struct {
		host string
		base string
		want string
		ok   bool
	}{
		{host: "downtown.book.example.com", base: "book.example.com", want: "downtown", ok: true},
		{host: "Downtown.Book.Example.com:8443", base: "book.example.com", want: "downtown", ok: true},
		{host: "downtown.localhost:8080", base: "localhost", want: "downtown", ok: true},
		{host: "downtown.book.example.com.", base: ".book.example.com", want: "downtown", ok: true},
		{host: "book.example.com", base: "book.example.com", ok: false},
		{host: "a.b.book.example.com", base: "book.example.com", ok: false},
		{host: "downtown.evil.com", base: "book.example.com", ok: false},
		{host: "xbook.example.com", base: "book.example.com", ok: false},
		{host: "downtown.book.example.com", base: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			got, ok := SubdomainFromHost(tt.host, tt.base)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
