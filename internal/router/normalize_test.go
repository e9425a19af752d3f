package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"omnixius-ai/internal/router"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Empty", in: "", want: ""},
		{name: "Whitespace only", in: " \t\n ", want: ""},
		{name: "Trim and lower", in: "  Show My ORDERS  ", want: "show my orders"},
		{name: "Cyrillic", in: "МОИ Заказы", want: "мои заказы"},
		{name: "French accents", in: "RÉSUMÉ", want: "résumé"},
		{name: "Decomposed accent", in: "re\u0301sume\u0301", want: "r\u00e9sum\u00e9"},
		{name: "Inner spacing kept", in: "a  b", want: "a  b"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, router.Normalize(tc.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, s := range []string{"Hello", "  МОИ заказы ", "RÉSUMÉ des Messages"} {
		once := router.Normalize(s)
		assert.Equal(t, once, router.Normalize(once))
	}
}
