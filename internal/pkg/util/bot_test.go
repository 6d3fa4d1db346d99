package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLikelyBot(t *testing.T) {
	cases := []struct {
		ua   string
		want bool
	}{
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36", false},
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", false},
		{"", true},
		{"Googlebot/2.1 (+http://www.google.com/bot.html)", true},
		{"Mozilla/5.0 (compatible; bingbot/2.0)", true},
		{"curl/8.4.0", true},
		{"python-requests/2.31.0", true},
		{"Mozilla/5.0 AppleWebKit/537.36 HeadlessChrome/119.0", true},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, IsLikelyBot(c.ua), "ua=%q", c.ua)
	}
}
