package services

import "testing"

func TestIsInvalidResourceLink(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"example.com链接", "See [this](http://example.com/x) for more.", true},
		{"正常链接", "See [this](http://good.org/path) for more.", false},
		{"broken链接", "Resource: [link](https://my-broken-site.org/a)", true},
		{"省略号链接", "Resource: [link](https://site.org/...)", true},
		{"无括号链接", "Just visit http://example.com directly.", false},
		{"无链接", "No links here at all.", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsInvalidResourceLink(tc.text); got != tc.want {
				t.Fatalf("IsInvalidResourceLink(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestIsInvalidResourceLink_OnlyFirstLinkChecked(t *testing.T) {
	// 只检查第一个括号链接
	text := "First [a](http://good.org/a) then [b](http://example.com/b)"
	if IsInvalidResourceLink(text) {
		t.Fatalf("expected first valid link to pass")
	}
}
