package utm

import (
	"errors"
	"strings"
	"testing"
)

func TestTag_OpenVariant(t *testing.T) {
	pol := DefaultPolicy(VariantOpen)

	tests := []struct {
		name string
		base string
		p    Params
		want string
	}{
		{
			name: "keeps existing params and appends tags",
			base: "https://example.com/page?ref=x",
			p:    Params{Source: "google", Medium: "cpc", Campaign: "spring"},
			want: "https://example.com/page?ref=x&utm_source=google&utm_medium=cpc&utm_campaign=spring",
		},
		{
			name: "defaults source and campaign",
			base: "https://example.com/",
			p:    Params{Medium: "email"},
			want: "https://example.com/?utm_source=unknown&utm_medium=email&utm_campaign=default",
		},
		{
			name: "adds root path and content",
			base: "  https://Example.COM  ",
			p:    Params{Source: "fb", Medium: "social", Campaign: "launch", Content: "banner a"},
			want: "https://example.com/?utm_source=fb&utm_medium=social&utm_campaign=launch&utm_content=banner+a",
		},
		{
			name: "overwrites existing utm params in place",
			base: "https://example.com/?utm_campaign=old&a=1&utm_source=old&utm_campaign=dup",
			p:    Params{Source: "new", Medium: "cpc", Campaign: "fresh"},
			want: "https://example.com/?utm_campaign=fresh&a=1&utm_source=new&utm_medium=cpc",
		},
		{
			name: "keeps fragment after query",
			base: "https://example.com/docs#intro",
			p:    Params{Source: "s", Medium: "m", Campaign: "c"},
			want: "https://example.com/docs?utm_source=s&utm_medium=m&utm_campaign=c#intro",
		},
		{
			name: "reserializes existing query as form data",
			base: "https://example.com/?q=a+b&x=%7e&flag",
			p:    Params{Source: "s", Medium: "m", Campaign: "c"},
			want: "https://example.com/?q=a+b&x=%7E&flag=&utm_source=s&utm_medium=m&utm_campaign=c",
		},
		{
			name: "encodes non-ascii values",
			base: "https://example.com/",
			p:    Params{Source: "яндекс", Medium: "cpc", Campaign: "a&b"},
			want: "https://example.com/?utm_source=%D1%8F%D0%BD%D0%B4%D0%B5%D0%BA%D1%81&utm_medium=cpc&utm_campaign=a%26b",
		},
		{
			name: "converts idn host",
			base: "https://пример.рф/путь",
			p:    Params{Source: "s", Medium: "m", Campaign: "c"},
			want: "https://xn--e1afmkfd.xn--p1ai/%D0%BF%D1%83%D1%82%D1%8C?utm_source=s&utm_medium=m&utm_campaign=c",
		},
		{
			name: "keeps port",
			base: "http://localhost:8080",
			p:    Params{Source: "s", Medium: "m", Campaign: "c"},
			want: "http://localhost:8080/?utm_source=s&utm_medium=m&utm_campaign=c",
		},
		{
			name: "drops default https port",
			base: "https://example.com:443/page",
			p:    Params{Source: "s", Medium: "m", Campaign: "c"},
			want: "https://example.com/page?utm_source=s&utm_medium=m&utm_campaign=c",
		},
		{
			name: "drops default http port written with zeros",
			base: "http://example.com:080",
			p:    Params{Source: "s", Medium: "m", Campaign: "c"},
			want: "http://example.com/?utm_source=s&utm_medium=m&utm_campaign=c",
		},
		{
			name: "keeps non-default port for scheme",
			base: "https://example.com:80/",
			p:    Params{Source: "s", Medium: "m", Campaign: "c"},
			want: "https://example.com:80/?utm_source=s&utm_medium=m&utm_campaign=c",
		},
		{
			name: "drops default ftp port and adds root path",
			base: "ftp://files.example.com:21",
			p:    Params{Source: "s", Medium: "m", Campaign: "c"},
			want: "ftp://files.example.com/?utm_source=s&utm_medium=m&utm_campaign=c",
		},
		{
			name: "resolves dot-dot segment",
			base: "https://example.com/a/../b",
			p:    Params{Source: "s", Medium: "m", Campaign: "c"},
			want: "https://example.com/b?utm_source=s&utm_medium=m&utm_campaign=c",
		},
		{
			name: "resolves single dot and trailing dot-dot",
			base: "https://example.com/a/./b/..",
			p:    Params{Source: "s", Medium: "m", Campaign: "c"},
			want: "https://example.com/a/?utm_source=s&utm_medium=m&utm_campaign=c",
		},
		{
			name: "resolves encoded dot segments",
			base: "https://example.com/a/%2E%2e/b",
			p:    Params{Source: "s", Medium: "m", Campaign: "c"},
			want: "https://example.com/b?utm_source=s&utm_medium=m&utm_campaign=c",
		},
		{
			name: "keeps empty path segments",
			base: "https://example.com//a//b",
			p:    Params{Source: "s", Medium: "m", Campaign: "c"},
			want: "https://example.com//a//b?utm_source=s&utm_medium=m&utm_campaign=c",
		},
		{
			name: "keeps stray percent in path",
			base: "https://example.com/%zz",
			p:    Params{Source: "s", Medium: "m", Campaign: "c"},
			want: "https://example.com/%zz?utm_source=s&utm_medium=m&utm_campaign=c",
		},
		{
			name: "keeps stray percent in fragment",
			base: "https://example.com/#%zz",
			p:    Params{Source: "s", Medium: "m", Campaign: "c"},
			want: "https://example.com/?utm_source=s&utm_medium=m&utm_campaign=c#%zz",
		},
		{
			name: "encodes spaces in path and fragment",
			base: "https://example.com/a b#c d",
			p:    Params{Source: "s", Medium: "m", Campaign: "c"},
			want: "https://example.com/a%20b?utm_source=s&utm_medium=m&utm_campaign=c#c%20d",
		},
		{
			name: "drops tabs and newlines",
			base: "https://exa\tmple.com/pa\nge",
			p:    Params{Source: "s", Medium: "m", Campaign: "c"},
			want: "https://example.com/page?utm_source=s&utm_medium=m&utm_campaign=c",
		},
		{
			name: "keeps empty fragment",
			base: "https://example.com/#",
			p:    Params{Source: "s", Medium: "m", Campaign: "c"},
			want: "https://example.com/?utm_source=s&utm_medium=m&utm_campaign=c#",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tag(tt.base, tt.p, pol)
			if err != nil {
				t.Fatalf("Tag() error = %v", err)
			}
			if got.URL != tt.want {
				t.Errorf("Tag() =\n  %s\nwant\n  %s", got.URL, tt.want)
			}
		})
	}
}

func TestTag_Deterministic(t *testing.T) {
	pol := DefaultPolicy(VariantOpen)
	p := Params{Source: "google", Medium: "cpc", Campaign: "spring", Content: "hero"}
	base := "https://example.com/landing?b=2&a=1&utm_source=x"

	first, err := Tag(base, p, pol)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		// unrelated call in between must not leak state
		if _, err := Tag("https://other.test/?z=1", Params{Campaign: "other"}, pol); err != nil {
			t.Fatal(err)
		}
		again, err := Tag(base, p, pol)
		if err != nil {
			t.Fatal(err)
		}
		if again.URL != first.URL {
			t.Fatalf("run %d: %q != %q", i, again.URL, first.URL)
		}
	}
	if strings.Count(first.URL, "utm_source=") != 1 {
		t.Errorf("utm_source duplicated in %q", first.URL)
	}
}

func TestTag_Errors(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		pol     Policy
		p       Params
		wantErr error
	}{
		{"empty", "", DefaultPolicy(VariantOpen), Params{}, ErrEmptyURL},
		{"whitespace", "   \t", DefaultPolicy(VariantOpen), Params{}, ErrEmptyURL},
		{"no scheme", "example.com/page", DefaultPolicy(VariantOpen), Params{}, ErrInvalidURL},
		{"no host", "https:///path", DefaultPolicy(VariantOpen), Params{}, ErrInvalidURL},
		{"opaque", "mailto:someone@example.com", DefaultPolicy(VariantOpen), Params{}, ErrInvalidURL},
		{"bad host", "http://exa mple.com", DefaultPolicy(VariantOpen), Params{}, ErrInvalidURL},
		{"port out of range", "https://example.com:70000/", DefaultPolicy(VariantOpen), Params{}, ErrInvalidURL},
		{"fixed without campaign", "https://example.com", DefaultPolicy(VariantFixed), Params{Source: "vk"}, ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tag(tt.base, tt.p, tt.pol)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Tag() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTag_FixedVariant(t *testing.T) {
	pol := DefaultPolicy(VariantFixed)
	pol.FixedMedium = "partner"
	pol.FixedContent = "tg"

	got, err := Tag("https://example.com/shop", Params{Medium: "ignored", Content: "ignored", Campaign: "sale"}, pol)
	if err != nil {
		t.Fatal(err)
	}
	want := "https://example.com/shop?utm_source=unknown&utm_medium=partner&utm_campaign=sale&utm_content=tg"
	if got.URL != want {
		t.Errorf("Tag() = %q, want %q", got.URL, want)
	}
	if got.Values.HasMedium || got.Values.HasContent {
		t.Error("fixed variant should not record medium or content")
	}
}

func TestParseVariant(t *testing.T) {
	for in, want := range map[string]Variant{"": VariantOpen, "open": VariantOpen, " Fixed ": VariantFixed} {
		got, err := ParseVariant(in)
		if err != nil {
			t.Fatalf("ParseVariant(%q) error = %v", in, err)
		}
		if got != want {
			t.Errorf("ParseVariant(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseVariant("both"); err == nil {
		t.Error("expected error for unknown variant")
	}
}
