package utm

import (
	"fmt"
	"strings"
)

// Variant selects how missing tag values are filled in.
type Variant string

const (
	// VariantOpen fills blank source and campaign with placeholders and
	// takes medium and content from the user.
	VariantOpen Variant = "open"
	// VariantFixed pins medium and content to constants and requires a campaign.
	VariantFixed Variant = "fixed"
)

// Params are the raw tag values entered by the user.
type Params struct {
	Source   string
	Medium   string
	Campaign string
	Content  string
}

// Policy is the defaulting policy applied to Params before tagging.
type Policy struct {
	Variant         Variant
	DefaultSource   string
	DefaultCampaign string
	FixedMedium     string
	FixedContent    string
}

// DefaultPolicy returns the policy of the given variant with stock placeholders.
func DefaultPolicy(v Variant) Policy {
	return Policy{
		Variant:         v,
		DefaultSource:   "unknown",
		DefaultCampaign: "default",
		FixedMedium:     "referral",
		FixedContent:    "link",
	}
}

// Resolved holds the final tag values. Content is omitted from the URL
// when empty. HasMedium and HasContent report whether the variant records
// those fields at all.
type Resolved struct {
	Source     string
	Medium     string
	Campaign   string
	Content    string
	HasMedium  bool
	HasContent bool
}

// Resolve applies the policy to p.
func (pol Policy) Resolve(p Params) (Resolved, error) {
	source := strings.TrimSpace(p.Source)
	campaign := strings.TrimSpace(p.Campaign)
	if source == "" {
		source = pol.DefaultSource
	}

	switch pol.Variant {
	case VariantFixed:
		if campaign == "" {
			return Resolved{}, fmt.Errorf("%w: campaign", ErrMissingField)
		}
		return Resolved{
			Source:   source,
			Medium:   pol.FixedMedium,
			Campaign: campaign,
			Content:  pol.FixedContent,
		}, nil
	case VariantOpen, "":
		if campaign == "" {
			campaign = pol.DefaultCampaign
		}
		return Resolved{
			Source:     source,
			Medium:     strings.TrimSpace(p.Medium),
			Campaign:   campaign,
			Content:    strings.TrimSpace(p.Content),
			HasMedium:  true,
			HasContent: true,
		}, nil
	default:
		return Resolved{}, fmt.Errorf("unknown variant %q", pol.Variant)
	}
}

// ParseVariant converts a config value into a Variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantOpen, "":
		return VariantOpen, nil
	case VariantFixed:
		return VariantFixed, nil
	default:
		return "", fmt.Errorf("unknown variant %q (use open or fixed)", s)
	}
}
