// Package utm builds UTM-tagged links from a base URL and campaign values.
package utm

// Query parameter names, in the order they are applied.
const (
	ParamSource   = "utm_source"
	ParamMedium   = "utm_medium"
	ParamCampaign = "utm_campaign"
	ParamContent  = "utm_content"
)

// Tagged is a successfully tagged link together with the values used.
type Tagged struct {
	URL    string
	Values Resolved
}

// Tag parses baseURL, resolves p through the policy and sets the UTM
// parameters on the query. Existing non-UTM parameters keep their order;
// existing UTM parameters are overwritten in place. The result depends only
// on the inputs.
func Tag(baseURL string, p Params, pol Policy) (Tagged, error) {
	raw := cleanInput(baseURL)
	if raw == "" {
		return Tagged{}, ErrEmptyURL
	}

	l, err := parseLink(raw)
	if err != nil {
		return Tagged{}, err
	}

	vals, err := pol.Resolve(p)
	if err != nil {
		return Tagged{}, err
	}

	q := parseQuery(l.query)
	q = q.set(ParamSource, vals.Source)
	q = q.set(ParamMedium, vals.Medium)
	q = q.set(ParamCampaign, vals.Campaign)
	if vals.Content != "" {
		q = q.set(ParamContent, vals.Content)
	}
	l.query = q.encode()

	return Tagged{URL: l.String(), Values: vals}, nil
}
