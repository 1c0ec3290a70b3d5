package jsonld

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// OrgDefaults is the site-wide organization profile: the source for the
// Organization document itself and for auto-filled publisher, organizer,
// provider and hiring-organization fields on other types.
type OrgDefaults struct {
	Type             string `yaml:"type"` // Organization subtype (NGO, PoliticalOrganization, ...)
	Name             string `yaml:"name"`
	URL              string `yaml:"url"`
	Logo             string `yaml:"logo"`
	Description      string `yaml:"description"`
	Telephone        string `yaml:"telephone"`
	Email            string `yaml:"email"`
	StreetAddress    string `yaml:"street_address"`
	AddressLocality  string `yaml:"address_locality"`
	AddressRegion    string `yaml:"address_region"`
	PostalCode       string `yaml:"postal_code"`
	AddressCountry   string `yaml:"address_country"`
	Facebook         string `yaml:"facebook"`
	Twitter          string `yaml:"twitter"`
	LinkedIn         string `yaml:"linkedin"`
	Instagram        string `yaml:"instagram"`
	YouTube          string `yaml:"youtube"`
	MissionStatement string `yaml:"mission_statement"`
	FoundingDate     string `yaml:"founding_date"`
}

// OrgDefaultsFromYAML decodes the defaults from YAML.
func OrgDefaultsFromYAML(data []byte) (OrgDefaults, error) {
	var o OrgDefaults
	if err := yaml.Unmarshal(data, &o); err != nil {
		return OrgDefaults{}, fmt.Errorf("jsonld: decode org defaults: %w", err)
	}
	return o, nil
}

// Record projects the defaults onto the organization field names, ready to
// feed the Organization generator directly.
func (o OrgDefaults) Record() Record {
	r := Record{}
	put := func(k, v string) {
		if v != "" {
			r[k] = v
		}
	}
	put("type", o.Type)
	put("name", o.Name)
	put("url", o.URL)
	put("logo", o.Logo)
	put("description", o.Description)
	put("telephone", o.Telephone)
	put("email", o.Email)
	put("street_address", o.StreetAddress)
	put("address_locality", o.AddressLocality)
	put("address_region", o.AddressRegion)
	put("postal_code", o.PostalCode)
	put("address_country", o.AddressCountry)
	put("facebook", o.Facebook)
	put("twitter", o.Twitter)
	put("linkedin", o.LinkedIn)
	put("instagram", o.Instagram)
	put("youtube", o.YouTube)
	put("mission_statement", o.MissionStatement)
	put("founding_date", o.FoundingDate)
	return r
}

// Empty reports whether no defaults are configured at all.
func (o OrgDefaults) Empty() bool { return o == (OrgDefaults{}) }
