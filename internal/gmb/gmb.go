package gmb

import (
	"context"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const businessManageScope = "https://www.googleapis.com/auth/business.manage"

// Connector handles the Google Business Profile OAuth dance for shop owners.
type Connector struct {
	cfg *oauth2.Config
}

func New(clientID, clientSecret, redirectURL string) *Connector {
	return &Connector{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{businessManageScope},
			Endpoint:     google.Endpoint,
		},
	}
}

// Configured reports whether API credentials were provided at startup.
func (c *Connector) Configured() bool {
	return c.cfg.ClientID != "" && c.cfg.ClientSecret != "" && c.cfg.RedirectURL != ""
}

// AuthURL builds the offline-access consent URL. Offline access is required
// so the refresh token can be stored against the shop.
func (c *Connector) AuthURL(state string) string {
	return c.cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (c *Connector) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return c.cfg.Exchange(ctx, code)
}
