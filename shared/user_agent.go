package shared

import (
	"fmt"
	"net/http"
)

const userAgentTemplate = "%s/%s (+%s)"

// Version is overridden at build time with -ldflags "-X pachli/shared.Version=..."
var Version = "dev"

type IUserAgent interface {
	AddUserAgent(req *http.Request)
}

type userAgent struct {
	userAgentValue string
}

func NewUserAgent(cfg *Config) IUserAgent {
	return &userAgent{
		userAgentValue: buildUserAgentString(cfg.ClientName, cfg.ClientWebsite),
	}
}

func buildUserAgentString(clientName, website string) string {
	if clientName == "" {
		clientName = "Pachli"
	}
	return fmt.Sprintf(userAgentTemplate, clientName, Version, website)
}

func (ua *userAgent) AddUserAgent(req *http.Request) {
	req.Header.Set("User-Agent", ua.userAgentValue)
}
