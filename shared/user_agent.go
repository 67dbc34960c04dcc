package shared

import (
	"fmt"
	"net/http"
	"os"
	"strings"
)

const (
	versionFileName   = "version.txt"
	userAgentTemplate = "Mood-Parrot-Bot/%s"
	devVersion        = "dev"
)

type IUserAgent interface {
	AddUserAgent(req *http.Request)
	String() string
}

type userAgent struct {
	userAgentValue string
}

func NewUserAgent() IUserAgent {
	return &userAgent{
		userAgentValue: buildUserAgentString(versionFileName),
	}
}

func buildUserAgentString(versionFile string) string {
	versionBytes, _ := os.ReadFile(versionFile)
	versionStr := strings.TrimSpace(string(versionBytes))
	versionStr = strings.TrimPrefix(versionStr, "v")
	if versionStr == "" {
		versionStr = devVersion
	}
	return fmt.Sprintf(userAgentTemplate, versionStr)
}

func (ua *userAgent) AddUserAgent(req *http.Request) {
	req.Header.Set("User-Agent", ua.userAgentValue)
}

func (ua *userAgent) String() string {
	return ua.userAgentValue
}
