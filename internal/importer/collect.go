package importer

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/plextrac/ptimport/internal/output"
	"github.com/plextrac/ptimport/internal/prompt"
)

// Inputs are values supplied ahead of time through flags, environment or the
// config file. Empty fields are prompted for.
type Inputs struct {
	Hostname string
	Username string
	ScanPath string
}

// Credentials identify the user against one PlexTrac instance.
type Credentials struct {
	Hostname string
	Username string
	Password string
}

// CollectCredentials fills hostname and username from preset or the prompter,
// then always asks for the password.
func CollectCredentials(p prompt.Prompter, preset Inputs) (Credentials, error) {
	host, err := askUntil(p, preset.Hostname, "PlexTrac instance hostname (with protocol, e.g. https://acme.plextrac.com): ", validHostname)
	if err != nil {
		return Credentials{}, err
	}
	user, err := askUntil(p, preset.Username, "PlexTrac username: ", nonEmpty("username"))
	if err != nil {
		return Credentials{}, err
	}
	pass, err := p.AskSecret("Password: ")
	if err != nil {
		return Credentials{}, fmt.Errorf("reading password: %w", err)
	}
	return Credentials{Hostname: host, Username: user, Password: pass}, nil
}

// CollectScanPath asks for the Nessus export unless one was preset.
func CollectScanPath(p prompt.Prompter, preset Inputs) (string, error) {
	return askUntil(p, preset.ScanPath, "Path to the Nessus XML export to upload: ", nonEmpty("file path"))
}

// askUntil returns preset when it validates, otherwise keeps prompting until an
// answer does.
func askUntil(p prompt.Prompter, preset, label string, check func(string) error) (string, error) {
	if v := strings.TrimSpace(preset); v != "" {
		if err := check(v); err != nil {
			return "", err
		}
		return v, nil
	}
	for {
		answer, err := p.Ask(label)
		if err != nil {
			return "", err
		}
		answer = strings.TrimSpace(answer)
		if err := check(answer); err != nil {
			output.Warn("%v", err)
			continue
		}
		return answer, nil
	}
}

func nonEmpty(what string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

func validHostname(s string) error {
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid hostname %q: expected http:// or https:// followed by a host", s)
	}
	return nil
}
