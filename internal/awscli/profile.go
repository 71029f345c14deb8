package awscli

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	pkgtypes "github.com/vietdv277/smf/pkg/types"
)

var (
	credentialsSectionRe = regexp.MustCompile(`^\[([^\]]+)\]$`)
	configSectionRe      = regexp.MustCompile(`^\[profile\s+([^\]]+)\]$`)
	configDefaultRe      = regexp.MustCompile(`^\[default\]$`)
	regionRe             = regexp.MustCompile(`^\s*region\s*=\s*(.+)$`)
)

// ListProfiles reads profiles from the shared credentials and config files.
// AWS_SHARED_CREDENTIALS_FILE and AWS_CONFIG_FILE override the default paths.
// "default" sorts first, the rest alphabetically.
func ListProfiles() ([]pkgtypes.AWSProfile, error) {
	byName := make(map[string]*pkgtypes.AWSProfile)

	if path, err := sharedFile("AWS_SHARED_CREDENTIALS_FILE", "credentials"); err == nil {
		if profiles, err := parseINIFile(path, "credentials", false); err == nil {
			for i := range profiles {
				byName[profiles[i].Name] = &profiles[i]
			}
		}
	}

	if path, err := sharedFile("AWS_CONFIG_FILE", "config"); err == nil {
		if profiles, err := parseINIFile(path, "config", true); err == nil {
			for i := range profiles {
				p := profiles[i]
				if existing, ok := byName[p.Name]; ok {
					if existing.Region == "" {
						existing.Region = p.Region
					}
					continue
				}
				byName[p.Name] = &p
			}
		}
	}

	profiles := make([]pkgtypes.AWSProfile, 0, len(byName))
	for _, p := range byName {
		profiles = append(profiles, *p)
	}

	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].Name == "default" {
			return true
		}
		if profiles[j].Name == "default" {
			return false
		}
		return profiles[i].Name < profiles[j].Name
	})

	return profiles, nil
}

// ValidateProfile reports whether a profile with this name exists
func ValidateProfile(name string) bool {
	profiles, err := ListProfiles()
	if err != nil {
		return false
	}
	for _, p := range profiles {
		if p.Name == name {
			return true
		}
	}
	return false
}

func sharedFile(envVar, name string) (string, error) {
	if p := os.Getenv(envVar); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".aws", name), nil
}

// parseINIFile extracts profile sections and their region from an AWS INI file.
// Config files name sections [profile x] except [default]; credentials files use [x].
func parseINIFile(path, source string, isConfigFile bool) ([]pkgtypes.AWSProfile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var profiles []pkgtypes.AWSProfile
	var current *pkgtypes.AWSProfile

	start := func(name string) {
		if current != nil {
			profiles = append(profiles, *current)
		}
		current = &pkgtypes.AWSProfile{Name: strings.TrimSpace(name), Source: source}
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if isConfigFile {
			if configDefaultRe.MatchString(line) {
				start("default")
				continue
			}
			if m := configSectionRe.FindStringSubmatch(line); len(m) == 2 {
				start(m[1])
				continue
			}
			if strings.HasPrefix(line, "[") {
				// [sso-session x], [services x] and friends are not profiles
				if current != nil {
					profiles = append(profiles, *current)
				}
				current = nil
				continue
			}
		} else if m := credentialsSectionRe.FindStringSubmatch(line); len(m) == 2 {
			start(m[1])
			continue
		}

		if current != nil {
			if m := regionRe.FindStringSubmatch(line); len(m) == 2 {
				current.Region = strings.TrimSpace(m[1])
			}
		}
	}

	if current != nil {
		profiles = append(profiles, *current)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return profiles, nil
}
