package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"servicecenter/internal/domain"
)

// LoadRoster reads a YAML roster file with `credentials` and `masters` lists.
func LoadRoster(path string) (*domain.Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster file: %w", err)
	}

	var roster domain.Roster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("parsing roster file: %w", err)
	}

	if err := validateRoster(roster); err != nil {
		return nil, err
	}

	return &roster, nil
}

func validateRoster(roster domain.Roster) error {
	if len(roster.Credentials) == 0 {
		return fmt.Errorf("roster has no credentials")
	}

	logins := make(map[string]struct{}, len(roster.Credentials))
	for i, c := range roster.Credentials {
		if c.ID == "" || c.Login == "" {
			return fmt.Errorf("roster credential %d: id and login are required", i)
		}
		if !c.Role.Valid() {
			return fmt.Errorf("roster credential %q: unknown role %q", c.Login, c.Role)
		}
		if _, dup := logins[c.Login]; dup {
			return fmt.Errorf("roster credential %q: duplicate login", c.Login)
		}
		logins[c.Login] = struct{}{}
	}

	return nil
}
