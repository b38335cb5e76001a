package permission

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

//go:embed default_policy.yaml
var defaultPolicy []byte

type Policy struct {
	Role     string `yaml:"role"`
	Resource string `yaml:"resource"`
	Action   string `yaml:"action"`
}

func (p Policy) rule() []string {
	return []string{p.Role, p.Resource, p.Action}
}

type policyFile struct {
	Policies []Policy `yaml:"policies"`
}

// DefaultPolicies returns the embedded role policy.
func DefaultPolicies() ([]Policy, error) {
	return ParsePolicies(defaultPolicy)
}

// LoadPolicies reads path, or the embedded policy when path is empty.
func LoadPolicies(path string) ([]Policy, error) {
	if path == "" {
		return DefaultPolicies()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}
	return ParsePolicies(data)
}

// ParsePolicies decodes a policy document and rejects unknown role names.
func ParsePolicies(data []byte) ([]Policy, error) {
	var f policyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse policy file: %w", err)
	}

	known := make(map[string]bool)
	for _, r := range authorization.AllRoles() {
		known[r.String()] = true
	}

	for i, p := range f.Policies {
		if !known[p.Role] {
			return nil, fmt.Errorf("policy %d: unknown role %q", i, p.Role)
		}
		if p.Resource == "" || p.Action == "" {
			return nil, fmt.Errorf("policy %d: resource and action are required", i)
		}
	}
	return f.Policies, nil
}

// Seed loads the policy document into the enforcer. Existing rules are kept.
func Seed(e *Enforcer, path string, log logger.Interface) error {
	policies, err := LoadPolicies(path)
	if err != nil {
		return err
	}
	if err := e.AddPolicies(policies); err != nil {
		return err
	}
	log.Infow("permission policies seeded", "count", len(policies))
	return nil
}
