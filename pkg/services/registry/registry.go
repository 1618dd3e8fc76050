package registry

import (
	"errors"
	"fmt"

	"github.com/idfwu/ccem/pkg/models/domain"
	"gopkg.in/ini.v1"
)

const DefaultProfile = "idfwu"

var ErrProfileNotFound = errors.New("profile not found")

// DefaultTarget is the IDFWU project the issue hierarchy was planned for.
var DefaultTarget = domain.Target{
	Name:       DefaultProfile,
	ProjectID:  "4d649a6501f7",
	TeamID:     "d96155e4-faea-4ccf-b8bc-36e53dc7f23f",
	ProjectURL: "https://linear.app/pegues-innovations/project/idfwu-idea-framework-unified-4d649a6501f7",
}

// TargetRegistry resolves named tracker targets from an ini file such as
//
//	[idfwu]
//	project_id  = 4d649a6501f7
//	team_id     = d96155e4-faea-4ccf-b8bc-36e53dc7f23f
//	project_url = https://linear.app/...
type TargetRegistry interface {
	GetProfiles() ([]string, error)
	GetTarget(profile string) (domain.Target, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewTargetRegistry(path string) (TargetRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles from %s: %w", path, err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles() ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetTarget(profile string) (domain.Target, error) {
	section, err := cr.cfg.GetSection(profile)
	if err != nil {
		return domain.Target{}, fmt.Errorf("%w: %s", ErrProfileNotFound, profile)
	}

	target := domain.Target{
		Name:       profile,
		ProjectID:  section.Key("project_id").String(),
		TeamID:     section.Key("team_id").String(),
		ProjectURL: section.Key("project_url").String(),
	}
	if target.ProjectID == "" || target.TeamID == "" {
		return domain.Target{}, fmt.Errorf("profile %s must define project_id and team_id", profile)
	}
	return target, nil
}

// Resolve picks the target for a profile name. An empty profile selects the
// built-in default without touching the profiles file.
func Resolve(path, profile string) (domain.Target, error) {
	if profile == "" {
		return DefaultTarget, nil
	}

	reg, err := NewTargetRegistry(path)
	if err != nil {
		if profile == DefaultProfile {
			return DefaultTarget, nil
		}
		return domain.Target{}, err
	}

	target, err := reg.GetTarget(profile)
	if errors.Is(err, ErrProfileNotFound) && profile == DefaultProfile {
		return DefaultTarget, nil
	}
	return target, err
}
