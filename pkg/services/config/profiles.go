package config

import (
	"fmt"

	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/spf13/viper"
	"gopkg.in/ini.v1"
)

// profileKeys are the keys read from a [source] or [target] section.
var profileKeys = []string{"url", "username", "password", "version"}

// Profiles is an ini file holding assistant credentials per environment:
//
//	[source]
//	url      = https://api.eu-de.assistant.example.com/instances/abc
//	password = ...
type Profiles struct {
	file *ini.File
}

func LoadProfiles(path string) (*Profiles, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles %s: %w", path, err)
	}
	return &Profiles{file: file}, nil
}

// apply sets profile values as viper defaults so the environment still wins.
func (p *Profiles) apply(v *viper.Viper) {
	for _, env := range []domain.Environment{domain.EnvironmentSource, domain.EnvironmentTarget} {
		section, err := p.file.GetSection(env.String())
		if err != nil {
			continue
		}
		for _, k := range profileKeys {
			if !section.HasKey(k) {
				continue
			}
			if val := section.Key(k).String(); val != "" {
				v.SetDefault(env.String()+".service_api."+k, val)
			}
		}
	}
}
