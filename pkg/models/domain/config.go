package domain

import "fmt"

// Environment names one side of a migration.
type Environment string

const (
	EnvironmentSource Environment = "source"
	EnvironmentTarget Environment = "target"
)

func ParseEnvironment(name string) (Environment, error) {
	switch Environment(name) {
	case EnvironmentSource, EnvironmentTarget:
		return Environment(name), nil
	}
	return "", fmt.Errorf("%w: unknown environment %q (expected source or target)", ErrConfig, name)
}

func (e Environment) String() string {
	return string(e)
}
