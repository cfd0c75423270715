package catalog

import (
	"fmt"
	"sort"
	"sync"
)

// Settings are the connection parameters of one catalog database.
type Settings struct {
	Driver   string
	DBName   string
	Hostname string
	UID      string
	PWD      string
	Port     int
}

// Driver knows how to reach one kind of catalog database.
type Driver struct {
	// Name is the value operators put in *_DB_DRIVER.
	Name string
	// SQLDriver is the name the driver registered with database/sql.
	SQLDriver string
	Dialect   Dialect
	DSN       func(Settings) (string, error)
}

// Registry manages the catalog drivers available to the tool
type Registry interface {
	// Register adds a new driver
	Register(driver Driver) error
	// Get returns the driver registered under name
	Get(name string) (Driver, error)
	// ListDrivers returns the registered driver names, sorted
	ListDrivers() []string
}

type registry struct {
	mu      sync.RWMutex
	drivers map[string]Driver
}

// NewRegistry creates an empty driver registry
func NewRegistry() Registry {
	return &registry{
		drivers: make(map[string]Driver),
	}
}

func (r *registry) Register(driver Driver) error {
	if driver.Name == "" {
		return fmt.Errorf("driver name cannot be empty")
	}
	if driver.DSN == nil {
		return fmt.Errorf("driver %q: DSN builder cannot be nil", driver.Name)
	}
	if driver.Dialect == nil {
		return fmt.Errorf("driver %q: dialect cannot be nil", driver.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.drivers[driver.Name]; exists {
		return fmt.Errorf("driver %q is already registered", driver.Name)
	}

	r.drivers[driver.Name] = driver
	return nil
}

func (r *registry) Get(name string) (Driver, error) {
	r.mu.RLock()
	driver, exists := r.drivers[name]
	r.mu.RUnlock()

	if !exists {
		return Driver{}, fmt.Errorf("driver %q is not registered (available: %v)", name, r.ListDrivers())
	}
	return driver, nil
}

func (r *registry) ListDrivers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.drivers))
	for name := range r.drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
