package catalog

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	_ "github.com/databricks/databricks-sql-go"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/snowflakedb/gosnowflake"
)

const (
	DriverPostgres   = "pgx"
	DriverDatabricks = "databricks"
	DriverSnowflake  = "snowflake"
)

// DefaultRegistry returns a registry holding every driver compiled into the binary.
func DefaultRegistry() Registry {
	r := NewRegistry()
	for _, d := range []Driver{
		{Name: DriverPostgres, SQLDriver: "pgx", Dialect: DollarDialect{}, DSN: postgresDSN},
		{Name: DriverDatabricks, SQLDriver: "databricks", Dialect: QuestionDialect{}, DSN: databricksDSN},
		{Name: DriverSnowflake, SQLDriver: "snowflake", Dialect: QuestionDialect{}, DSN: snowflakeDSN},
	} {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
	return r
}

func postgresDSN(s Settings) (string, error) {
	if s.Hostname == "" {
		return "", fmt.Errorf("hostname is required")
	}
	host := s.Hostname
	if s.Port != 0 {
		host = net.JoinHostPort(s.Hostname, strconv.Itoa(s.Port))
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(s.UID, s.PWD),
		Host:   host,
		Path:   "/" + s.DBName,
	}
	return u.String(), nil
}

// databricksDSN expects the warehouse HTTP path in DBName and a personal
// access token in PWD.
func databricksDSN(s Settings) (string, error) {
	if s.Hostname == "" {
		return "", fmt.Errorf("hostname is required")
	}
	if s.DBName == "" {
		return "", fmt.Errorf("dbname must hold the warehouse http path")
	}
	port := s.Port
	if port == 0 {
		port = 443
	}
	return fmt.Sprintf("token:%s@%s:%d/%s", s.PWD, s.Hostname, port, strings.TrimPrefix(s.DBName, "/")), nil
}

// snowflakeDSN reads the account identifier from Hostname.
func snowflakeDSN(s Settings) (string, error) {
	if s.Hostname == "" {
		return "", fmt.Errorf("hostname (account) is required")
	}
	return gosnowflake.DSN(&gosnowflake.Config{
		Account:  s.Hostname,
		User:     s.UID,
		Password: s.PWD,
		Database: s.DBName,
		Port:     s.Port,
	})
}
