// Package dbconn describes database connection settings through several
// interchangeable Describing witnesses, including ones that keep the
// password out of the output.
package dbconn

import (
	"github.com/amp-labs/amp-witness/envutil"
	"github.com/amp-labs/amp-witness/errors"
	"github.com/amp-labs/amp-witness/xform"
)

const defaultPort = 5432

// Info holds the settings needed to reach a database.
type Info struct {
	Database string `json:"database" yaml:"database"`
	Hostname string `json:"hostname" yaml:"hostname"`
	Password string `json:"password" yaml:"password"`
	Port     int    `json:"port"     yaml:"port"`
	User     string `json:"user"     yaml:"user"`
}

// WithPassword returns a copy of i with its password replaced.
func (i Info) WithPassword(password string) Info {
	i.Password = password

	return i
}

// FromEnv reads an Info from <prefix>_DATABASE, <prefix>_HOST,
// <prefix>_PASSWORD, <prefix>_PORT and <prefix>_USER. Database and host are
// required; the port defaults to 5432 and the user to "postgres". Every
// problem found is reported, not just the first.
func FromEnv(prefix string) (Info, error) {
	var errs errors.Collection

	database, err := envutil.String(prefix+"_DATABASE",
		envutil.Validate(nonEmpty)).Value()
	errs.Add(err)

	hostname, err := envutil.String(prefix+"_HOST",
		envutil.Validate(nonEmpty)).Value()
	errs.Add(err)

	password, err := envutil.String(prefix+"_PASSWORD",
		envutil.Default("")).Value()
	errs.Add(err)

	port, err := envutil.Port(prefix+"_PORT",
		envutil.Default[uint16](defaultPort)).Value()
	errs.Add(err)

	user, err := envutil.String(prefix+"_USER",
		envutil.Default("postgres")).Value()
	errs.Add(err)

	if errs.HasError() {
		return Info{}, errs.GetError()
	}

	return Info{
		Database: database,
		Hostname: hostname,
		Password: password,
		Port:     int(port),
		User:     user,
	}, nil
}

func nonEmpty(s string) error {
	_, err := xform.NonEmpty(s)

	return err
}
