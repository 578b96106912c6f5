// Package dburl builds RFC-1738 style database URLs of the form
//
//	dialect[+driver]://user:password@host[:port]/database[?application_name=name]
//
// Values are used verbatim; callers must pass URL-safe strings.
package dburl

import "strings"

// Params holds the parts of a database URL. An empty Port or Driver is
// left out of the URL; a nil AppName drops the query string.
type Params struct {
	Dialect  string
	Username string
	Password string
	Host     string
	Database string
	Port     string
	Driver   string
	AppName  *string
}

// Option sets an optional part of Params.
type Option func(*Params)

// WithPort sets the port.
func WithPort(port string) Option {
	return func(p *Params) { p.Port = port }
}

// WithDriver sets the driver appended to the dialect.
func WithDriver(driver string) Option {
	return func(p *Params) { p.Driver = driver }
}

// WithAppName sets application_name. An empty name is still rendered.
func WithAppName(name string) Option {
	return func(p *Params) { p.AppName = &name }
}

// Create builds a database URL from its required parts and options.
func Create(dialect, username, password, host, database string, opts ...Option) string {
	p := Params{
		Dialect:  dialect,
		Username: username,
		Password: password,
		Host:     host,
		Database: database,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p.URL()
}

// Scheme returns dialect[+driver].
func (p Params) Scheme() string {
	if p.Driver == "" {
		return p.Dialect
	}
	return p.Dialect + "+" + p.Driver
}

// URL renders the database URL.
func (p Params) URL() string {
	var b strings.Builder

	b.WriteString(p.Scheme())
	b.WriteString("://")
	b.WriteString(p.Username)
	b.WriteByte(':')
	b.WriteString(p.Password)
	b.WriteByte('@')
	b.WriteString(p.Host)
	if p.Port != "" {
		b.WriteByte(':')
		b.WriteString(p.Port)
	}
	b.WriteByte('/')
	b.WriteString(p.Database)
	if p.AppName != nil {
		b.WriteString("?application_name=")
		b.WriteString(*p.AppName)
	}

	return b.String()
}

// SplitScheme splits a URL's dialect[+driver] scheme. ok is false when the
// URL has no "://" separator.
func SplitScheme(url string) (dialect, driver string, ok bool) {
	scheme, _, found := strings.Cut(url, "://")
	if !found {
		return "", "", false
	}
	dialect, driver, _ = strings.Cut(scheme, "+")
	return dialect, driver, true
}
