package dburl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "required only",
			got:  Create("postgresql", "u", "p", "host", "db"),
			want: "postgresql://u:p@host/db",
		},
		{
			name: "all options",
			got: Create("postgresql", "u", "p", "host", "db",
				WithPort("5432"), WithDriver("psycopg2"), WithAppName("svc")),
			want: "postgresql+psycopg2://u:p@host:5432/db?application_name=svc",
		},
		{
			name: "empty port and driver are dropped",
			got:  Create("mysql", "root", "pw", "10.0.0.1", "app", WithPort(""), WithDriver("")),
			want: "mysql://root:pw@10.0.0.1/app",
		},
		{
			name: "empty app name is kept",
			got:  Create("postgresql", "u", "p", "host", "db", WithAppName("")),
			want: "postgresql://u:p@host/db?application_name=",
		},
		{
			name: "values are not escaped",
			got:  Create("postgresql", "u@x", "p:w", "host", "db"),
			want: "postgresql://u@x:p:w@host/db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestParamsURL(t *testing.T) {
	app := "svc"
	p := Params{
		Dialect:  "postgresql",
		Username: "u",
		Password: "p",
		Host:     "host",
		Database: "db",
		Port:     "5432",
		Driver:   "psycopg2",
		AppName:  &app,
	}

	assert.Equal(t, "postgresql+psycopg2", p.Scheme())
	assert.Equal(t, Create("postgresql", "u", "p", "host", "db",
		WithPort("5432"), WithDriver("psycopg2"), WithAppName("svc")), p.URL())
}

func TestSplitScheme(t *testing.T) {
	dialect, driver, ok := SplitScheme("postgresql+psycopg2://u:p@host/db")
	assert.True(t, ok)
	assert.Equal(t, "postgresql", dialect)
	assert.Equal(t, "psycopg2", driver)

	dialect, driver, ok = SplitScheme("postgres://u:p@host/db")
	assert.True(t, ok)
	assert.Equal(t, "postgres", dialect)
	assert.Empty(t, driver)

	_, _, ok = SplitScheme("host=db user=u")
	assert.False(t, ok)
}
