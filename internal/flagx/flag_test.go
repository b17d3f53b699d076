package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.yaml", "-d", "back2me.db"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "conf.yaml"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.json", "-d", "back2me.db"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "order is preserved",
			args:         []string{"-l", "0s", "-d", "x.db", "-x", "1"},
			allowedFlags: []string{"-d", "-l"},
			want:         []string{"-l", "0s", "-d", "x.db"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-c", "-d", "x.db"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "equals value may start with a dash",
			args:         []string{"--config=--weird.json"},
			allowedFlags: []string{"--config"},
			want:         []string{"--config=--weird.json"},
		},
		{
			name:         "postgres dsn with equals in value",
			args:         []string{"-d=postgres://u:p@h/db?sslmode=disable"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d=postgres://u:p@h/db?sslmode=disable"},
		},
		{
			name:         "empty args",
			args:         nil,
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, "b2m.yaml", ConfigFile([]string{"-d", "x.db", "-c", "b2m.yaml"}))
	assert.Equal(t, "b2m.json", ConfigFile([]string{"-config", "b2m.json"}))
	assert.Equal(t, "b2m.json", ConfigFile([]string{"--config=b2m.json"}))
	assert.Equal(t, "second.json", ConfigFile([]string{"-c", "first.json", "-config", "second.json"}))
	assert.Equal(t, "", ConfigFile([]string{"-d", "x.db"}))
	assert.Equal(t, "", ConfigFile(nil))
}
