package cli

import "testing"

func TestLogConfigScan(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		level  logLevel
		format logFormat
		pretty bool
		caller bool
	}{
		{
			name:   "defaults",
			args:   []string{"gen", "model"},
			pretty: true,
		},
		{
			name:   "separate values",
			args:   []string{"--log-level", "debug", "gen", "--log-format", "json"},
			level:  "debug",
			format: "json",
			pretty: true,
		},
		{
			name:   "assigned values",
			args:   []string{"--log-level=warn", "--no-log-pretty", "--log-caller"},
			level:  "warn",
			pretty: false,
			caller: true,
		},
		{
			name:   "explicit booleans",
			args:   []string{"--log-pretty=false", "--no-log-caller=false"},
			pretty: false,
			caller: true,
		},
		{
			name:   "missing value",
			args:   []string{"--log-level", "--log-caller"},
			pretty: true,
			caller: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := logConfig{Pretty: true}
			f.scan(tt.args)

			if f.Level != tt.level || f.Format != tt.format {
				t.Errorf("level, format = %q, %q, want %q, %q",
					f.Level, f.Format, tt.level, tt.format)
			}

			if f.Pretty != tt.pretty || f.Caller != tt.caller {
				t.Errorf("pretty, caller = %v, %v, want %v, %v",
					f.Pretty, f.Caller, tt.pretty, tt.caller)
			}
		})
	}
}
