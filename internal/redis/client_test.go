package redis

import (
	"testing"
)

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		cfg          Config
		wantErr      bool
		wantAddr     string
		wantDB       int
		wantPoolSize int
		wantName     string
	}{
		{name: "missing url", cfg: Config{}, wantErr: true},
		{name: "bad scheme", cfg: Config{URL: "http://localhost:6379"}, wantErr: true},
		{
			name:     "plain url",
			cfg:      Config{URL: "redis://localhost:6379/2"},
			wantAddr: "localhost:6379",
			wantDB:   2,
		},
		{
			name:         "overrides",
			cfg:          Config{URL: "redis://cache:6380", PoolSize: 8, ClientName: "wellscore"},
			wantAddr:     "cache:6380",
			wantPoolSize: 8,
			wantName:     "wellscore",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opt, err := tt.cfg.options()
			if tt.wantErr {
				if err == nil {
					t.Fatal("options() returned nil error")
				}
				return
			}
			if err != nil {
				t.Fatalf("options() error = %v", err)
			}
			if opt.Addr != tt.wantAddr || opt.DB != tt.wantDB {
				t.Errorf("addr, db = %q, %d; want %q, %d", opt.Addr, opt.DB, tt.wantAddr, tt.wantDB)
			}
			if tt.wantPoolSize != 0 && opt.PoolSize != tt.wantPoolSize {
				t.Errorf("PoolSize = %d, want %d", opt.PoolSize, tt.wantPoolSize)
			}
			if opt.ClientName != tt.wantName {
				t.Errorf("ClientName = %q, want %q", opt.ClientName, tt.wantName)
			}
		})
	}
}
