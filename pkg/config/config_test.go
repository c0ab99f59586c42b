package config

import (
	"strings"
	"testing"
)

func TestDSN(t *testing.T) {
	cfg := &DatabaseConfig{
		Driver:   "mysql",
		Host:     "db.local",
		Port:     3306,
		User:     "sibw",
		Password: "secret",
		DBName:   "sibw",
	}

	dsn := cfg.DSN()
	if !strings.HasPrefix(dsn, "sibw:secret@tcp(db.local:3306)/sibw?") {
		t.Errorf("mysql DSN = %q, unexpected prefix", dsn)
	}
	// 条件更新的冲突判断要求 UPDATE 返回匹配行数
	if !strings.Contains(dsn, "clientFoundRows=true") {
		t.Errorf("mysql DSN = %q, missing clientFoundRows=true", dsn)
	}

	cfg.Driver = "postgres"
	cfg.Port = 5432
	dsn = cfg.DSN()
	want := "host=db.local port=5432 user=sibw password=secret dbname=sibw sslmode=disable"
	if dsn != want {
		t.Errorf("postgres DSN = %q, want %q", dsn, want)
	}
}

func TestSecurityConfigDomains(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "example.com", []string{"example.com"}},
		{"trims and lowercases", " Example.COM , other.org ", []string{"example.com", "other.org"}},
		{"drops empty items", "example.com,,", []string{"example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &SecurityConfig{AllowedEmailDomains: tt.input}
			got := cfg.Domains()
			if len(got) != len(tt.want) {
				t.Fatalf("Domains() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Domains()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSecurityConfigSetDefaults(t *testing.T) {
	cfg := &SecurityConfig{}
	cfg.SetDefaults()
	if cfg.SessionMaxAgeHours != 12 {
		t.Errorf("SessionMaxAgeHours = %d, want 12", cfg.SessionMaxAgeHours)
	}

	cfg = &SecurityConfig{SessionMaxAgeHours: 24}
	cfg.SetDefaults()
	if cfg.SessionMaxAgeHours != 24 {
		t.Errorf("SessionMaxAgeHours = %d, want 24 (explicit value kept)", cfg.SessionMaxAgeHours)
	}
}
