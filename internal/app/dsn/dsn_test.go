package dsn

import "testing"

func TestFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_NAME", "maintenance")

	want := "host=localhost user=postgres password=secret dbname=maintenance port=5432 sslmode=disable"
	if got := FromEnv(); got != want {
		t.Fatalf("FromEnv() = %q, want %q", got, want)
	}
}

func TestFromEnvMissingHost(t *testing.T) {
	t.Setenv("DB_HOST", "")

	if got := FromEnv(); got != "" {
		t.Fatalf("FromEnv() = %q, want empty string without DB_HOST", got)
	}
}
