package logger

import "testing"

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	got := sanitizeKVs([]interface{}{
		"db_password", "hunter2",
		"database_url", "postgres://u:p@localhost:5432/db",
		"path", "/api/missions/1",
	})
	if got[1] != "[REDACTED]" {
		t.Fatalf("password: want=[REDACTED] got=%v", got[1])
	}
	if got[3] != "[REDACTED]" {
		t.Fatalf("database_url: want=[REDACTED] got=%v", got[3])
	}
	if got[5] != "/api/missions/1" {
		t.Fatalf("path: want=/api/missions/1 got=%v", got[5])
	}
}

func TestSanitizeValueStripsDSNCredentials(t *testing.T) {
	got := sanitizeValue("target", "postgres://orbital_user:orbital_password@db:5432/orbital_nexus")
	want := "postgres://[REDACTED]@db:5432/orbital_nexus"
	if got != want {
		t.Fatalf("dsn: want=%s got=%v", want, got)
	}
}

func TestSanitizeKVsOddLength(t *testing.T) {
	got := sanitizeKVs([]interface{}{"status", 200, "dangling"})
	if len(got) != 3 || got[2] != "dangling" {
		t.Fatalf("odd kv: got=%v", got)
	}
}
