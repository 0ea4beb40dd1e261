package config

import "testing"

func TestLoadDefaultsToDynamoBackend(t *testing.T) {
	t.Setenv("OPENHOURS_SCHEDULE_TABLE", "OfficeHours")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StoreBackend != StoreDynamoDB {
		t.Fatalf("unexpected backend: %q", cfg.StoreBackend)
	}
	if cfg.DefaultScope != "Main" {
		t.Fatalf("unexpected default scope: %q", cfg.DefaultScope)
	}
	if cfg.EarlyOpenMargin().Minutes() != 30 {
		t.Fatalf("unexpected early open margin: %v", cfg.EarlyOpenMargin())
	}
}

func TestLoadRequiresTableForDynamo(t *testing.T) {
	t.Setenv("OPENHOURS_STORE_BACKEND", "dynamodb")
	t.Setenv("OPENHOURS_SCHEDULE_TABLE", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected load to fail without a schedule table")
	}
}

func TestLoadRequiresDSNForSQLBackends(t *testing.T) {
	t.Setenv("OPENHOURS_STORE_BACKEND", "sqlite")

	if _, err := Load(); err == nil {
		t.Fatal("expected load to fail without a DSN")
	}

	t.Setenv("OPENHOURS_DB_DSN", "file:openhours.db")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config with DSN: %v", err)
	}
	if cfg.StoreBackend != StoreSQLite {
		t.Fatalf("unexpected backend: %q", cfg.StoreBackend)
	}
}

func TestLoadRejectsUnknownTimezone(t *testing.T) {
	t.Setenv("OPENHOURS_SCHEDULE_TABLE", "OfficeHours")
	t.Setenv("OPENHOURS_TIMEZONE", "Mars/Olympus_Mons")

	if _, err := Load(); err == nil {
		t.Fatal("expected load to reject an unknown timezone")
	}
}

func TestLoadReportsLegacyEnvWarnings(t *testing.T) {
	t.Setenv("OPENHOURS_SCHEDULE_TABLE", "OfficeHours")
	t.Setenv("OFFICEHOURSTABLE", "OfficeHours")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.LegacyEnvWarnings) == 0 {
		t.Fatal("expected legacy env warnings")
	}
}
