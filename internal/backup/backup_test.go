package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSnapshot(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "stickerhabit.json")
	content := `{"version":1,"state":{"owned_stickers":[],"habits":[],"records":[],"ticket":{"count":1}}}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}
	return path
}

func TestCreateBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeSnapshot(t, dir)
	manager := NewManager(path)

	backupPath, err := manager.CreateBackup()
	if err != nil {
		t.Fatalf("backup failed: %v", err)
	}

	if filepath.Dir(backupPath) != manager.GetBackupDir() {
		t.Errorf("backup created outside the backup dir: %s", backupPath)
	}
	name := filepath.Base(backupPath)
	if !strings.HasPrefix(name, BackupFilePrefix) || !strings.HasSuffix(name, ".json") {
		t.Errorf("unexpected backup filename: %s", name)
	}

	original, _ := os.ReadFile(path)
	copied, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(original) != string(copied) {
		t.Error("backup content differs from snapshot")
	}
}

func TestCreateBackup_MissingSnapshot(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := manager.CreateBackup(); err == nil {
		t.Fatal("expected backup of a missing snapshot to fail")
	}
}

func TestListBackups_EmptyWithoutDir(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "stickerhabit.json"))
	backups, err := manager.ListBackups()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestRotation_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	path := writeSnapshot(t, dir)
	manager := NewManager(path)

	// Seed more than MaxBackups files with distinct old timestamps.
	if err := os.MkdirAll(manager.GetBackupDir(), 0700); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	for i := 0; i < MaxBackups+3; i++ {
		name := fmt.Sprintf("%s202601%02d-0900.json", BackupFilePrefix, i+1)
		if err := os.WriteFile(filepath.Join(manager.GetBackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	if _, err := manager.CreateBackup(); err != nil {
		t.Fatalf("backup failed: %v", err)
	}

	backups, err := manager.ListBackups()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(backups) != MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", MaxBackups, len(backups))
	}
	// The newest backup is the one just created.
	if !strings.HasPrefix(filepath.Base(backups[0].Path), BackupFilePrefix) {
		t.Errorf("unexpected newest backup: %s", backups[0].Path)
	}
}

func TestRestoreBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeSnapshot(t, dir)
	manager := NewManager(path)

	backupPath, err := manager.CreateBackup()
	if err != nil {
		t.Fatalf("backup failed: %v", err)
	}

	// Change the live snapshot, then restore.
	if err := os.WriteFile(path, []byte(`{"version":1,"state":{"ticket":{"count":0}}}`), 0600); err != nil {
		t.Fatalf("failed to overwrite snapshot: %v", err)
	}

	if err := manager.RestoreBackup(backupPath); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	restored, _ := os.ReadFile(path)
	backed, _ := os.ReadFile(backupPath)
	if string(restored) != string(backed) {
		t.Error("restore did not bring back the backup content")
	}
}

func TestRestoreBackup_RejectsCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := writeSnapshot(t, dir)
	manager := NewManager(path)

	corrupt := filepath.Join(dir, BackupFilePrefix+"20260101-0900.json")
	if err := os.WriteFile(corrupt, []byte("not json"), 0600); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if err := manager.RestoreBackup(corrupt); err == nil {
		t.Fatal("expected restore of a corrupt backup to fail")
	}
}
